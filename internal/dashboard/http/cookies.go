package http

import (
	"net/http"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/service"
)

// Cookie names for the session token pair.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieWriter issues and clears the session cookie pair. Both cookies are
// HttpOnly with SameSite=Strict; Secure is on everywhere except local dev so
// the dashboard can run over plain HTTP on a workstation.
type CookieWriter struct {
	Secure bool
}

// NewCookieWriter returns a writer for the given deployment environment.
func NewCookieWriter(env string) CookieWriter {
	return CookieWriter{Secure: env != "dev" && env != "development"}
}

// SetSession writes both token cookies with max-ages matching the token TTLs.
func (c CookieWriter) SetSession(w http.ResponseWriter, pair service.TokenPair) {
	http.SetCookie(w, c.cookie(AccessTokenCookie, pair.AccessToken, pair.AccessTTL))
	http.SetCookie(w, c.cookie(RefreshTokenCookie, pair.RefreshToken, pair.RefreshTTL))
}

// ClearSession expires both token cookies. Issued tokens stay
// cryptographically valid until natural expiry; there is no server-side
// revocation.
func (c CookieWriter) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, c.expired(AccessTokenCookie))
	http.SetCookie(w, c.expired(RefreshTokenCookie))
}

func (c CookieWriter) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (c CookieWriter) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
