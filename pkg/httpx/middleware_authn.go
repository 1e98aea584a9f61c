package httpx

import (
	"net/http"
	"strings"

	"github.com/tikkaspice/opsboard/pkg/jwtx"
	"github.com/tikkaspice/opsboard/pkg/slogx"
)

// AuthnMiddleware verifies the caller's access token and attaches a Principal
// to the request context. The token is resolved from the named cookie first,
// falling back to an "Authorization: Bearer" header.
func AuthnMiddleware(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := tokenFromRequest(r, cookieName)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			if err := claims.ValidateTokenType(jwtx.TokenTypeAccess); err != nil {
				WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx = WithPrincipal(ctx, Principal{
				UserID: claims.Subject,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	return ""
}
