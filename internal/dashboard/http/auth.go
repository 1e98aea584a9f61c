package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/tikkaspice/opsboard/pkg/httpx"
	"github.com/tikkaspice/opsboard/pkg/slogx"
)

func sanitizeUser(u domain.User) dashsdk.User {
	return dashsdk.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
	}
}

type LoginHandler struct {
	AuthService *service.AuthService
	Cookies     CookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. On success the session
//	@Description	token pair is set as HTTP-only cookies and the sanitized user
//	@Description	object is returned; the credential never appears in a response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	httpx.Envelope{data=dashsdk.SessionData}
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req dashsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var fields []httpx.FieldError
	if req.Email == "" {
		fields = append(fields, httpx.FieldError{Path: "email", Message: "Email is required"})
	}
	if req.Password == "" {
		fields = append(fields, httpx.FieldError{Path: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		httpx.WriteValidationError(w, fields)
		return
	}

	user, pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrAccountDisabled):
			httpx.WriteError(w, http.StatusUnauthorized, "Account is disabled")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.Cookies.SetSession(w, pair)
	httpx.WriteSuccess(w, http.StatusOK, "Login successful", dashsdk.SessionData{
		User: sanitizeUser(user),
	})
}

type LogoutHandler struct {
	Cookies CookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Clears both session cookies. The service layer is stateless so
//	@Description	previously issued tokens remain valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Cookies.ClearSession(w)
	httpx.WriteSuccess(w, http.StatusOK, "Logged out", nil)
}

type RefreshHandler struct {
	AuthService *service.AuthService
	Cookies     CookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Session Refresh Endpoint
//	@Description	Exchange a valid refreshToken cookie for a fresh token pair.
//	@Description	The user is re-loaded so a deleted or deactivated account can
//	@Description	no longer refresh.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=dashsdk.SessionData}
//	@Failure		401	{object}	httpx.Envelope
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "No refresh token")
		return
	}

	user, pair, err := h.AuthService.Refresh(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		log.Error("refresh failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Cookies.SetSession(w, pair)
	httpx.WriteSuccess(w, http.StatusOK, "Session refreshed", dashsdk.SessionData{
		User: sanitizeUser(user),
	})
}
