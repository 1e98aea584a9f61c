package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/pkg/cryptox"
	"github.com/tikkaspice/opsboard/pkg/jwtx"
	"github.com/tikkaspice/opsboard/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrAccountDisabled    = errors.New("account_disabled")
)

// TokenPair is one access/refresh issuance.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// AuthService authenticates users and issues signed session tokens. Tokens
// are stateless; nothing is persisted per session, so a logout only clears
// cookies and an issued refresh token stays usable until it expires.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login verifies an email/password pair and returns the user with a fresh
// token pair. Unknown email and wrong password collapse into
// ErrInvalidCredentials so the response never reveals which check failed; a
// correct password on a deactivated account gets ErrAccountDisabled.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, TokenPair{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a verification anyway so response timing doesn't
			// distinguish unknown emails from wrong passwords.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return domain.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("email", email))
		return domain.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if !user.Active {
		l.Info("login rejected for disabled account", slog.String("user_id", user.ID.String()))
		return domain.User{}, TokenPair{}, ErrAccountDisabled
	}

	pair, err := s.issuePair(user, time.Now())
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	l.Info("login succeeded",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))
	return user, pair, nil
}

// Refresh validates a refresh token and issues a new pair. The user is
// re-loaded so a deleted or deactivated account stops refreshing even though
// the token itself is still cryptographically valid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.User, TokenPair, error) {
	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return domain.User{}, TokenPair{}, ErrInvalidRefresh
	}
	if err := claims.ValidateTokenType(jwtx.TokenTypeRefresh); err != nil {
		return domain.User{}, TokenPair{}, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, TokenPair{}, ErrInvalidRefresh
		}
		return domain.User{}, TokenPair{}, err
	}
	if user.ID.String() != claims.Subject || !user.Active {
		return domain.User{}, TokenPair{}, ErrInvalidRefresh
	}

	pair, err := s.issuePair(user, time.Now())
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// VerifyAccess checks an access token and returns its claims.
func (s *AuthService) VerifyAccess(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, err
	}
	if err := claims.ValidateTokenType(jwtx.TokenTypeAccess); err != nil {
		return jwtx.Claims{}, err
	}
	return claims, nil
}

func (s *AuthService) issuePair(user domain.User, now time.Time) (TokenPair, error) {
	accessTTL := s.AccessTTL
	if accessTTL <= 0 {
		accessTTL = jwtx.DefaultAccessTokenTTL
	}
	refreshTTL := s.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = jwtx.DefaultRefreshTokenTTL
	}

	access, err := s.Signer.Sign(jwtx.NewSessionClaims(
		user.ID.String(), user.Email, user.Role.String(),
		jwtx.TokenTypeAccess, accessTTL, s.Issuer, now))
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.Signer.Sign(jwtx.NewSessionClaims(
		user.ID.String(), user.Email, user.Role.String(),
		jwtx.TokenTypeRefresh, refreshTTL, s.Issuer, now))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    accessTTL,
		RefreshTTL:   refreshTTL,
	}, nil
}
