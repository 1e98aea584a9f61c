package dashsdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// State is the session lifecycle position.
type State int

const (
	// StateUninitialized means Restore has not been called yet.
	StateUninitialized State = iota
	// StateChecking means the one-shot startup restore is in flight.
	StateChecking
	// StateAuthenticated means a user is logged in.
	StateAuthenticated
	// StateAnonymous means the initial check finished without a session.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session tracks the authenticated identity for one client. The tokens
// themselves live in the client's cookie jar; Session only holds the user
// object and the lifecycle state. Safe for concurrent use.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	state     State
	checkDone bool
	user      *User
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Authenticated reports whether a user is currently logged in.
func (s *Session) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// CheckDone reports whether the one-shot startup restore has completed.
func (s *Session) CheckDone() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkDone
}

// CurrentUser returns a copy of the logged-in user, or false when anonymous.
func (s *Session) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Restore performs the one-shot silent session restore against the refresh
// endpoint. Whatever the outcome, the initial check is marked complete
// exactly once; a failed restore leaves the session anonymous with no error
// surfaced, since an expired cookie on startup is the normal logged-out case.
// Calls after the first are no-ops.
func (s *Session) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.checkDone || s.state == StateChecking {
		s.mu.Unlock()
		return
	}
	s.state = StateChecking
	s.mu.Unlock()

	user, err := s.refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkDone = true
	if err != nil {
		s.state = StateAnonymous
		s.user = nil
		return
	}
	s.state = StateAuthenticated
	s.user = &user
}

// Login authenticates with email and password. On failure the server's
// message comes back verbatim inside an *APIError; no retry or backoff is
// attempted.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	var data SessionData
	if err := decodeEnvelope(resp, &data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkDone = true
	s.state = StateAuthenticated
	s.user = &data.User
	return nil
}

// Logout calls the server logout endpoint best-effort and always clears the
// local identity. Server errors are swallowed; the caller ends up anonymous
// either way.
func (s *Session) Logout(ctx context.Context) {
	if resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil); err == nil {
		_ = decodeEnvelope(resp, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkDone = true
	s.state = StateAnonymous
	s.user = nil
}

// refresh calls the refresh endpoint; the rotated cookies land in the jar.
func (s *Session) refresh(ctx context.Context) (User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/refresh", nil)
	if err != nil {
		return User{}, err
	}

	var data SessionData
	if err := decodeEnvelope(resp, &data); err != nil {
		return User{}, err
	}
	return data.User, nil
}

// doAuth performs an authenticated call. A 401 triggers exactly one silent
// refresh-and-retry; if that also fails the session drops to anonymous and
// the original unauthorized error is returned.
func (s *Session) doAuth(ctx context.Context, method, path string, payload, target any) error {
	resp, err := s.client.doRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}

	err = decodeEnvelope(resp, target)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.IsUnauthorized() {
		return err
	}

	user, refreshErr := s.refresh(ctx)
	if refreshErr != nil {
		s.mu.Lock()
		s.state = StateAnonymous
		s.user = nil
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.mu.Unlock()

	resp, err = s.client.doRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target)
}
