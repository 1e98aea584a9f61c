package dashsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func userData(t *testing.T, u User) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(SessionData{User: u})
	require.NoError(t, err)
	return raw
}

func newStubClient(t *testing.T, handler http.Handler) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewSDKClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestSessionRestore(t *testing.T) {
	t.Parallel()

	t.Run("successful restore authenticates", func(t *testing.T) {
		var refreshCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			refreshCalls.Add(1)
			writeEnvelope(w, http.StatusOK, envelope{
				Success: true,
				Message: "Session refreshed",
				Data:    userData(t, User{ID: "u1", Email: "gm@example.com", Role: RoleGeneralManager}),
			})
		})

		session := newStubClient(t, mux).NewSession()
		require.Equal(t, StateUninitialized, session.State())
		require.False(t, session.CheckDone())

		session.Restore(context.Background())
		require.Equal(t, StateAuthenticated, session.State())
		require.True(t, session.CheckDone())

		user, ok := session.CurrentUser()
		require.True(t, ok)
		require.Equal(t, "gm@example.com", user.Email)

		// Restore is one-shot; a second call does not hit the server again
		session.Restore(context.Background())
		require.EqualValues(t, 1, refreshCalls.Load())
	})

	t.Run("failed restore is silent and leaves the session anonymous", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusUnauthorized, envelope{
				Success: false,
				Message: "No refresh token",
			})
		})

		session := newStubClient(t, mux).NewSession()
		session.Restore(context.Background())

		require.Equal(t, StateAnonymous, session.State())
		require.True(t, session.CheckDone())
		_, ok := session.CurrentUser()
		require.False(t, ok)
	})
}

func TestSessionLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "pw123456" {
			writeEnvelope(w, http.StatusUnauthorized, envelope{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		writeEnvelope(w, http.StatusOK, envelope{
			Success: true,
			Message: "Login successful",
			Data:    userData(t, User{ID: "u1", Email: req.Email, FirstName: "Casey", LastName: "Park", Role: RoleOwner}),
		})
	})

	client := newStubClient(t, mux)

	t.Run("success stores the returned user", func(t *testing.T) {
		session := client.NewSession()
		require.NoError(t, session.Login(context.Background(), "owner@example.com", "pw123456"))
		require.True(t, session.Authenticated())

		user, ok := session.CurrentUser()
		require.True(t, ok)
		require.Equal(t, "Casey Park", user.FullName())
	})

	t.Run("failure surfaces the server message verbatim", func(t *testing.T) {
		session := client.NewSession()
		err := session.Login(context.Background(), "owner@example.com", "nope")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsUnauthorized())
		require.Equal(t, "Invalid email or password", apiErr.Message)
		require.False(t, session.Authenticated())
	})
}

func TestSessionLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears local state even when the server errors", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, envelope{
				Success: true,
				Data:    userData(t, User{ID: "u1", Email: "gm@example.com"}),
			})
		})
		mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		session := newStubClient(t, mux).NewSession()
		session.Restore(context.Background())
		require.True(t, session.Authenticated())

		session.Logout(context.Background())
		require.Equal(t, StateAnonymous, session.State())
		_, ok := session.CurrentUser()
		require.False(t, ok)
	})
}

func TestAuthenticatedCallRetriesOnce(t *testing.T) {
	t.Parallel()

	t.Run("one silent refresh then retry succeeds", func(t *testing.T) {
		var listCalls, refreshCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			refreshCalls.Add(1)
			writeEnvelope(w, http.StatusOK, envelope{
				Success: true,
				Data:    userData(t, User{ID: "u1", Email: "gm@example.com"}),
			})
		})
		mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
			if listCalls.Add(1) == 1 {
				writeEnvelope(w, http.StatusUnauthorized, envelope{
					Success: false,
					Message: "Invalid or expired token",
				})
				return
			}
			raw, _ := json.Marshal(LocationListData{
				Locations:  []Location{{ID: "L1", Name: "Downtown"}},
				Total:      1,
				Page:       1,
				Limit:      50,
				TotalPages: 1,
			})
			writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: raw})
		})

		session := newStubClient(t, mux).NewSession()
		page, err := session.ListLocations(context.Background(), 1, 50)
		require.NoError(t, err)
		require.Len(t, page.Locations, 1)
		require.EqualValues(t, 2, listCalls.Load())
		require.EqualValues(t, 1, refreshCalls.Load())
	})

	t.Run("failed refresh gives up with the original 401", func(t *testing.T) {
		var listCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusUnauthorized, envelope{Success: false, Message: "No refresh token"})
		})
		mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
			listCalls.Add(1)
			writeEnvelope(w, http.StatusUnauthorized, envelope{
				Success: false,
				Message: "Authentication required",
			})
		})

		session := newStubClient(t, mux).NewSession()
		_, err := session.ListLocations(context.Background(), 1, 50)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsUnauthorized())
		require.Equal(t, "Authentication required", apiErr.Message)
		// No second attempt at the resource
		require.EqualValues(t, 1, listCalls.Load())
		require.Equal(t, StateAnonymous, session.State())
	})

	t.Run("non-401 errors do not trigger a refresh", func(t *testing.T) {
		var refreshCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
			refreshCalls.Add(1)
			writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: userData(t, User{ID: "u1"})})
		})
		mux.HandleFunc("GET /api/locations", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusForbidden, envelope{
				Success: false,
				Message: "Insufficient permissions",
			})
		})

		session := newStubClient(t, mux).NewSession()
		_, err := session.ListLocations(context.Background(), 1, 50)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsForbidden())
		require.Zero(t, refreshCalls.Load())
	})
}
