package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/internal/dashboard/store/drivers/sqlite"
	"github.com/tikkaspice/opsboard/pkg/cryptox"
	"github.com/tikkaspice/opsboard/pkg/httpx"
	"github.com/tikkaspice/opsboard/pkg/idx"
	"github.com/tikkaspice/opsboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "opsboard-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type testServer struct {
	*httptest.Server
	store store.Store
}

// client returns a cookie-jar client bound to this server, mirroring how a
// browser carries the session cookies.
func (ts *testServer) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256(testSecret, testIssuer)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(signer, NewCookieWriter("dev"), logger)
	router.AuthService = &service.AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: signer,
		Issuer:   testIssuer,
	}
	router.LocationService = &service.LocationService{Store: st}
	router.GoalsService = &service.GoalsService{Store: st}
	router.DB = st
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

func seedUser(t *testing.T, st store.Store, email, password string, role domain.Role) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().Create(context.Background(), user))
	return user
}

func doJSON(t *testing.T, c *http.Client, method, url string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, data any) httpx.Envelope {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env httpx.Envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)

	if data != nil && env.Data != nil {
		buf, err := json.Marshal(env.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(buf, data))
	}
	return env
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func jsonDecode(resp *http.Response, target any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

func login(t *testing.T, ts *testServer, c *http.Client, email, password string) {
	t.Helper()
	resp := doJSON(t, c, http.MethodPost, ts.URL+"/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeEnvelope(t, resp, nil)
}
