package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

func createLocation(t *testing.T, ts *testServer, c *http.Client, name string) dashsdk.Location {
	t.Helper()
	resp := doJSON(t, c, http.MethodPost, ts.URL+"/api/locations", dashsdk.LocationRequest{
		Name:          name,
		Address:       name + " Address",
		PosLocationID: "POS-" + name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data dashsdk.LocationData
	decodeEnvelope(t, resp, &data)
	return data.Location
}

func TestLocationRoutesRoleGating(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	seedUser(t, ts.store, "dm@example.com", "pw123456", domain.RoleDistrictManager)
	seedUser(t, ts.store, "crew@example.com", "pw123456", domain.RoleTeamMember)

	t.Run("anonymous gets 401", func(t *testing.T) {
		c := ts.client(t)
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non-management role gets 403", func(t *testing.T) {
		c := ts.client(t)
		login(t, ts, c, "crew@example.com", "pw123456")
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations", nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.Equal(t, "Insufficient permissions", env.Message)
	})

	t.Run("management role passes", func(t *testing.T) {
		c := ts.client(t)
		login(t, ts, c, "dm@example.com", "pw123456")
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("bearer header works without cookies", func(t *testing.T) {
		c := ts.client(t)
		login(t, ts, c, "dm@example.com", "pw123456")

		// Pull the access token out of the jar and present it as a header
		// through a jarless client.
		var token string
		for _, cookie := range c.Jar.Cookies(mustParse(t, ts.URL)) {
			if cookie.Name == AccessTokenCookie {
				token = cookie.Value
			}
		}
		require.NotEmpty(t, token)

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/locations", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLocationCRUDRoundTrip(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	seedUser(t, ts.store, "owner@example.com", "pw123456", domain.RoleOwner)
	c := ts.client(t)
	login(t, ts, c, "owner@example.com", "pw123456")

	loc := createLocation(t, ts, c, "Downtown")
	require.NotEmpty(t, loc.ID)

	t.Run("get", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations/"+loc.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var data dashsdk.LocationData
		decodeEnvelope(t, resp, &data)
		require.Equal(t, "Downtown", data.Location.Name)
	})

	t.Run("update", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodPut, ts.URL+"/api/locations/"+loc.ID, dashsdk.LocationRequest{
			Name:          "Downtown West",
			Address:       "200 Main St",
			PosLocationID: "POS-DTW",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var data dashsdk.LocationData
		decodeEnvelope(t, resp, &data)
		require.Equal(t, "Downtown West", data.Location.Name)
	})

	t.Run("validation failure lists each missing field", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodPost, ts.URL+"/api/locations", dashsdk.LocationRequest{})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.Len(t, env.Errors, 3)
	})

	t.Run("delete then 404", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodDelete, ts.URL+"/api/locations/"+loc.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeEnvelope(t, resp, nil)

		resp = doJSON(t, c, http.MethodGet, ts.URL+"/api/locations/"+loc.ID, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.Equal(t, "Location not found", env.Message)
	})
}

func TestLocationListPagination(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	seedUser(t, ts.store, "owner@example.com", "pw123456", domain.RoleOwner)
	c := ts.client(t)
	login(t, ts, c, "owner@example.com", "pw123456")

	for i := range 23 {
		createLocation(t, ts, c, fmt.Sprintf("Store %02d", i))
	}

	t.Run("page math in the response", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations?page=2&limit=10", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var data dashsdk.LocationListData
		decodeEnvelope(t, resp, &data)
		require.Len(t, data.Locations, 10)
		require.EqualValues(t, 23, data.Total)
		require.EqualValues(t, 2, data.Page)
		require.EqualValues(t, 3, data.TotalPages)
	})

	t.Run("out-of-range page clamps", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations?page=99&limit=10", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var data dashsdk.LocationListData
		decodeEnvelope(t, resp, &data)
		require.EqualValues(t, 3, data.Page)
		require.Len(t, data.Locations, 3)
	})

	t.Run("limit above 500 is rejected", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations?limit=501", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.Len(t, env.Errors, 1)
		require.Equal(t, "limit", env.Errors[0].Path)
	})

	t.Run("non-numeric page is rejected", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations?page=abc", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decodeEnvelope(t, resp, nil)
	})

	t.Run("defaults are page 1 limit 50", func(t *testing.T) {
		resp := doJSON(t, c, http.MethodGet, ts.URL+"/api/locations", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var data dashsdk.LocationListData
		decodeEnvelope(t, resp, &data)
		require.EqualValues(t, 1, data.Page)
		require.EqualValues(t, 50, data.Limit)
		require.Len(t, data.Locations, 23)
	})
}
