package http

import (
	"context"
	"testing"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

// Exercises the client SDK against the real server: login, authenticated
// calls, silent restore on a fresh session sharing the cookie jar, logout.
func TestSDKAgainstServer(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	seedUser(t, ts.store, "owner@example.com", "ownerpass1", domain.RoleOwner)

	client, err := dashsdk.NewSDKClient(ts.URL)
	require.NoError(t, err)

	ctx := context.Background()
	session := client.NewSession()

	t.Run("restore with no cookies lands anonymous", func(t *testing.T) {
		session.Restore(ctx)
		require.Equal(t, dashsdk.StateAnonymous, session.State())
		require.Equal(t, dashsdk.RedirectToLogin, session.Evaluate(dashsdk.RouteProtected))
	})

	t.Run("login and manage locations", func(t *testing.T) {
		require.NoError(t, session.Login(ctx, "owner@example.com", "ownerpass1"))
		require.Equal(t, dashsdk.RedirectToDashboard, session.Evaluate(dashsdk.RouteLogin))

		user, ok := session.CurrentUser()
		require.True(t, ok)
		require.Equal(t, dashsdk.RoleOwner, user.Role)

		created, err := session.CreateLocation(ctx, dashsdk.LocationRequest{
			Name:          "Downtown",
			Address:       "1 Main St",
			PosLocationID: "POS-001",
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		page, err := session.ListLocations(ctx, 1, 50)
		require.NoError(t, err)
		require.EqualValues(t, 1, page.Total)
		require.Equal(t, "Downtown", page.Locations[0].Name)

		saved, err := session.SaveGoals(ctx, dashsdk.GoalsRequest{
			LocationID: created.ID,
			SalesGoal:  9000,
			HoursGoal:  135,
		})
		require.NoError(t, err)
		require.InDelta(t, 135, saved.HoursGoal, 0.0001)
		goals, err := session.GetGoals(ctx, created.ID)
		require.NoError(t, err)
		require.InDelta(t, 9000, goals.SalesGoal, 0.0001)
	})

	t.Run("fresh session restores from the jar cookies", func(t *testing.T) {
		restored := client.NewSession()
		restored.Restore(ctx)

		require.True(t, restored.Authenticated())
		user, ok := restored.CurrentUser()
		require.True(t, ok)
		require.Equal(t, "owner@example.com", user.Email)
	})

	t.Run("login failure carries the server message", func(t *testing.T) {
		bad := client.NewSession()
		err := bad.Login(ctx, "owner@example.com", "wrong-password")

		var apiErr *dashsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Invalid email or password", apiErr.Message)
	})

	t.Run("logout drops the session", func(t *testing.T) {
		session.Logout(ctx)
		require.Equal(t, dashsdk.StateAnonymous, session.State())

		_, err := session.ListLocations(ctx, 1, 50)
		var apiErr *dashsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsUnauthorized())
	})
}
