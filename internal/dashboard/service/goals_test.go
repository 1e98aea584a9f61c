package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tikkaspice/opsboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestGoalsService(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	locations := &LocationService{Store: st}
	svc := &GoalsService{Store: st}
	ctx := context.Background()

	loc, err := locations.Create(ctx, LocationInput{
		Name:          "Eastside",
		Address:       "1 East Rd",
		PosLocationID: "POS-E01",
	})
	require.NoError(t, err)

	t.Run("unsaved goals read back zero-valued", func(t *testing.T) {
		goals, err := svc.GetForLocation(ctx, loc.ID)
		require.NoError(t, err)
		require.Equal(t, loc.ID, goals.LocationID)
		require.Zero(t, goals.SalesGoal)
		require.Zero(t, goals.HoursGoal)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := svc.GetForLocation(ctx, idx.New())
		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("save then read back", func(t *testing.T) {
		saved, err := svc.Save(ctx, loc.ID, GoalsInput{
			SalesGoal:     9000,
			LaborCostGoal: 20,
			HoursGoal:     135,
			SPMHGoal:      66.67,
			FoodCostGoal:  28,
		})
		require.NoError(t, err)

		goals, err := svc.GetForLocation(ctx, loc.ID)
		require.NoError(t, err)
		require.Equal(t, saved.SalesGoal, goals.SalesGoal)
		require.Equal(t, 66.67, goals.SPMHGoal)
	})

	t.Run("save overwrites the previous targets", func(t *testing.T) {
		_, err := svc.Save(ctx, loc.ID, GoalsInput{SalesGoal: 9500})
		require.NoError(t, err)

		goals, err := svc.GetForLocation(ctx, loc.ID)
		require.NoError(t, err)
		require.EqualValues(t, 9500, goals.SalesGoal)
		require.Zero(t, goals.LaborCostGoal)
	})

	t.Run("negative values are rejected per field", func(t *testing.T) {
		_, err := svc.Save(ctx, loc.ID, GoalsInput{LaborCostGoal: -1, HoursGoal: -2})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Violations, 2)
		require.Equal(t, "laborCostGoal", verr.Violations[0].Path)
	})

	t.Run("save for an unknown location", func(t *testing.T) {
		_, err := svc.Save(ctx, idx.New(), GoalsInput{SalesGoal: 100})
		require.ErrorIs(t, err, ErrLocationNotFound)
	})
}

func TestHousekeepingSweep(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	locations := &LocationService{Store: st}
	goals := &GoalsService{Store: st}
	ctx := context.Background()

	keep, err := locations.Create(ctx, LocationInput{
		Name: "Keep", Address: "1 Keep St", PosLocationID: "POS-K",
	})
	require.NoError(t, err)
	drop, err := locations.Create(ctx, LocationInput{
		Name: "Drop", Address: "2 Drop St", PosLocationID: "POS-D",
	})
	require.NoError(t, err)

	_, err = goals.Save(ctx, keep.ID, GoalsInput{SalesGoal: 1000})
	require.NoError(t, err)
	_, err = goals.Save(ctx, drop.ID, GoalsInput{SalesGoal: 2000})
	require.NoError(t, err)

	// Deleting the location leaves its goals row orphaned
	require.NoError(t, locations.Delete(ctx, drop.ID))
	orphan, err := st.Goals().GetByLocation(ctx, drop.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2000, orphan.SalesGoal)

	hk := NewHousekeepingService(st, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	hk.Sweep(ctx)

	_, err = st.Goals().GetByLocation(ctx, drop.ID)
	require.Error(t, err)

	kept, err := st.Goals().GetByLocation(ctx, keep.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1000, kept.SalesGoal)
}
