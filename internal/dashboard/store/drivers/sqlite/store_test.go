package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/internal/dashboard/store/drivers/sqlite"
	"github.com/tikkaspice/opsboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func testLocation(name string) domain.Location {
	now := time.Now().UTC()
	return domain.Location{
		ID:            idx.New(),
		Name:          name,
		Address:       "1 Main St",
		PosLocationID: "POS-001",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("commits when fn returns nil", func(t *testing.T) {
		st := newStore(t)

		loc := testLocation("Downtown")
		err := st.WithTx(ctx, func(tx store.Store) error {
			return tx.Locations().Create(ctx, loc)
		})
		require.NoError(t, err)

		got, err := st.Locations().Get(ctx, loc.ID)
		require.NoError(t, err)
		require.Equal(t, "Downtown", got.Name)
	})

	t.Run("rolls back when fn returns an error", func(t *testing.T) {
		st := newStore(t)

		sentinel := errors.New("seed interrupted")
		err := st.WithTx(ctx, func(tx store.Store) error {
			if err := tx.Locations().Create(ctx, testLocation("Downtown")); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		count, err := st.Locations().Count(ctx)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("writes inside the tx see each other", func(t *testing.T) {
		st := newStore(t)

		loc := testLocation("Riverside")
		err := st.WithTx(ctx, func(tx store.Store) error {
			if err := tx.Locations().Create(ctx, loc); err != nil {
				return err
			}
			got, err := tx.Locations().Get(ctx, loc.ID)
			if err != nil {
				return err
			}
			require.Equal(t, "Riverside", got.Name)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("nesting is rejected", func(t *testing.T) {
		st := newStore(t)

		err := st.WithTx(ctx, func(tx store.Store) error {
			return tx.WithTx(ctx, func(store.Store) error { return nil })
		})
		require.ErrorIs(t, err, sql.ErrTxDone)
	})
}

func TestPing(t *testing.T) {
	t.Parallel()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	require.NoError(t, st.Ping(ctx))

	require.NoError(t, st.Close())
	require.Error(t, st.Ping(ctx))
}
