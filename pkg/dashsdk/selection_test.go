package dashsdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionStore(t *testing.T) {
	t.Parallel()

	t.Run("load save clear round trip", func(t *testing.T) {
		store := NewSelectionStore(filepath.Join(t.TempDir(), "state", "selection.json"))

		id, err := store.Load()
		require.NoError(t, err)
		require.Empty(t, id)

		require.NoError(t, store.Save("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
		id, err = store.Load()
		require.NoError(t, err)
		require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", id)

		require.NoError(t, store.Clear())
		id, err = store.Load()
		require.NoError(t, err)
		require.Empty(t, id)

		// Clearing twice is fine
		require.NoError(t, store.Clear())
	})

	t.Run("corrupt file reads as no selection", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "selection.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		id, err := NewSelectionStore(path).Load()
		require.NoError(t, err)
		require.Empty(t, id)
	})
}

func TestReconcileSelection(t *testing.T) {
	t.Parallel()

	roster := []Location{
		{ID: "L1", Name: "Downtown"},
		{ID: "L2", Name: "Riverside"},
		{ID: "L3", Name: "Airport"},
	}

	t.Run("stored selection still present wins", func(t *testing.T) {
		got := ReconcileSelection(roster, "L2")
		require.NotNil(t, got)
		require.Equal(t, "Riverside", got.Name)
	})

	t.Run("vanished selection falls back to the first location", func(t *testing.T) {
		got := ReconcileSelection(roster, "L9")
		require.NotNil(t, got)
		require.Equal(t, "Downtown", got.Name)
	})

	t.Run("no stored selection picks the first location", func(t *testing.T) {
		got := ReconcileSelection(roster, "")
		require.NotNil(t, got)
		require.Equal(t, "L1", got.ID)
	})

	t.Run("empty roster yields nil", func(t *testing.T) {
		require.Nil(t, ReconcileSelection(nil, "L1"))
	})
}
