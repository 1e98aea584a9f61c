package dashsdk

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SelectionStore persists the user's current-location choice between runs,
// the desktop analogue of browser local storage. The zero value is unusable;
// create one with NewSelectionStore.
type SelectionStore struct {
	path string
}

type selectionFile struct {
	LocationID string `json:"locationId"`
}

// NewSelectionStore stores the selection in a JSON file at path.
func NewSelectionStore(path string) *SelectionStore {
	return &SelectionStore{path: path}
}

// Load returns the stored location ID, or "" when nothing has been stored.
func (s *SelectionStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var f selectionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		// A corrupt file behaves like no selection
		return "", nil
	}
	return f.LocationID, nil
}

// Save stores the location ID, creating parent directories as needed.
func (s *SelectionStore) Save(locationID string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(selectionFile{LocationID: locationID})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Clear removes the stored selection.
func (s *SelectionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ReconcileSelection checks a stored selection against the authoritative
// roster. It returns the previously selected location when it still exists,
// otherwise the first available location, otherwise nil for an empty roster.
func ReconcileSelection(locations []Location, storedID string) *Location {
	for i := range locations {
		if locations[i].ID == storedID {
			return &locations[i]
		}
	}
	if len(locations) > 0 {
		return &locations[0]
	}
	return nil
}
