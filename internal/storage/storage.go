package storage

import (
	"errors"

	"lumina/internal/models"
)

// SnapshotKey is the well-known key the application state blob is stored
// under. It matches the key the original demo used in browser storage.
const SnapshotKey = "lumina_app_data"

// ErrCorrupt indicates that a persisted snapshot exists but cannot be
// decoded. Callers are expected to fall back to the seed state.
var ErrCorrupt = errors.New("corrupt snapshot")

// Storage persists the complete application state as a single snapshot.
type Storage interface {
	// Load returns the persisted snapshot, or (nil, nil) when none has been
	// saved yet. A snapshot that exists but cannot be decoded yields an
	// error wrapping ErrCorrupt.
	Load() (*models.AppState, error)
	// Save replaces the persisted snapshot.
	Save(state *models.AppState) error
}
