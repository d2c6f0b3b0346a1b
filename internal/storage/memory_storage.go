package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"lumina/internal/models"
)

// MemoryStorage is an in-memory Storage implementation. It keeps the
// serialized form, not the live structure, so load/save round-trips behave
// exactly like the database-backed storage.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load decodes the stored blob, or returns (nil, nil) when nothing has been
// saved.
func (s *MemoryStorage) Load() (*models.AppState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, nil
	}
	var state models.AppState
	if err := json.Unmarshal(s.data, &state); err != nil {
		return nil, fmt.Errorf("in-memory snapshot: %w: %v", ErrCorrupt, err)
	}
	return &state, nil
}

// Save serializes and stores the state.
func (s *MemoryStorage) Save(state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// SetRaw replaces the stored blob with arbitrary bytes. Tests use it to
// simulate a corrupted snapshot.
func (s *MemoryStorage) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
