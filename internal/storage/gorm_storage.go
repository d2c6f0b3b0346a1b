package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lumina/internal/models"
)

// Snapshot is the single-row key/value record holding the serialized
// application state.
type Snapshot struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte
	UpdatedAt time.Time
}

// GormStorage persists the state blob in a key/value table through GORM.
// It works against SQLite and PostgreSQL alike.
type GormStorage struct {
	db  *gorm.DB
	key string
}

// NewGormStorage creates a GormStorage and migrates its snapshot table.
func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &GormStorage{db: db, key: SnapshotKey}, nil
}

// Load reads and decodes the persisted snapshot.
func (s *GormStorage) Load() (*models.AppState, error) {
	var row Snapshot
	if err := s.db.First(&row, "key = ?", s.key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", s.key, err)
	}

	var state models.AppState
	if err := json.Unmarshal(row.Data, &state); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w: %v", s.key, ErrCorrupt, err)
	}
	return &state, nil
}

// Save serializes the state and upserts it under the snapshot key.
func (s *GormStorage) Save(state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	row := Snapshot{Key: s.key, Data: data, UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", s.key, err)
	}
	return nil
}
