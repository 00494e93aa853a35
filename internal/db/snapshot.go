package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Frenkieli/car-dispatch/internal/models"
)

// SaveSnapshot serializes the state and upserts it into the slot row. The
// whole snapshot is replaced in one statement, so a reader never observes a
// partially written state.
func SaveSnapshot(db *gorm.DB, key string, state models.DispatchState) error {
	records, err := json.Marshal(state.Records)
	if err != nil {
		return fmt.Errorf("db: marshal snapshot %q: %w", key, err)
	}

	snap := models.Snapshot{
		Key:         key,
		Records:     string(records),
		LastUpdated: state.LastUpdated,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"records", "last_updated", "updated_at"}),
	}).Create(&snap)
	if result.Error != nil {
		return fmt.Errorf("db: save snapshot %q: %w", key, result.Error)
	}
	return nil
}

// LoadSnapshot reads the slot row and deserializes it. Returns (nil, nil)
// when the slot has never been written.
func LoadSnapshot(db *gorm.DB, key string) (*models.DispatchState, error) {
	var snap models.Snapshot
	if err := db.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("db: load snapshot %q: %w", key, err)
	}

	var records []models.DispatchRecord
	if err := json.Unmarshal([]byte(snap.Records), &records); err != nil {
		return nil, fmt.Errorf("db: decode snapshot %q: %w", key, err)
	}
	return &models.DispatchState{
		Records:     records,
		LastUpdated: snap.LastUpdated,
	}, nil
}

// DeleteSnapshot removes the slot row. Deleting a slot that does not exist
// is not an error.
func DeleteSnapshot(db *gorm.DB, key string) error {
	if err := db.Delete(&models.Snapshot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("db: delete snapshot %q: %w", key, err)
	}
	return nil
}
