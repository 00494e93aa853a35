package db

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Frenkieli/car-dispatch/internal/models"
)

// openTestDB opens an in-memory SQLite DB with the snapshot table migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func testState(ids ...string) models.DispatchState {
	records := make([]models.DispatchRecord, len(ids))
	for i, id := range ids {
		records[i] = models.DispatchRecord{
			ID:     id,
			Time:   "14:00",
			Status: models.StatusPending,
		}
	}
	return models.DispatchState{
		Records:     records,
		LastUpdated: time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := testState("R1", "R2")
	if err := SaveSnapshot(db, "dispatch", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadSnapshot(db, "dispatch")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("load returned nil for existing slot")
	}
	if len(got.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(got.Records))
	}
	if got.Records[0].ID != "R1" || got.Records[1].ID != "R2" {
		t.Errorf("record order = %q, %q, want R1, R2", got.Records[0].ID, got.Records[1].ID)
	}
	if !got.LastUpdated.Equal(want.LastUpdated) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, want.LastUpdated)
	}
}

func TestSaveSnapshot_Overwrite(t *testing.T) {
	db := openTestDB(t)

	if err := SaveSnapshot(db, "dispatch", testState("R1", "R2", "R3")); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := testState("R9")
	second.LastUpdated = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	if err := SaveSnapshot(db, "dispatch", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := LoadSnapshot(db, "dispatch")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Records) != 1 || got.Records[0].ID != "R9" {
		t.Errorf("after overwrite got %+v, want single R9", got.Records)
	}
	if !got.LastUpdated.Equal(second.LastUpdated) {
		t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, second.LastUpdated)
	}

	var count int64
	db.Model(&models.Snapshot{}).Count(&count)
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	db := openTestDB(t)

	got, err := LoadSnapshot(db, "dispatch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("load of missing slot = %+v, want nil", got)
	}
}

func TestLoadSnapshot_Corrupt(t *testing.T) {
	db := openTestDB(t)

	snap := models.Snapshot{Key: "dispatch", Records: "{not json"}
	if err := db.Create(&snap).Error; err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	_, err := LoadSnapshot(db, "dispatch")
	if err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
}

func TestDeleteSnapshot(t *testing.T) {
	db := openTestDB(t)

	if err := SaveSnapshot(db, "dispatch", testState("R1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := DeleteSnapshot(db, "dispatch"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := LoadSnapshot(db, "dispatch")
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if got != nil {
		t.Errorf("slot still present after delete: %+v", got)
	}

	// Deleting again is a no-op.
	if err := DeleteSnapshot(db, "dispatch"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSnapshot_SlotsAreIndependent(t *testing.T) {
	db := openTestDB(t)

	if err := SaveSnapshot(db, "airport", testState("A1")); err != nil {
		t.Fatalf("save airport: %v", err)
	}
	if err := SaveSnapshot(db, "hotel", testState("H1", "H2")); err != nil {
		t.Fatalf("save hotel: %v", err)
	}

	airport, err := LoadSnapshot(db, "airport")
	if err != nil || airport == nil || len(airport.Records) != 1 {
		t.Fatalf("airport slot = %+v, err %v, want 1 record", airport, err)
	}
	hotel, err := LoadSnapshot(db, "hotel")
	if err != nil || hotel == nil || len(hotel.Records) != 2 {
		t.Fatalf("hotel slot = %+v, err %v, want 2 records", hotel, err)
	}
}
