// Package board holds the dispatch board: the record store, the time-based
// status classifier, and the overdue alarm.
package board

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/Frenkieli/car-dispatch/internal/db"
	"github.com/Frenkieli/car-dispatch/internal/ingest"
	"github.com/Frenkieli/car-dispatch/internal/models"
	"github.com/Frenkieli/car-dispatch/internal/notify"
)

// Store is the in-memory record collection, written through to the snapshot
// slot on every mutation. Uploads replace the whole collection; confirms
// mutate single records. Record order is upload order.
type Store struct {
	mu          sync.RWMutex
	conn        *gorm.DB
	slot        string
	records     []models.DispatchRecord
	lastUpdated time.Time
	now         func() time.Time
}

// StoreOpts holds parameters for creating a Store.
type StoreOpts struct {
	DB   *gorm.DB
	Slot string           // snapshot slot key, default "dispatch"
	Now  func() time.Time // clock override for tests
}

// NewStore creates an empty store. Call Restore to pick up a persisted
// snapshot.
func NewStore(opts StoreOpts) *Store {
	if opts.Slot == "" {
		opts.Slot = "dispatch"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		conn: opts.DB,
		slot: opts.Slot,
		now:  opts.Now,
	}
}

// Restore loads the persisted snapshot into memory. A missing or unreadable
// snapshot leaves the store empty; that is the normal first-run path, so it
// is logged but never an error.
func (s *Store) Restore() {
	if s.conn == nil {
		return
	}
	state, err := db.LoadSnapshot(s.conn, s.slot)
	if err != nil {
		log.Printf("board: restore slot %q: %v", s.slot, err)
		return
	}
	if state == nil {
		return
	}

	s.mu.Lock()
	s.records = state.Records
	s.lastUpdated = state.LastUpdated
	s.mu.Unlock()
}

// Load maps the uploaded rows and replaces the record collection wholesale.
// No row is rejected. Returns the number of records loaded.
func (s *Store) Load(rows []map[string]string) (int, error) {
	records := ingest.MapRows(rows)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.lastUpdated = s.now()
	if err := s.persistLocked(); err != nil {
		return len(records), err
	}
	return len(records), nil
}

// Confirm marks every record with the given id confirmed and stamps the
// confirmation time. Duplicate ids in an upload all get confirmed together;
// that is documented upload hygiene, not a failure. Returns how many records
// were updated. The snapshot is rewritten even on a miss, matching the
// whole-state persistence model.
func (s *Store) Confirm(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	updated := 0
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records[i].Status = models.StatusConfirmed
		confirmedAt := now
		s.records[i].ConfirmedAt = &confirmedAt
		updated++
	}
	s.lastUpdated = now
	if err := s.persistLocked(); err != nil {
		return updated, err
	}
	return updated, nil
}

// Records returns a copy of the record collection in upload order.
func (s *Store) Records() []models.DispatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DispatchRecord, len(s.records))
	copy(out, s.records)
	return out
}

// State returns a copy of the full snapshot.
func (s *Store) State() models.DispatchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]models.DispatchRecord, len(s.records))
	copy(records, s.records)
	return models.DispatchState{Records: records, LastUpdated: s.lastUpdated}
}

// LastUpdated returns the time of the last mutation.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Report summarizes the board for digests and the status command. Overdue
// records count as pending too: overdue is a view of pending, not a third
// stored state.
func (s *Store) Report(now time.Time) notify.Report {
	records := s.Records()
	r := notify.Report{Generated: now, Total: len(records)}
	for _, rec := range records {
		switch Classify(rec, now) {
		case UrgencyConfirmed:
			r.Confirmed++
		case UrgencyOverdue:
			r.Overdue++
			r.Pending++
		default:
			r.Pending++
		}
	}
	return r
}

// persistLocked writes the snapshot through to storage. Callers hold the
// write lock, so the in-memory state and the slot move together.
func (s *Store) persistLocked() error {
	if s.conn == nil {
		return nil
	}
	state := models.DispatchState{Records: s.records, LastUpdated: s.lastUpdated}
	if err := db.SaveSnapshot(s.conn, s.slot, state); err != nil {
		return fmt.Errorf("board: persist slot %q: %w", s.slot, err)
	}
	return nil
}
