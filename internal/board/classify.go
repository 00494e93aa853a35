package board

import (
	"strings"
	"time"

	"github.com/Frenkieli/car-dispatch/internal/models"
)

// Urgency is the derived display state of a record. It is recomputed from
// the wall clock on every tick and never persisted: the store only ever
// writes pending or confirmed.
type Urgency string

const (
	UrgencyNormal      Urgency = "normal"
	UrgencyApproaching Urgency = "approaching"
	UrgencyOverdue     Urgency = "overdue"
	UrgencyConfirmed   Urgency = "confirmed"
)

// ApproachingWindow is how close to the scheduled time a pending record
// turns into a warning.
const ApproachingWindow = 45 * time.Minute

// Classify derives the urgency of a record at the given instant.
// Confirmation wins over any time comparison. The "HH:MM" time of day is
// anchored to now's calendar date in now's location; dispatches are assumed
// same-day, so a record scheduled for another day is not distinguished.
// An unparseable time reads as normal.
func Classify(rec models.DispatchRecord, now time.Time) Urgency {
	if rec.Status == models.StatusConfirmed {
		return UrgencyConfirmed
	}
	sched, ok := scheduledAt(rec.Time, now)
	if !ok {
		return UrgencyNormal
	}
	remaining := sched.Sub(now)
	switch {
	case remaining < 0:
		return UrgencyOverdue
	case remaining <= ApproachingWindow:
		return UrgencyApproaching
	default:
		return UrgencyNormal
	}
}

// OverdueIDs returns the ids of every record currently overdue and
// unconfirmed, in record order.
func OverdueIDs(records []models.DispatchRecord, now time.Time) []string {
	var ids []string
	for _, rec := range records {
		if Classify(rec, now) == UrgencyOverdue {
			ids = append(ids, rec.ID)
		}
	}
	return ids
}

// scheduledAt combines a "HH:MM" (or "HH:MM:SS") time of day with now's date.
func scheduledAt(timeOfDay string, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(timeOfDay)
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location()), true
}
