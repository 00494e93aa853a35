package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Frenkieli/car-dispatch/internal/board"
	"github.com/Frenkieli/car-dispatch/internal/models"
)

// urgencyMark is the one-character status column: records needing attention
// stand out, the rest stay quiet.
func urgencyMark(u board.Urgency) string {
	switch u {
	case board.UrgencyConfirmed:
		return "✓"
	case board.UrgencyOverdue:
		return "!"
	case board.UrgencyApproaching:
		return "~"
	default:
		return " "
	}
}

// formatBoard renders the record table plus a summary line.
func formatBoard(records []models.DispatchRecord, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dispatch board — %s\n\n", now.Format("2006-01-02 15:04:05"))

	if len(records) == 0 {
		b.WriteString("No records. Import a dispatch sheet with `cdb import FILE`.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-12s %-6s %-10s %-12s %s\n", "ID", "TIME", "CAR", "DRIVER", "STATUS")

	var pending, confirmed, overdue int
	for _, rec := range records {
		u := board.Classify(rec, now)
		switch u {
		case board.UrgencyConfirmed:
			confirmed++
		case board.UrgencyOverdue:
			overdue++
			pending++
		default:
			pending++
		}
		fmt.Fprintf(&b, "%s %-12s %-6s %-10s %-12s %s\n",
			urgencyMark(u),
			truncate(rec.ID, 12),
			rec.Time,
			truncate(rec.CarNumber, 10),
			truncate(rec.DriverName, 12),
			string(u),
		)
	}

	fmt.Fprintf(&b, "\n%d record(s): %d pending, %d confirmed, %d overdue\n",
		len(records), pending, confirmed, overdue)
	return b.String()
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
