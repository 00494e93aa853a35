// Package notify delivers board alerts and summaries to external channels.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Level classifies an outbound message.
type Level string

const (
	LevelAlert Level = "alert" // overdue set became non-empty
	LevelClear Level = "clear" // overdue set drained
	LevelInfo  Level = "info"  // scheduled digest
)

// Message is one outbound notification.
type Message struct {
	Level   Level
	Subject string
	Body    string
}

// Notifier delivers a message to one external channel.
type Notifier interface {
	Send(msg Message) error
}

// Multi fans a message out to every notifier, attempting all of them even
// when some fail. The joined error is returned for logging.
type Multi []Notifier

func (m Multi) Send(msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Send(msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Report summarizes the board for a digest message.
type Report struct {
	Generated time.Time
	Total     int
	Pending   int
	Confirmed int
	Overdue   int
}

// OverdueMessage announces that the listed record ids are past their
// scheduled time without confirmation.
func OverdueMessage(ids []string) Message {
	return Message{
		Level:   LevelAlert,
		Subject: fmt.Sprintf("%d dispatch record(s) overdue", len(ids)),
		Body:    "Unconfirmed past schedule: " + strings.Join(ids, ", "),
	}
}

// AllClearMessage announces that no record is overdue anymore.
func AllClearMessage() Message {
	return Message{
		Level:   LevelClear,
		Subject: "Dispatch board clear",
		Body:    "No overdue records remain.",
	}
}

// DigestMessage formats a scheduled board summary.
func DigestMessage(r Report) Message {
	return Message{
		Level:   LevelInfo,
		Subject: fmt.Sprintf("Dispatch digest — %d record(s)", r.Total),
		Body: fmt.Sprintf("Pending: %d, confirmed: %d, overdue: %d (as of %s)",
			r.Pending, r.Confirmed, r.Overdue, r.Generated.Format("2006-01-02 15:04:05")),
	}
}
