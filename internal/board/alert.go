package board

import (
	"log"
	"sync"

	"github.com/Frenkieli/car-dispatch/internal/notify"
)

// Alerter is the edge-triggered alarm. Each tick it reconciles with the
// current overdue set: the transition into a non-empty set raises the alarm
// and fires the notifier, the transition back to empty clears it. Repeated
// ticks in the same condition do nothing.
//
// The sound gate mirrors the browser autoplay unlock it exists for: sound
// starts disabled, a single user action enables it, and nothing short of a
// process restart disables it again.
type Alerter struct {
	mu       sync.Mutex
	notifier notify.Notifier
	sound    bool
	active   bool
	overdue  []string
}

// NewAlerter creates an Alerter. notifier may be nil when no external
// channel is configured.
func NewAlerter(notifier notify.Notifier) *Alerter {
	return &Alerter{notifier: notifier}
}

// EnableSound flips the one-way sound gate. There is no disable.
func (a *Alerter) EnableSound() {
	a.mu.Lock()
	a.sound = true
	a.mu.Unlock()
}

// SoundEnabled reports whether the user has unlocked the audible alert.
func (a *Alerter) SoundEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sound
}

// Active reports whether the alarm is currently raised.
func (a *Alerter) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Overdue returns the overdue ids from the last Update.
func (a *Alerter) Overdue() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.overdue))
	copy(out, a.overdue)
	return out
}

// Update reconciles the alarm with the overdue set computed this tick.
// Notifier failures are logged and do not disturb the alarm state; the next
// edge will try again.
func (a *Alerter) Update(overdue []string) {
	a.mu.Lock()
	a.overdue = overdue
	raised := len(overdue) > 0

	var msg *notify.Message
	switch {
	case raised && !a.active:
		a.active = true
		m := notify.OverdueMessage(overdue)
		msg = &m
	case !raised && a.active:
		a.active = false
		m := notify.AllClearMessage()
		msg = &m
	}
	notifier := a.notifier
	a.mu.Unlock()

	if msg != nil && notifier != nil {
		if err := notifier.Send(*msg); err != nil {
			log.Printf("board: alert notify: %v", err)
		}
	}
}
