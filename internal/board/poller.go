package board

import (
	"context"
	"time"
)

// Poller re-evaluates the board against the wall clock once per second and
// drives the Alerter. It is owned by whoever serves the board and stops with
// that owner's context; there is no global timer state.
type Poller struct {
	store    *Store
	alerter  *Alerter
	interval time.Duration
}

// NewPoller creates a 1 Hz poller over the store and alerter.
func NewPoller(store *Store, alerter *Alerter) *Poller {
	return &Poller{
		store:    store,
		alerter:  alerter,
		interval: time.Second,
	}
}

// Run blocks until ctx is cancelled, ticking at the polling interval.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(time.Now())
		}
	}
}

// Tick runs one evaluation pass at the given instant: classify every record,
// aggregate the overdue set, reconcile the alarm.
func (p *Poller) Tick(now time.Time) {
	p.alerter.Update(OverdueIDs(p.store.Records(), now))
}
