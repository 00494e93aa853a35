package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCron checks a 5-field cron expression.
func ValidateCron(expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("notify: cron %q: %w", expr, err)
	}
	return nil
}

// nextCronDuration parses a 5-field cron expression and returns the duration
// until the next fire time. Returns 0 on parse error.
func nextCronDuration(expr string, from time.Time) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	d := sched.Next(from).Sub(from)
	if d < 0 {
		return 0
	}
	return d
}

// Digester sends a periodic board summary on a cron schedule.
type Digester struct {
	Expr     string
	Notifier Notifier
	Report   func() Report
}

// Run blocks until ctx is cancelled, sending a digest at every scheduled
// fire time. Delivery failures are logged and the schedule continues.
func (d *Digester) Run(ctx context.Context) error {
	if err := ValidateCron(d.Expr); err != nil {
		return err
	}
	for {
		timer := time.NewTimer(nextCronDuration(d.Expr, time.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if err := d.Notifier.Send(DigestMessage(d.Report())); err != nil {
				log.Printf("notify: digest: %v", err)
			}
		}
	}
}
