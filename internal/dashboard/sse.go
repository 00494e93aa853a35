package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Frenkieli/car-dispatch/internal/board"
)

// tickEvent is the 1 Hz SSE payload: the live clock, the classified rows,
// and the alarm state the page needs to drive the alert tone.
type tickEvent struct {
	Now         string     `json:"now"`
	LastUpdated string     `json:"lastUpdated,omitempty"`
	Records     []Row      `json:"records"`
	Alert       alertState `json:"alert"`
}

type alertState struct {
	Active       bool     `json:"active"`
	SoundEnabled bool     `json:"soundEnabled"`
	Overdue      []string `json:"overdue"`
}

// buildTick snapshots the board for one SSE tick.
func buildTick(store *board.Store, alerter *board.Alerter, now time.Time) tickEvent {
	records := store.Records()
	evt := tickEvent{
		Now:     now.Format("2006-01-02 15:04:05"),
		Records: buildRows(records, now),
		Alert: alertState{
			Active:       alerter.Active(),
			SoundEnabled: alerter.SoundEnabled(),
			Overdue:      board.OverdueIDs(records, now),
		},
	}
	if lu := store.LastUpdated(); !lu.IsZero() {
		evt.LastUpdated = lu.Format("2006-01-02 15:04:05")
	}
	return evt
}

// handleSSE streams board ticks to the client. Every connection gets its own
// 1-second ticker; the stream ends when the client goes away.
func handleSSE(store *board.Store, alerter *board.Alerter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
		c.Writer.Flush()

		// First tick immediately so the page doesn't render blank for a second.
		writeSSE(c.Writer, "tick", buildTick(store, alerter, time.Now()))
		c.Writer.Flush()

		ctx := c.Request.Context()
		ticker := time.NewTicker(time.Second)
		heartbeat := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-heartbeat.C:
				writeSSE(c.Writer, "heartbeat", map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
				c.Writer.Flush()
			case <-ticker.C:
				writeSSE(c.Writer, "tick", buildTick(store, alerter, time.Now()))
				c.Writer.Flush()
			}
		}
	}
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
