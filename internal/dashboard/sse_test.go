package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/Frenkieli/car-dispatch/internal/board"
)

func TestBuildTick(t *testing.T) {
	store, alerter := newTestBoard(t)
	if _, err := store.Load([]map[string]string{
		{"編號": "R1", "時間": "00:01"},
		{"編號": "R2", "時間": "23:59"},
	}); err != nil {
		t.Fatalf("load: %v", err)
	}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	evt := buildTick(store, alerter, now)

	if evt.Now != "2024-03-01 12:00:00" {
		t.Errorf("Now = %q, want %q", evt.Now, "2024-03-01 12:00:00")
	}
	if evt.LastUpdated == "" {
		t.Error("LastUpdated should be set after a load")
	}
	if len(evt.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(evt.Records))
	}
	if evt.Records[0].Urgency != "overdue" || evt.Records[1].Urgency != "normal" {
		t.Errorf("urgencies = %q, %q, want overdue, normal",
			evt.Records[0].Urgency, evt.Records[1].Urgency)
	}
	if got := evt.Alert.Overdue; len(got) != 1 || got[0] != "R1" {
		t.Errorf("Alert.Overdue = %v, want [R1]", got)
	}
	if evt.Alert.Active {
		t.Error("alert active before any alerter tick")
	}
}

func TestBuildTick_EmptyStore(t *testing.T) {
	store, alerter := newTestBoard(t)

	evt := buildTick(store, alerter, time.Now())
	if evt.LastUpdated != "" {
		t.Errorf("LastUpdated = %q, want empty", evt.LastUpdated)
	}
	if len(evt.Records) != 0 {
		t.Errorf("records = %d, want 0", len(evt.Records))
	}
}

func TestWriteSSE(t *testing.T) {
	var sb strings.Builder
	writeSSE(&sb, "tick", map[string]string{"k": "v"})

	got := sb.String()
	want := "event: tick\ndata: {\"k\":\"v\"}\n\n"
	if got != want {
		t.Errorf("writeSSE output = %q, want %q", got, want)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		urgency board.Urgency
		want    string
	}{
		{board.UrgencyConfirmed, "已確認"},
		{board.UrgencyOverdue, "已超時"},
		{board.UrgencyApproaching, "待確認"},
		{board.UrgencyNormal, "待確認"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.urgency); got != tt.want {
			t.Errorf("statusLabel(%s) = %q, want %q", tt.urgency, got, tt.want)
		}
	}
}
