package slack

import (
	"errors"
	"strings"
	"testing"

	slackapi "github.com/slack-go/slack"

	"github.com/Frenkieli/car-dispatch/internal/notify"
)

// mockClient records PostMessage calls.
type mockClient struct {
	channels []string
	optCount []int
	err      error
}

func (m *mockClient) PostMessage(channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.channels = append(m.channels, channelID)
	m.optCount = append(m.optCount, len(options))
	return channelID, "123.456", m.err
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Opts{BotToken: "xoxb-x"}); err == nil {
		t.Error("expected error when channel id is missing")
	}
	if _, err := New(Opts{ChannelID: "C1"}); err == nil {
		t.Error("expected error when bot token and client are missing")
	}
	if _, err := New(Opts{ChannelID: "C1", Client: &mockClient{}}); err != nil {
		t.Errorf("unexpected error with injected client: %v", err)
	}
}

func TestSend_PostsToChannel(t *testing.T) {
	mock := &mockClient{}
	n, err := New(Opts{ChannelID: "C42", Client: mock})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := n.Send(notify.OverdueMessage([]string{"R1", "R2"})); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(mock.channels) != 1 || mock.channels[0] != "C42" {
		t.Errorf("channels = %v, want one post to C42", mock.channels)
	}
	if mock.optCount[0] == 0 {
		t.Error("expected at least one message option (attachment)")
	}
}

func TestSend_Error(t *testing.T) {
	mock := &mockClient{err: errors.New("channel_not_found")}
	n, _ := New(Opts{ChannelID: "C42", Client: mock})

	err := n.Send(notify.AllClearMessage())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "channel_not_found") {
		t.Errorf("error = %q, want to wrap channel_not_found", err.Error())
	}
}

func TestColorFor(t *testing.T) {
	if colorFor(notify.LevelAlert) == colorFor(notify.LevelClear) {
		t.Error("alert and clear must use distinct colors")
	}
	if colorFor(notify.LevelInfo) == "" {
		t.Error("info level must have a color")
	}
}
