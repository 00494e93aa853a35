// Package slack implements the notify.Notifier for Slack via the Web API.
package slack

import (
	"fmt"

	slackapi "github.com/slack-go/slack"

	"github.com/Frenkieli/car-dispatch/internal/notify"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessage(channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Notifier posts alert messages to a single Slack channel.
type Notifier struct {
	client    slackClient
	channelID string
}

// Opts holds parameters for creating a Slack Notifier.
type Opts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string // channel to post to
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// New creates a Slack Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("slack: channel id is required")
	}
	if opts.Client == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("slack: bot token is required")
		}
		opts.Client = slackapi.New(opts.BotToken)
	}
	return &Notifier{client: opts.Client, channelID: opts.ChannelID}, nil
}

// Send posts the message as a colored attachment.
func (n *Notifier) Send(msg notify.Message) error {
	attachment := slackapi.Attachment{
		Color: colorFor(msg.Level),
		Title: msg.Subject,
		Text:  msg.Body,
	}
	if _, _, err := n.client.PostMessage(n.channelID, slackapi.MsgOptionAttachments(attachment)); err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}

func colorFor(level notify.Level) string {
	switch level {
	case notify.LevelAlert:
		return "#d32f2f"
	case notify.LevelClear:
		return "#2e7d32"
	default:
		return "#455a64"
	}
}
