// Package discord implements the notify.Notifier for Discord via the REST API.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Frenkieli/car-dispatch/internal/notify"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts alert embeds to a single Discord channel. Sends go over the
// REST API; no gateway connection is opened.
type Notifier struct {
	sess      session
	channelID string
}

// Opts holds parameters for creating a Discord Notifier.
type Opts struct {
	BotToken  string // Discord bot token
	ChannelID string // channel to post to
	// For testing: inject a mock session instead of the real Discord API.
	Session session
}

// New creates a Discord Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel id is required")
	}
	if opts.Session == nil {
		if opts.BotToken == "" {
			return nil, fmt.Errorf("discord: bot token is required")
		}
		sess, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		opts.Session = sess
	}
	return &Notifier{sess: opts.Session, channelID: opts.ChannelID}, nil
}

// Send posts the message as a colored embed.
func (n *Notifier) Send(msg notify.Message) error {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Subject,
		Description: msg.Body,
		Color:       colorFor(msg.Level),
	}
	if _, err := n.sess.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		return fmt.Errorf("discord: send embed: %w", err)
	}
	return nil
}

func colorFor(level notify.Level) int {
	switch level {
	case notify.LevelAlert:
		return 0xd32f2f
	case notify.LevelClear:
		return 0x2e7d32
	default:
		return 0x455a64
	}
}
