package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jot/internal/gate"
)

// API is the slice of the Telegram client the bot needs. *tgbotapi.BotAPI
// satisfies it; tests plug in fakes.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// ChannelChecker adapts GetChatMember to the gate's interface. A response
// saying the member list is inaccessible means the channel itself cannot
// be queried, which the gate treats as unreachable rather than denied.
type ChannelChecker struct {
	API API
}

func (c *ChannelChecker) Member(ctx context.Context, channel string, userID int64) (gate.Membership, error) {
	m, err := c.API.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channel,
			UserID:             userID,
		},
	})
	if err != nil {
		if strings.Contains(err.Error(), "member list is inaccessible") {
			return "", gate.ErrUnreachable
		}
		return "", err
	}
	return gate.Membership(m.Status), nil
}

// Notify implements reminder.Notifier: reminders go out as plain direct
// messages.
func (b *Bot) Notify(ctx context.Context, userID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(userID, text))
	return err
}
