package alerts

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// Infra delivers alerts to the operators' Telegram chat. Without a token
// and chat id configured it stays silent, so local runs need no bot.
type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewInfra(cfg config.Config) *Infra {
	if cfg.TelegramAlertToken == "" || cfg.TelegramAlertChatID == 0 {
		return &Infra{}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAlertToken)
	if err != nil {
		log.Printf("[alerts] telegram init failed: %v", err)
		return &Infra{}
	}

	return &Infra{bot: bot, chatID: cfg.TelegramAlertChatID}
}

func (i *Infra) Notify(ctx context.Context, service string, err error, details string) error {
	if i.bot == nil {
		return nil
	}

	text := fmt.Sprintf(
		"❗ Alert from %s\n\nError: %v\n\nDetails: %s",
		service,
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.chatID, text)

	if _, sendErr := i.bot.Send(msg); sendErr != nil {
		log.Printf("[alerts] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
