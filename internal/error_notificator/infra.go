package error_notificator

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewInfra(bot *tgbotapi.BotAPI, adminChatID int64) *Infra {
	return &Infra{bot: bot, adminChatID: adminChatID}
}

func (i *Infra) Notify(ctx context.Context, runID string, err error, details string) error {
	if i.bot == nil || i.adminChatID == 0 {
		return nil
	}

	text := fmt.Sprintf(
		"❗ Ошибка ежедневной рассылки (%s)\n\nОшибка: %v\n\nДетали: %s",
		runID,
		err,
		details,
	)

	_, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text))
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
