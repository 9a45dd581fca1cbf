package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DeliveryError — Telegram ответил не-успехом.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Telegram error %d: %s", e.Status, e.Body)
}

// Sender шлёт текст в один чат. Без ретраев.
type Sender struct {
	bot    *tgbotapi.BotAPI
	chatID string
}

func NewBot(token, apiEndpoint string) (*tgbotapi.BotAPI, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	log.Printf("[telegram] ready: @%s", bot.Self.UserName)
	return bot, nil
}

func NewSender(bot *tgbotapi.BotAPI, chatID string) *Sender {
	return &Sender{bot: bot, chatID: strings.TrimSpace(chatID)}
}

func (s *Sender) Bot() *tgbotapi.BotAPI { return s.bot }

func (s *Sender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := NewMessage(s.chatID, text)
	if err != nil {
		return err
	}

	if _, err := s.bot.Send(msg); err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) {
			return &DeliveryError{Status: apiErr.Code, Body: apiErr.Message}
		}
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// NewMessage принимает числовой chat id или @username канала.
func NewMessage(chatID, text string) (tgbotapi.MessageConfig, error) {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text), nil
	}
	if strings.HasPrefix(chatID, "@") {
		return tgbotapi.NewMessageToChannel(chatID, text), nil
	}
	return tgbotapi.MessageConfig{}, fmt.Errorf("invalid chat id %q", chatID)
}
