// Package telegram connects the dispatcher to the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mercellinas/mia-bot/internal/domain"
	"github.com/mercellinas/mia-bot/internal/observability"
)

const pollTimeout = 60

// botAPI is the part of *tgbotapi.BotAPI the adapter uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot is both the event source and the domain.Transport.
type Bot struct {
	api botAPI
}

// NewBot authenticates with the Bot API using token.
func NewBot(token string, debug bool) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	api.Debug = debug

	observability.Logger().Info("authorized on telegram", "username", api.Self.UserName)

	return &Bot{api: api}, nil
}

// Listen long-polls for updates and delivers them as domain events. The
// returned channel is closed once ctx is done and polling has stopped.
func (b *Bot) Listen(ctx context.Context) <-chan domain.ChatEvent {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	out := make(chan domain.ChatEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				b.api.StopReceivingUpdates()
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				ev, ok := ToEvent(update)
				if !ok {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					b.api.StopReceivingUpdates()
					return
				}
			}
		}
	}()
	return out
}

// ─────────────────────────────────────────────
// domain.Transport
// ─────────────────────────────────────────────

func (b *Bot) SendText(ctx context.Context, chat domain.ChatID, text string, buttons []domain.Button) error {
	msg := tgbotapi.NewMessage(int64(chat), text)
	if len(buttons) > 0 {
		msg.ReplyMarkup = inlineKeyboard(buttons)
	}
	_, err := b.api.Send(msg)
	return outcome("sendMessage", err)
}

func (b *Bot) SendPhoto(ctx context.Context, chat domain.ChatID, photo domain.Photo, caption string) error {
	cfg := tgbotapi.NewPhoto(int64(chat), tgbotapi.FileBytes{Name: photo.Name, Bytes: photo.Data})
	cfg.Caption = caption
	_, err := b.api.Send(cfg)
	return outcome("sendPhoto", err)
}

func (b *Bot) Acknowledge(ctx context.Context, callbackID string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return outcome("answerCallbackQuery", err)
}

func inlineKeyboard(buttons []domain.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Payload),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func outcome(method string, err error) error {
	if err != nil {
		observability.OutboundTotal.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("%w: %s: %w", domain.ErrTransportFailure, method, err)
	}
	observability.OutboundTotal.WithLabelValues(method, "ok").Inc()
	return nil
}
