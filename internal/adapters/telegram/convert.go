package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mercellinas/mia-bot/internal/domain"
)

// ToEvent maps an update to a domain event. Commands other than /start,
// non-text messages and updates without a sender are dropped.
func ToEvent(u tgbotapi.Update) (domain.ChatEvent, bool) {
	switch {
	case u.Message != nil:
		m := u.Message
		if m.From == nil || m.Chat == nil {
			return nil, false
		}
		userID := userIDOf(m.From)
		chatID := domain.ChatID(m.Chat.ID)

		if m.IsCommand() {
			if m.Command() == "start" {
				return domain.StartCommand{UserID: userID, ChatID: chatID}, true
			}
			return nil, false
		}
		if m.Text == "" {
			return nil, false
		}
		return domain.TextMessage{UserID: userID, ChatID: chatID, Text: m.Text}, true

	case u.CallbackQuery != nil:
		q := u.CallbackQuery
		if q.From == nil {
			return nil, false
		}
		// Private chats share the user's ID.
		chatID := domain.ChatID(q.From.ID)
		if q.Message != nil && q.Message.Chat != nil {
			chatID = domain.ChatID(q.Message.Chat.ID)
		}
		return domain.ButtonTap{
			UserID:     userIDOf(q.From),
			ChatID:     chatID,
			CallbackID: q.ID,
			StyleName:  q.Data,
		}, true
	}
	return nil, false
}

func userIDOf(u *tgbotapi.User) domain.UserID {
	return domain.UserID(strconv.FormatInt(u.ID, 10))
}
