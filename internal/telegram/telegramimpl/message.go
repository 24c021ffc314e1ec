package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage replies with plain text; status replies carry no links.
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true

	sent, err := tg.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send reply to chat %d: %w", chatID, err)
	}

	tg.Logger.Debug("Reply sent", "chat_id", chatID, "message_id", sent.MessageID)
	return sent.MessageID, nil
}

func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.bot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.bot.StopReceivingUpdates()
}
