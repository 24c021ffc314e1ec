package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}
			go c.processUpdate(ctx, update)
		}
	}
}

func (c *CommandImpl) processUpdate(ctx context.Context, u tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	msg := u.Message
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return
	}
	chatID := msg.Chat.ID

	if !c.isAllowed(chatID) {
		c.Logger.Warn("Command from unknown chat ignored", "chat_id", chatID, "command", msg.Command())
		return
	}
	if !c.Limiter.Allow(chatID) {
		c.reply(chatID, "Too many commands, slow down a little.")
		return
	}

	c.Logger.Debug("Command received", "chat_id", chatID, "command", msg.Command(), "args", msg.CommandArguments())
	text, err := c.processCommand(ctx, msg.Command(), msg.CommandArguments())
	if err != nil {
		c.Logger.Error("Error processing command", "command", msg.Command(), "error", err)
	}
	c.reply(chatID, text)
}

func (c *CommandImpl) reply(chatID int64, text string) {
	if text == "" {
		return
	}
	if _, err := c.Telegram.SendMessage(chatID, text); err != nil {
		c.Logger.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}
