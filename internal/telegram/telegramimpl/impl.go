package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-stories-player/internal/telegram"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
)

// TelegramImpl is the remote-control bot. It is only built when a token is
// configured, so it is constructed directly rather than through fx.
type TelegramImpl struct {
	bot    *tgbotapi.BotAPI
	Logger logger.Logger
}

var _ telegram.Client = (*TelegramImpl)(nil)

func New(token string, log logger.Logger) (*TelegramImpl, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}

	log = log.WithComponent("Telegram")
	log.Info("Authorized telegram bot", "username", bot.Self.UserName)

	return &TelegramImpl{
		bot:    bot,
		Logger: log,
	}, nil
}
