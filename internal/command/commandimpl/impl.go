package commandimpl

import (
	"slices"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/command"
	"github.com/orgball2608/insta-stories-player/internal/feed"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/ratelimit"
	"github.com/orgball2608/insta-stories-player/internal/telegram"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

// Each chat may send a burst of 5 commands, then one per second.
const (
	limitRequests = 1
	limitPer      = time.Second
	limitBurst    = 5
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Player   player.Player
	Feed     feed.Client `optional:"true"`
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Player   player.Player
	Feed     feed.Client
	Logger   logger.Logger
	Limiter  ratelimit.Limiter

	allowed []int64
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Player:   opts.Player,
		Feed:     opts.Feed,
		Logger:   opts.Logger.WithComponent("Command"),
		Limiter:  ratelimit.NewInMemoryLimiter(limitRequests, limitPer, limitBurst),
		allowed:  opts.Config.Telegram.AllowedChatIDs,
	}
}

var _ command.Client = (*CommandImpl)(nil)

// isAllowed reports whether chatID may control the player. An empty allow
// list admits every chat.
func (c *CommandImpl) isAllowed(chatID int64) bool {
	return len(c.allowed) == 0 || slices.Contains(c.allowed, chatID)
}
