package feedimpl

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/feed"
	"github.com/orgball2608/insta-stories-player/internal/instagram"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

type Settings struct {
	Usernames     []string
	Workers       int
	RefreshEvery  time.Duration
	UserDelay     time.Duration // upper bound of the random pause after each fetch
	SeenRetention time.Duration
	Location      *time.Location
}

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Clock     clockwork.Clock
	Player    player.Player
	SeenRepo  seenpointer.Repository
	Instagram instagram.Client `optional:"true"`
	Metrics   *metrics.Metrics `optional:"true"`
}

type FeedImpl struct {
	settings  Settings
	Instagram instagram.Client
	Player    player.Player
	SeenRepo  seenpointer.Repository
	Clock     clockwork.Clock
	Logger    logger.Logger
	Metrics   *metrics.Metrics

	mu   sync.Mutex
	last map[string]domain.UserStories // last good fetch per user
	sent domain.DataSet
}

func New(opts Opts) *FeedImpl {
	log := opts.Logger.WithComponent("Feed")
	return NewWithSettings(SettingsFromConfig(opts.Config, log), opts.Instagram, opts.Player,
		opts.SeenRepo, opts.Clock, log, opts.Metrics)
}

func NewWithSettings(s Settings, ig instagram.Client, p player.Player, repo seenpointer.Repository,
	clock clockwork.Clock, log logger.Logger, m *metrics.Metrics) *FeedImpl {
	if s.Workers <= 0 {
		s.Workers = 1
	}
	if s.Location == nil {
		s.Location = time.Local
	}
	return &FeedImpl{
		settings:  s,
		Instagram: ig,
		Player:    p,
		SeenRepo:  repo,
		Clock:     clock,
		Logger:    log,
		Metrics:   m,
		last:      make(map[string]domain.UserStories),
	}
}

var _ feed.Client = (*FeedImpl)(nil)

func SettingsFromConfig(cfg *config.Config, log logger.Logger) Settings {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.Local
		log.Warn("Failed to load timezone, using local timezone", "timezone", cfg.App.Timezone, "error", err)
	}
	return Settings{
		Usernames:     ParseUsernames(cfg.Instagram.UsersParse),
		Workers:       cfg.Instagram.FetchWorkers,
		RefreshEvery:  time.Duration(cfg.Instagram.RefreshMinutes) * time.Minute,
		UserDelay:     3 * time.Second,
		SeenRetention: cfg.Player.SeenRetention,
		Location:      loc,
	}
}

// ParseUsernames splits a comma separated list, dropping blanks and
// duplicates while keeping order.
func ParseUsernames(s string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "@"))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
