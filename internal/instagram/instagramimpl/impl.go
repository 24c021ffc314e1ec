package instagramimpl

import (
	"sync"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-stories-player/internal/instagram"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type InstaImpl struct {
	mu     sync.RWMutex
	client *goinsta.Instagram

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *InstaImpl {
	return &InstaImpl{
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("Instagram"),
	}
}

var _ instagram.Client = (*InstaImpl)(nil)

func (ig *InstaImpl) current() (*goinsta.Instagram, error) {
	ig.mu.RLock()
	defer ig.mu.RUnlock()
	if ig.client == nil {
		return nil, instagram.ErrNotLoggedIn
	}
	return ig.client, nil
}

func (ig *InstaImpl) setClient(c *goinsta.Instagram) {
	ig.mu.Lock()
	ig.client = c
	ig.mu.Unlock()
}
