package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
		SentryUrl string `env:"SENTRY_URL"`
		Timezone  string `env:"APP_TIMEZONE" env-default:"Local"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Player struct {
		ImageDuration    time.Duration `env:"PLAYER_IMAGE_DURATION" env-default:"5s"`
		VideoMaxDuration time.Duration `env:"PLAYER_VIDEO_MAX_DURATION" env-default:"0s"`
		PauseOnHold      bool          `env:"PLAYER_PAUSE_ON_HOLD" env-default:"true"`
		SaveProgress     bool          `env:"PLAYER_SAVE_PROGRESS" env-default:"true"`
		FrameInterval    time.Duration `env:"PLAYER_FRAME_INTERVAL" env-default:"16ms"`
		SeenReadTimeout  time.Duration `env:"PLAYER_SEEN_READ_TIMEOUT" env-default:"3s"`
		SeenStore        string        `env:"PLAYER_SEEN_STORE" env-default:"memory"`
		SqlitePath       string        `env:"PLAYER_SQLITE_PATH" env-default:"./seen.db"`
		SeenRetention    time.Duration `env:"PLAYER_SEEN_RETENTION" env-default:"720h"`
		WaitImageLoad    bool          `env:"PLAYER_WAIT_IMAGE_LOAD" env-default:"false"`
	}
	Theme struct {
		BackgroundColor        string   `env:"THEME_BACKGROUND_COLOR" env-default:"#000000"`
		CloseIconColor         string   `env:"THEME_CLOSE_ICON_COLOR" env-default:"#00000099"`
		AvatarSize             int      `env:"THEME_AVATAR_SIZE" env-default:"60"`
		StoryAvatarSize        int      `env:"THEME_STORY_AVATAR_SIZE" env-default:"25"`
		ShowName               bool     `env:"THEME_SHOW_NAME" env-default:"false"`
		AvatarBorderColors     []string `env:"THEME_AVATAR_BORDER_COLORS" env-separator:"," env-default:"#F7B801,#F18701,#F35B04,#F5301E,#C81D4E,#8F1D4E"`
		AvatarSeenBorderColors []string `env:"THEME_AVATAR_SEEN_BORDER_COLORS" env-separator:"," env-default:"#2A2A2C"`
	}
	Prefetch struct {
		Workers           int           `env:"PREFETCH_WORKERS" env-default:"4"`
		RequestsPerSecond float64       `env:"PREFETCH_RPS" env-default:"10"`
		CacheEntries      int           `env:"PREFETCH_CACHE_ENTRIES" env-default:"128"`
		Timeout           time.Duration `env:"PREFETCH_TIMEOUT" env-default:"15s"`
	}
	Instagram struct {
		User           string `env:"INSTAGRAM_USER"`
		Pass           string `env:"INSTAGRAM_PASS"`
		SessionPath    string `env:"INSTAGRAM_SESSION_PATH" env-default:"./goinsta-session"`
		UsersParse     string `env:"INSTAGRAM_USERS_PARSE"`
		RefreshMinutes int    `env:"INSTAGRAM_REFRESH_MINUTES" env-default:"30"`
		FetchWorkers   int    `env:"INSTAGRAM_FETCH_WORKERS" env-default:"5"`
	}
	Telegram struct {
		Token          string  `env:"TELEGRAM_TOKEN"`
		AllowedChatIDs []int64 `env:"TELEGRAM_ALLOWED_CHAT_IDS" env-separator:","`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// .env is optional; the process environment always wins.
		_ = godotenv.Load()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string used by goose and lib/pq.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// InstagramEnabled reports whether credentials for the story source are present.
func (c *Config) InstagramEnabled() bool {
	return c.Instagram.User != "" && c.Instagram.Pass != "" && c.Instagram.UsersParse != ""
}

// TelegramEnabled reports whether the remote-control bot should be started.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != ""
}
