package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken          string        `envconfig:"BOT_TOKEN" required:"true"`
	ChatIDs           string        `envconfig:"CHAT_IDS" default:""`                          // comma-separated allow-list; empty = open access
	SettingsPath      string        `envconfig:"SETTINGS_PATH" default:"./data/settings.json"` // per-user settings table
	JournalPath       string        `envconfig:"JOURNAL_PATH" default:"./data/journal.db"`     // emitted-signal journal
	BroadcastInterval time.Duration `envconfig:"BROADCAST_INTERVAL" default:"0"`               // 0 = broadcaster off
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`                     // debug|info|warn|error
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8080"`                    // healthz
}

// Load reads environment variables into Config.
// A .env file in the working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
