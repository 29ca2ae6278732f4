package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all bot configuration loaded from environment variables
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Table   TableConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// DiscordConfig holds Discord connection settings
type DiscordConfig struct {
	Token         string `envconfig:"DISCORD_TOKEN" required:"true"`
	ApplicationID string `envconfig:"APPLICATION_ID"`
	GuildID       string `envconfig:"GUILD_ID"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// TableConfig holds game table settings
type TableConfig struct {
	// GMUserIDs are the Discord users treated as game masters
	GMUserIDs []string `envconfig:"GM_USER_IDS"`

	// ItemName overrides the stored item name setting when non-empty
	ItemName string `envconfig:"E20_ITEM_NAME"`

	MessageTone string `envconfig:"MESSAGE_TONE" default:"neutral"`
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	// Addr is the listen address of /metrics, empty disables the endpoint
	Addr string `envconfig:"METRICS_ADDR" default:":9090"`
}

// SlogLevel maps the configured level name to a slog level
func (l *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads configuration from the environment, after loading any .env files
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are fine
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}
