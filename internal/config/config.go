package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Skills  SkillsConfig
	Battle  BattleConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL keeps
// history and the skill-state mirror in memory only.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// SkillsConfig locates the skill settings and the persisted channel state
type SkillsConfig struct {
	DataDir          string        `env:"SKILL_DATA_DIR" envDefault:"skills/data"`
	ConfigDir        string        `env:"SKILL_CONFIG_DIR" envDefault:"skills/config"`
	AutoSaveInterval time.Duration `env:"SKILL_AUTO_SAVE_INTERVAL" envDefault:"30s"`
}

// BattleConfig tunes pacing and timeouts of the battle engine
type BattleConfig struct {
	TargetTimeout time.Duration `env:"BATTLE_TARGET_TIMEOUT" envDefault:"30s"`
	Pace          time.Duration `env:"BATTLE_PACE" envDefault:"1s"`
	IdleTimeout   time.Duration `env:"BATTLE_IDLE_TIMEOUT" envDefault:"1h"`
	HistorySize   int           `env:"BATTLE_HISTORY_SIZE" envDefault:"50"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if cfg.Battle.HistorySize < 1 {
		return nil, fmt.Errorf("BATTLE_HISTORY_SIZE must be positive")
	}

	return cfg, nil
}
