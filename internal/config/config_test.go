package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"DISCORD_TOKEN":  "token-value",
		"DISCORD_APP_ID": "app-id",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-value", cfg.Discord.Token)
	assert.Equal(t, "", cfg.Redis.URL)
	assert.Equal(t, "skills/data", cfg.Skills.DataDir)
	assert.Equal(t, "skills/config", cfg.Skills.ConfigDir)
	assert.Equal(t, 30*time.Second, cfg.Skills.AutoSaveInterval)
	assert.Equal(t, 30*time.Second, cfg.Battle.TargetTimeout)
	assert.Equal(t, time.Second, cfg.Battle.Pace)
	assert.Equal(t, time.Hour, cfg.Battle.IdleTimeout)
	assert.Equal(t, 50, cfg.Battle.HistorySize)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"DISCORD_TOKEN":         "token-value",
		"DISCORD_APP_ID":        "app-id",
		"DISCORD_GUILD_ID":      "guild",
		"REDIS_URL":             "redis://localhost:6379/2",
		"BATTLE_PACE":           "0s",
		"BATTLE_TARGET_TIMEOUT": "5s",
	})
	require.NoError(t, err)

	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, time.Duration(0), cfg.Battle.Pace)
	assert.Equal(t, 5*time.Second, cfg.Battle.TargetTimeout)
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"DISCORD_APP_ID": "app-id"})
	assert.Error(t, err)

	_, err = config.LoadFrom(map[string]string{"DISCORD_TOKEN": "token-value"})
	assert.Error(t, err)

	_, err = config.LoadFrom(map[string]string{
		"DISCORD_TOKEN":       "token-value",
		"DISCORD_APP_ID":      "app-id",
		"BATTLE_HISTORY_SIZE": "0",
	})
	assert.Error(t, err)
}
