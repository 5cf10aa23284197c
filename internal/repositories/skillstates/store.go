package skillstates

//go:generate mockgen -destination=mock/mock_store.go -package=mockskillstates -source=store.go

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Store persists per-channel skill state. It is a write-behind cache of the
// in-memory registry and is only read at startup.
type Store interface {
	// Save upserts the given channels and removes the listed ones
	Save(ctx context.Context, changed map[string]*entities.ChannelState, removed []string) error

	// Load returns every persisted channel
	Load(ctx context.Context) (map[string]*entities.ChannelState, error)
}

// ConfigBackup keeps a copy of the skill settings files
type ConfigBackup interface {
	SaveConfig(ctx context.Context, configType string, data []byte) error
}
