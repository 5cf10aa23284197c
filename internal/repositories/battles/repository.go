package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbattles -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Repository stores the live battle of each channel
type Repository interface {
	// Create stores a new battle. A channel holds at most one battle.
	Create(ctx context.Context, battle *entities.Battle) error

	// Get retrieves the battle of a channel
	Get(ctx context.Context, channelID string) (*entities.Battle, error)

	// Delete removes the battle of a channel
	Delete(ctx context.Context, channelID string) error

	// List returns every live battle
	List(ctx context.Context) ([]*entities.Battle, error)
}
