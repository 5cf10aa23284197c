package battlehistory

//go:generate mockgen -destination=mock/mock_repository.go -package=mockhistory -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// DefaultCapacity is how many finished battles are kept
const DefaultCapacity = 50

// Repository is a capped, newest-first log of finished battles
type Repository interface {
	// Append records a finished battle, evicting the oldest past capacity
	Append(ctx context.Context, record *entities.BattleRecord) error

	// List returns up to limit records, newest first. A limit of zero returns all.
	List(ctx context.Context, limit int) ([]*entities.BattleRecord, error)
}
