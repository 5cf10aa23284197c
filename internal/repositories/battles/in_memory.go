package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]*entities.Battle
}

// NewInMemoryRepository creates a new in-memory battle repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		battles: make(map[string]*entities.Battle),
	}
}

// Create stores a new battle
func (r *inMemoryRepository) Create(ctx context.Context, battle *entities.Battle) error {
	if battle == nil || battle.ChannelID == "" {
		return apperr.InvalidArgument("battle with channel id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ChannelID]; exists {
		return apperr.AlreadyExistsf("battle already running in channel %s", battle.ChannelID)
	}

	r.battles[battle.ChannelID] = battle
	return nil
}

// Get retrieves the battle of a channel
func (r *inMemoryRepository) Get(ctx context.Context, channelID string) (*entities.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, exists := r.battles[channelID]
	if !exists {
		return nil, apperr.NotFoundf("no battle in channel %s", channelID)
	}

	return battle, nil
}

// Delete removes the battle of a channel
func (r *inMemoryRepository) Delete(ctx context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[channelID]; !exists {
		return apperr.NotFoundf("no battle in channel %s", channelID)
	}

	delete(r.battles, channelID)
	return nil
}

// List returns every live battle ordered by channel
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Battle, 0, len(r.battles))
	for _, battle := range r.battles {
		out = append(out, battle)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChannelID < out[j].ChannelID })
	return out, nil
}
