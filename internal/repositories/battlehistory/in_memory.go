package battlehistory

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

type inMemoryRepository struct {
	mu           sync.RWMutex
	records      []*entities.BattleRecord
	capacity     int
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a history ring held in process memory
func NewInMemoryRepository(capacity int, timeProvider TimeProvider) Repository {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if timeProvider == nil {
		timeProvider = NewTimeProvider()
	}
	return &inMemoryRepository{
		records:      make([]*entities.BattleRecord, 0, capacity),
		capacity:     capacity,
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Append(ctx context.Context, record *entities.BattleRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.EndedAt.IsZero() {
		record.EndedAt = r.timeProvider.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	if len(r.records) > r.capacity {
		r.records = r.records[len(r.records)-r.capacity:]
	}
	return nil
}

func (r *inMemoryRepository) List(ctx context.Context, limit int) ([]*entities.BattleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]*entities.BattleRecord, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
