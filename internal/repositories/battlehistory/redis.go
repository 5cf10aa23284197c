package battlehistory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/redis/go-redis/v9"
)

const historyKey = "battle:history"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	Capacity     int
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	capacity     int
	timeProvider TimeProvider
}

// NewRedis creates a history ring stored as a capped Redis list
func NewRedis(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	repo := &redisRepo{
		client:       cfg.Client,
		capacity:     cfg.Capacity,
		timeProvider: cfg.TimeProvider,
	}
	if repo.capacity < 1 {
		repo.capacity = DefaultCapacity
	}
	if repo.timeProvider == nil {
		repo.timeProvider = NewTimeProvider()
	}
	return repo
}

func (r *redisRepo) Append(ctx context.Context, record *entities.BattleRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.EndedAt.IsZero() {
		record.EndedAt = r.timeProvider.Now()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal battle record: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, historyKey, string(data))
	pipe.LTrim(ctx, historyKey, 0, int64(r.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append battle record: %w", err)
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context, limit int) ([]*entities.BattleRecord, error) {
	if limit <= 0 || limit > r.capacity {
		limit = r.capacity
	}

	raw, err := r.client.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read battle history: %w", err)
	}

	out := make([]*entities.BattleRecord, 0, len(raw))
	for _, item := range raw {
		var record entities.BattleRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal battle record: %w", err)
		}
		out = append(out, &record)
	}
	return out, nil
}
