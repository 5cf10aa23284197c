package skillstates

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/redis/go-redis/v9"
)

const statesKey = "skill:states"

// RedisRepoConfig holds configuration for the Redis mirror
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisStore struct {
	client redis.UniversalClient
}

// NewRedis mirrors channel state into a Redis hash keyed by channel id
func NewRedis(cfg *RedisRepoConfig) Store {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	return &redisStore{client: cfg.Client}
}

func (s *redisStore) Save(ctx context.Context, changed map[string]*entities.ChannelState, removed []string) error {
	values := make(map[string]any, len(changed))
	for id, state := range changed {
		if state == nil || state.IsEmpty() {
			removed = append(removed, id)
			continue
		}
		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal channel %s: %w", id, err)
		}
		values[id] = string(data)
	}
	if len(values) == 0 && len(removed) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	if len(values) > 0 {
		pipe.HSet(ctx, statesKey, values)
	}
	if len(removed) > 0 {
		pipe.HDel(ctx, statesKey, removed...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mirror skill states: %w", err)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context) (map[string]*entities.ChannelState, error) {
	raw, err := s.client.HGetAll(ctx, statesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read skill states: %w", err)
	}

	out := make(map[string]*entities.ChannelState, len(raw))
	for id, data := range raw {
		var state entities.ChannelState
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			continue
		}
		state.Normalize()
		out[id] = &state
	}
	return out, nil
}
