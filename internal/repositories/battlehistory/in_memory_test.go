package battlehistory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory"
	mockhistory "github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInMemoryRepository_RingBuffer(t *testing.T) {
	ctx := context.Background()
	repo := battlehistory.NewInMemoryRepository(battlehistory.DefaultCapacity, nil)

	for i := 0; i < 55; i++ {
		require.NoError(t, repo.Append(ctx, &entities.BattleRecord{ID: fmt.Sprintf("b%d", i), Rounds: i}))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, battlehistory.DefaultCapacity)
	assert.Equal(t, "b54", all[0].ID, "newest first")
	assert.Equal(t, "b5", all[len(all)-1].ID, "oldest entries evicted")

	latest, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b54", "b53"}, []string{latest[0].ID, latest[1].ID})
}

func TestInMemoryRepository_StampsEndTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mockhistory.NewMockTimeProvider(ctrl)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Times(1)

	repo := battlehistory.NewInMemoryRepository(5, clock)
	record := &entities.BattleRecord{ID: "b1"}
	require.NoError(t, repo.Append(context.Background(), record))
	assert.Equal(t, now, record.EndedAt)

	stamped := &entities.BattleRecord{ID: "b2", EndedAt: now.Add(time.Hour)}
	require.NoError(t, repo.Append(context.Background(), stamped))
	assert.Equal(t, now.Add(time.Hour), stamped.EndedAt)

	assert.Error(t, repo.Append(context.Background(), nil))
}
