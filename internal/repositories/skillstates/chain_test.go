package skillstates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
	mockskillstates "github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChain_SaveFansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockskillstates.NewMockStore(ctrl)
	backup := mockskillstates.NewMockStore(ctrl)
	changed := map[string]*entities.ChannelState{"c1": activeState("u1")}

	primary.EXPECT().Save(gomock.Any(), changed, []string{"c2"}).Return(nil)
	backup.EXPECT().Save(gomock.Any(), changed, []string{"c2"}).Return(errors.New("disk full"))

	err := skillstates.NewChain(primary, backup).Save(context.Background(), changed, []string{"c2"})
	assert.ErrorContains(t, err, "disk full")
}

func TestChain_LoadRestoresMissingChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockskillstates.NewMockStore(ctrl)
	backup := mockskillstates.NewMockStore(ctrl)

	fromFile := activeState("file-user")
	fromBackup := activeState("backup-user")
	primary.EXPECT().Load(gomock.Any()).Return(map[string]*entities.ChannelState{"c1": fromFile}, nil)
	backup.EXPECT().Load(gomock.Any()).Return(map[string]*entities.ChannelState{
		"c1": activeState("stale"),
		"c2": fromBackup,
	}, nil)

	states, err := skillstates.NewChain(primary, backup).Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, fromFile, states["c1"], "primary wins over backup")
	assert.Same(t, fromBackup, states["c2"])
}

func TestChain_LoadFallsBackWhenPrimaryCorrupt(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockskillstates.NewMockStore(ctrl)
	backup := mockskillstates.NewMockStore(ctrl)

	primary.EXPECT().Load(gomock.Any()).Return(nil, errors.New("bad json"))
	backup.EXPECT().Load(gomock.Any()).Return(map[string]*entities.ChannelState{"c1": activeState("u1")}, nil)

	states, err := skillstates.NewChain(primary, backup).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 1)
}

func TestChain_LoadNothingReadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockskillstates.NewMockStore(ctrl)
	primary.EXPECT().Load(gomock.Any()).Return(nil, errors.New("bad json"))

	states, err := skillstates.NewChain(primary).Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, states)
}
