package skillstates_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *skillstates.SQLiteStore {
	t.Helper()
	store, err := skillstates.OpenSQLite(filepath.Join(t.TempDir(), skillstates.BackupFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	require.NoError(t, store.Save(ctx, map[string]*entities.ChannelState{
		"c1": activeState("u1"),
		"c2": activeState("u2"),
	}, nil))

	states, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "u2", states["c2"].ActiveSkills[entities.SkillOnixel].UserID)

	// overwrite c1 and drop c2
	updated := activeState("u1")
	updated.ActiveSkills[entities.SkillOnixel].RoundsLeft = 1
	require.NoError(t, store.Save(ctx, map[string]*entities.ChannelState{"c1": updated}, []string{"c2"}))

	states, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, 1, states["c1"].ActiveSkills[entities.SkillOnixel].RoundsLeft)

	// an emptied channel is removed rather than stored
	require.NoError(t, store.Save(ctx, map[string]*entities.ChannelState{"c1": entities.NewChannelState()}, nil))
	states, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestSQLiteStore_ConfigBackup(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t)

	require.NoError(t, store.SaveConfig(ctx, "main_config", []byte(`{"authorized_nickname":"system | 시스템"}`)))
	require.NoError(t, store.SaveConfig(ctx, "main_config", []byte(`{"authorized_nickname":"관리자"}`)))

	data, err := store.LoadConfig(ctx, "main_config")
	require.NoError(t, err)
	assert.JSONEq(t, `{"authorized_nickname":"관리자"}`, string(data))

	_, err = store.LoadConfig(ctx, "user_skills")
	assert.Error(t, err)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := skillstates.OpenSQLite("  ")
	assert.Error(t, err)
}
