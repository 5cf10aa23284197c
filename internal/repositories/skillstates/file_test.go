package skillstates_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
	"github.com/KirkDiggler/arena-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeState(caster string) *entities.ChannelState {
	state := entities.NewChannelState()
	state.BattleActive = true
	inst := testutils.CreateTestSkill(caster, caster, 3, entities.CasterSideUser)
	inst.UserName = "퀴니"
	inst.TargetName = "퀴니"
	state.ActiveSkills[entities.SkillOnixel] = inst
	return state
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := skillstates.NewFileStore(dir)

	require.NoError(t, store.Save(ctx, map[string]*entities.ChannelState{
		"c1": activeState("u1"),
		"c2": entities.NewChannelState(),
	}, nil))

	raw, err := os.ReadFile(filepath.Join(dir, skillstates.StatesFileName))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\"오닉셀\"")
	assert.NotContains(t, string(raw), "\"c2\"", "empty channels are not written")

	reopened := skillstates.NewFileStore(dir)
	states, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, states, "c1")
	assert.Equal(t, 3, states["c1"].ActiveSkills[entities.SkillOnixel].RoundsLeft)
}

func TestFileStore_MergesAndRemoves(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := skillstates.NewFileStore(dir)
	require.NoError(t, first.Save(ctx, map[string]*entities.ChannelState{"c1": activeState("u1")}, nil))

	// a fresh store must not drop channels it did not load itself
	second := skillstates.NewFileStore(dir)
	require.NoError(t, second.Save(ctx, map[string]*entities.ChannelState{"c2": activeState("u2")}, nil))

	states, err := skillstates.NewFileStore(dir).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 2)

	require.NoError(t, second.Save(ctx, nil, []string{"c1"}))
	states, err = skillstates.NewFileStore(dir).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Contains(t, states, "c2")
}

func TestFileStore_MissingAndCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	states, err := skillstates.NewFileStore(dir).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, states)

	require.NoError(t, os.WriteFile(filepath.Join(dir, skillstates.StatesFileName), []byte("{broken"), 0o644))
	_, err = skillstates.NewFileStore(dir).Load(ctx)
	assert.Error(t, err)
}
