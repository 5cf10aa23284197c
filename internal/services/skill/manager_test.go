package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	mockskillstates "github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockStore  *mockskillstates.MockStore
	mockBackup *mockskillstates.MockConfigBackup
	manager    *Manager
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mockskillstates.NewMockStore(s.ctrl)
	s.mockBackup = mockskillstates.NewMockConfigBackup(s.ctrl)

	userSkills := UserSkills{
		"allowed-user": {AllowedSkills: []entities.SkillName{entities.SkillVirella, entities.SkillNexis}},
	}
	s.manager = NewManager(&ManagerConfig{
		Store:        s.mockStore,
		ConfigBackup: s.mockBackup,
		UserSkills:   userSkills,
	})
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) TestAddSkill_Success() {
	ok := s.manager.AddSkill("ch", entities.SkillOnixel, "u1", "User One", "u1", "User One", 3)
	s.Require().True(ok)

	state := s.manager.ChannelState("ch")
	inst := state.ActiveSkills[entities.SkillOnixel]
	s.Require().NotNil(inst)
	s.Equal("u1", inst.UserID)
	s.Equal(3, inst.RoundsLeft)
	s.Equal(1, inst.StartedRound)
	s.Equal(entities.CasterSideUser, inst.CasterSide)
}

func (s *ManagerTestSuite) TestAddSkill_AdminCasterSide() {
	s.Require().True(s.manager.AddSkill("ch", entities.SkillOriven, "1007172975222603798", "GM", "", "", 2))
	s.Equal(entities.CasterSideAdmin, s.manager.ChannelState("ch").ActiveSkills[entities.SkillOriven].CasterSide)
}

func (s *ManagerTestSuite) TestAddSkill_Rejections() {
	s.Require().True(s.manager.AddSkill("ch", entities.SkillOnixel, "u1", "One", "u1", "One", 3))

	tests := []struct {
		name     string
		channel  string
		skill    entities.SkillName
		caster   string
		duration int
	}{
		{"unknown skill", "ch", entities.SkillName("없는스킬"), "u2", 3},
		{"zero duration", "ch", entities.SkillStravos, "u2", 0},
		{"negative duration", "ch", entities.SkillStravos, "u2", -1},
		{"empty channel", "", entities.SkillStravos, "u2", 3},
		{"empty caster", "ch", entities.SkillStravos, "", 3},
		{"skill already active", "ch", entities.SkillOnixel, "u2", 3},
		{"caster already has a skill", "ch", entities.SkillStravos, "u1", 3},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			ok := s.manager.AddSkill(tt.channel, tt.skill, tt.caster, "name", "", "", tt.duration)
			s.False(ok)
		})
	}

	state := s.manager.ChannelState("ch")
	s.Len(state.ActiveSkills, 1)
}

func (s *ManagerTestSuite) TestOneSkillPerCasterAcrossChannels() {
	s.True(s.manager.AddSkill("ch1", entities.SkillOnixel, "u1", "One", "", "", 3))
	s.True(s.manager.AddSkill("ch2", entities.SkillStravos, "u1", "One", "", "", 3))

	for _, ch := range []string{"ch1", "ch2"} {
		casters := map[string]int{}
		for _, inst := range s.manager.ChannelState(ch).ActiveSkills {
			casters[inst.UserID]++
		}
		for _, n := range casters {
			s.Equal(1, n)
		}
	}
}

func (s *ManagerTestSuite) TestRemoveSkill_Idempotent() {
	s.Require().True(s.manager.AddSkill("ch", entities.SkillOnixel, "u1", "One", "", "", 3))
	s.True(s.manager.RemoveSkill("ch", entities.SkillOnixel))
	s.False(s.manager.RemoveSkill("ch", entities.SkillOnixel))
	s.False(s.manager.RemoveSkill("other", entities.SkillOnixel))
}

func (s *ManagerTestSuite) TestDecreaseSkillRounds_FloorsAtZero() {
	s.Require().True(s.manager.AddSkill("ch", entities.SkillOnixel, "u1", "One", "", "", 1))
	s.Require().True(s.manager.AddSkill("ch", entities.SkillStravos, "u2", "Two", "", "", 2))

	s.Equal([]entities.SkillName{entities.SkillOnixel}, s.manager.DecreaseSkillRounds("ch"))
	expired := s.manager.DecreaseSkillRounds("ch")
	s.ElementsMatch([]entities.SkillName{entities.SkillOnixel, entities.SkillStravos}, expired)

	state := s.manager.ChannelState("ch")
	s.Equal(0, state.ActiveSkills[entities.SkillOnixel].RoundsLeft)
	s.Equal(0, state.ActiveSkills[entities.SkillStravos].RoundsLeft)
}

func (s *ManagerTestSuite) TestChannelState_ReturnsCopy() {
	s.Require().True(s.manager.AddSkill("ch", entities.SkillOnixel, "u1", "One", "", "", 3))

	state := s.manager.ChannelState("ch")
	state.ActiveSkills[entities.SkillOnixel].RoundsLeft = 99
	delete(state.ActiveSkills, entities.SkillOnixel)

	s.Equal(3, s.manager.ChannelState("ch").ActiveSkills[entities.SkillOnixel].RoundsLeft)
}

func (s *ManagerTestSuite) TestChannelState_DefaultForUnknownChannel() {
	state := s.manager.ChannelState("nowhere")
	s.Equal(1, state.CurrentRound)
	s.Empty(state.ActiveSkills)
	s.False(s.manager.HasState("nowhere"))
}

func (s *ManagerTestSuite) TestIsAdmin() {
	s.True(s.manager.IsAdmin("1007172975222603798", "anyone"))
	s.True(s.manager.IsAdmin("123", "system | 시스템"))
	s.False(s.manager.IsAdmin("123", "시스템"))
	s.False(s.manager.IsAdmin("123", ""))
}

func (s *ManagerTestSuite) TestCanUse() {
	admin := "1007172975222603798"
	tests := []struct {
		name   string
		userID string
		skill  entities.SkillName
		want   bool
	}{
		{"user casts open skill", "u1", entities.SkillOnixel, true},
		{"admin casts open skill", admin, entities.SkillOnixel, true},
		{"user cannot cast admin skill", "u1", entities.SkillGrim, false},
		{"admin casts admin skill", admin, entities.SkillGrim, true},
		{"admin cannot cast users only skill", admin, entities.SkillPhoenix, false},
		{"user casts users only skill", "u1", entities.SkillPhoenix, true},
		{"identity skill for its owner", "1059908946741166120", entities.SkillNexis, true},
		{"identity skill for others", "u1", entities.SkillNexis, false},
		{"allow-list does not unlock identity skill", "allowed-user", entities.SkillNexis, false},
		{"unknown skill", admin, entities.SkillName("모름"), false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, s.manager.CanUse(tt.userID, "name", tt.skill))
		})
	}
}

func (s *ManagerTestSuite) TestCanUse_AllowListForUnconfiguredSkill() {
	delete(s.manager.settings.SkillUsers, entities.SkillVirella)
	s.True(s.manager.CanUse("allowed-user", "name", entities.SkillVirella))
	s.False(s.manager.CanUse("u1", "name", entities.SkillVirella))
}

func (s *ManagerTestSuite) TestUsableSkills_CatalogueOrder() {
	skills := s.manager.UsableSkills("1059908946741166120", "nexis user")
	s.Contains(skills, entities.SkillNexis)
	s.NotContains(skills, entities.SkillGrim)
	s.Equal(entities.SkillOnixel, skills[0])
}

func (s *ManagerTestSuite) TestFlush_OnlyDirtyChannels() {
	ctx := context.Background()
	s.Require().True(s.manager.AddSkill("ch1", entities.SkillOnixel, "u1", "One", "", "", 3))

	s.mockStore.EXPECT().Save(ctx, gomock.Any(), []string{}).DoAndReturn(
		func(_ context.Context, changed map[string]*entities.ChannelState, _ []string) error {
			s.Len(changed, 1)
			s.Contains(changed, "ch1")
			return nil
		})
	s.Require().NoError(s.manager.Flush(ctx))

	// nothing dirty, no write
	s.Require().NoError(s.manager.Flush(ctx))
}

func (s *ManagerTestSuite) TestFlush_ClearedChannelIsRemoved() {
	ctx := context.Background()
	s.Require().True(s.manager.AddSkill("ch1", entities.SkillOnixel, "u1", "One", "", "", 3))
	s.manager.ClearChannel("ch1")

	s.mockStore.EXPECT().Save(ctx, map[string]*entities.ChannelState{}, []string{"ch1"}).Return(nil)
	s.Require().NoError(s.manager.Flush(ctx))
}

func (s *ManagerTestSuite) TestFlush_FailureRequeues() {
	ctx := context.Background()
	s.Require().True(s.manager.AddSkill("ch1", entities.SkillOnixel, "u1", "One", "", "", 3))

	gomock.InOrder(
		s.mockStore.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		s.mockStore.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, changed map[string]*entities.ChannelState, _ []string) error {
				s.Contains(changed, "ch1")
				return nil
			}),
	)

	s.Error(s.manager.Flush(ctx))
	s.NoError(s.manager.Flush(ctx))
}

func (s *ManagerTestSuite) TestForceSave_WritesEverythingAndBacksUpConfig() {
	ctx := context.Background()
	s.Require().True(s.manager.AddSkill("ch1", entities.SkillOnixel, "u1", "One", "", "", 3))
	s.mockStore.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.manager.Flush(ctx))

	// clean channels are still written
	s.mockStore.EXPECT().Save(ctx, gomock.Any(), []string{}).DoAndReturn(
		func(_ context.Context, changed map[string]*entities.ChannelState, _ []string) error {
			s.Contains(changed, "ch1")
			return nil
		})
	s.mockBackup.EXPECT().SaveConfig(ctx, "main_config", gomock.Any()).Return(nil)
	s.mockBackup.EXPECT().SaveConfig(ctx, "user_skills", gomock.Any()).Return(errors.New("locked"))

	s.NoError(s.manager.ForceSave(ctx))
}

func (s *ManagerTestSuite) TestLoad() {
	ctx := context.Background()
	stored := map[string]*entities.ChannelState{
		"ch1": {ActiveSkills: map[entities.SkillName]*entities.SkillInstance{
			entities.SkillOnixel: {UserID: "u1", RoundsLeft: 2},
		}},
	}
	s.mockStore.EXPECT().Load(ctx).Return(stored, nil)

	s.Equal(1, s.manager.Load(ctx))
	state := s.manager.ChannelState("ch1")
	s.Equal(1, state.CurrentRound)
	s.NotNil(state.SpecialEffects)
	s.Equal(2, state.ActiveSkills[entities.SkillOnixel].RoundsLeft)
}

func (s *ManagerTestSuite) TestLoad_FailureStartsEmpty() {
	ctx := context.Background()
	s.mockStore.EXPECT().Load(ctx).Return(nil, errors.New("corrupt"))

	s.Equal(0, s.manager.Load(ctx))
	s.False(s.manager.HasState("ch1"))
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func TestNewManager_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { NewManager(&ManagerConfig{}) })
}

func TestNewManager_IntervalFromSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := DefaultSettings()
	settings.System.AutoSaveInterval = 5

	m := NewManager(&ManagerConfig{Store: mockskillstates.NewMockStore(ctrl), Settings: settings})
	require.Equal(t, "5s", m.interval.String())
}
