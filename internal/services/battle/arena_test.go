package battle_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battles"
	mockbattles "github.com/KirkDiggler/arena-bot-discord/internal/repositories/battles/mock"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/battle"
	mockbattle "github.com/KirkDiggler/arena-bot-discord/internal/services/battle/mock"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ArenaTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	notifier *mockbattle.MockNotifier
	battles  battles.Repository
	arena    skill.Arena
	battle   *entities.Battle
}

func (s *ArenaTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.notifier = mockbattle.NewMockNotifier(s.ctrl)
	s.battles = battles.NewInMemoryRepository()
	s.arena = battle.NewArena(&battle.ArenaConfig{
		Battles:  s.battles,
		Notifier: s.notifier,
	})

	s.battle = &entities.Battle{
		ID:          "battle-1",
		ChannelID:   testChannel,
		Phase:       entities.BattlePhaseCombat,
		MonsterName: "시스템",
		Players: []*entities.Player{
			{UserID: "u1", Name: "아카시 하지메", MaxHealth: 10, RealHealth: 100},
			{UserID: "u2", Name: "유진석", MaxHealth: 10, RealHealth: 100},
		},
		Admin: &entities.Player{UserID: adminID, Name: "시스템", MaxHealth: 10, RealHealth: 100},
	}
	s.Require().NoError(s.battles.Create(s.ctx, s.battle))
}

func (s *ArenaTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ArenaTestSuite) TestIsBattleActive() {
	s.True(s.arena.IsBattleActive(s.ctx, testChannel))
	s.False(s.arena.IsBattleActive(s.ctx, "elsewhere"))

	s.battle.Phase = entities.BattlePhaseWaiting
	s.False(s.arena.IsBattleActive(s.ctx, testChannel))
}

func (s *ArenaTestSuite) TestParticipantsListAdminLast() {
	parts, err := s.arena.Participants(s.ctx, testChannel)
	s.Require().NoError(err)
	s.Require().Len(parts, 3)
	s.Equal("u1", parts[0].UserID)
	s.Equal(0, parts[0].Order)
	s.Equal("u2", parts[1].UserID)
	s.Equal(adminID, parts[2].UserID)
	s.True(parts[2].IsAdmin)
}

func (s *ArenaTestSuite) TestUserInfo() {
	info, err := s.arena.UserInfo(s.ctx, testChannel, "u2")
	s.Require().NoError(err)
	s.Equal("유진석", info.Name)
	s.Equal(1, info.Order)
	s.False(info.IsAdmin)

	_, err = s.arena.UserInfo(s.ctx, testChannel, "nobody")
	s.True(apperr.IsNotFound(err))
}

func (s *ArenaTestSuite) TestDamageConvertsPointsToHits() {
	hits, err := s.arena.DamageUser(s.ctx, testChannel, "u1", 30)
	s.Require().NoError(err)
	s.Equal(3, hits)
	s.Equal(3, s.battle.Players[0].HitsReceived)

	hits, err = s.arena.DamageUser(s.ctx, testChannel, "u1", 5)
	s.Require().NoError(err)
	s.Equal(1, hits, "partial tens round up")

	healed, err := s.arena.HealUser(s.ctx, testChannel, "u1", 20)
	s.Require().NoError(err)
	s.Equal(2, healed)
	s.Equal(2, s.battle.Players[0].HitsReceived)
}

func (s *ArenaTestSuite) TestKillAndRevive() {
	err := s.arena.ReviveUser(s.ctx, testChannel, "u1", 50)
	s.True(apperr.IsInvalidArgument(err), "the living cannot be revived")

	s.Require().NoError(s.arena.KillUser(s.ctx, testChannel, "u1"))
	s.True(s.battle.Players[0].IsEliminated)

	s.Require().NoError(s.arena.ReviveUser(s.ctx, testChannel, "u1", 50))
	p := s.battle.Players[0]
	s.False(p.IsEliminated)
	s.Equal(5, p.RemainingHealth())
}

func (s *ArenaTestSuite) TestFinishedBattleIsGone() {
	s.battle.Phase = entities.BattlePhaseFinished

	_, err := s.arena.Participants(s.ctx, testChannel)
	s.True(apperr.IsNotFound(err))
	_, err = s.arena.DamageUser(s.ctx, testChannel, "u1", 10)
	s.True(apperr.IsNotFound(err))
}

func (s *ArenaTestSuite) TestNicknamesWaitForFlush() {
	nicknames := mockbattle.NewMockNicknameSetter(s.ctrl)
	s.battle.GuildID = "guild-1"
	s.battle.Players[0].DisplayName = "아카시 하지메 / 100"
	arena := battle.NewArena(&battle.ArenaConfig{
		Battles:   s.battles,
		Notifier:  s.notifier,
		Nicknames: nicknames,
	})

	_, err := arena.DamageUser(s.ctx, testChannel, "u1", 20)
	s.Require().NoError(err)
	_, err = arena.DamageUser(s.ctx, testChannel, "u1", 10)
	s.Require().NoError(err)
	s.Equal("아카시 하지메 / 100", s.battle.Players[0].DisplayName, "nothing is written before the flush")

	nicknames.EXPECT().SetNickname(gomock.Any(), "guild-1", "u1", "아카시 하지메 / 70").Return(nil)
	arena.Flush(s.ctx, "elsewhere")
	arena.Flush(s.ctx, testChannel)
	s.Equal("아카시 하지메 / 70", s.battle.Players[0].DisplayName)

	arena.Flush(s.ctx, testChannel)
}

func (s *ArenaTestSuite) TestSendBattleMessage() {
	s.notifier.EXPECT().Send(gomock.Any(), testChannel, "☄️ 운석 낙하!").Return(nil)
	s.NoError(s.arena.SendBattleMessage(s.ctx, testChannel, "☄️ 운석 낙하!"))

	silent := battle.NewArena(&battle.ArenaConfig{Battles: s.battles})
	err := silent.SendBattleMessage(s.ctx, testChannel, "hello")
	s.True(apperr.IsUnavailable(err))
}

func TestArenaTestSuite(t *testing.T) {
	suite.Run(t, new(ArenaTestSuite))
}

func TestArenaRepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	repo := mockbattles.NewMockRepository(ctrl)
	arena := battle.NewArena(&battle.ArenaConfig{Battles: repo})

	repo.EXPECT().Get(ctx, testChannel).Return(nil, apperr.Unavailable("store offline")).Times(3)

	assert.False(t, arena.IsBattleActive(ctx, testChannel))

	_, err := arena.Participants(ctx, testChannel)
	assert.True(t, apperr.IsUnavailable(err))

	_, err = arena.DamageUser(ctx, testChannel, "u1", 10)
	require.Error(t, err)
	assert.True(t, apperr.IsUnavailable(err))
}

func TestArenaSkipsFinishedBattle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	repo := mockbattles.NewMockRepository(ctrl)
	arena := battle.NewArena(&battle.ArenaConfig{Battles: repo})

	repo.EXPECT().Get(ctx, testChannel).Return(&entities.Battle{
		ChannelID: testChannel,
		Phase:     entities.BattlePhaseFinished,
	}, nil)

	_, err := arena.UserInfo(ctx, testChannel, "u1")
	assert.True(t, apperr.IsNotFound(err))
}
