package discord

import (
	"context"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/battle"
	mockbattle "github.com/KirkDiggler/arena-bot-discord/internal/services/battle/mock"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
	mockskill "github.com/KirkDiggler/arena-bot-discord/internal/services/skill/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testChannel = "channel-1"
	testGuild   = "guild-1"
	adminID     = "1007172975222603798"
	diceRoll    = "`아카시 하지메`님이 1d100 주사위를 굴려 **73** 이(가) 나왔습니다!"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	battles *mockbattle.MockService
	skills  *mockskill.MockService
	session *fakeSession
	handler *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.battles = mockbattle.NewMockService(s.ctrl)
	s.skills = mockskill.NewMockService(s.ctrl)
	s.session = newFakeSession()
	s.session.members["111"] = &discordgo.Member{Nick: "아카시 하지메 / 80", User: &discordgo.User{ID: "111", Username: "hajime"}}
	s.session.members["222"] = &discordgo.Member{User: &discordgo.User{ID: "222", Username: "jinseok", GlobalName: "유진석"}}
	s.handler = NewHandler(&HandlerConfig{
		BattleService: s.battles,
		SkillService:  s.skills,
	})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) message(authorID, nick, content string) *discordgo.Message {
	return &discordgo.Message{
		ChannelID: testChannel,
		GuildID:   testGuild,
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Username: "user-" + authorID},
		Member:    &discordgo.Member{Nick: nick},
	}
}

func (s *HandlerTestSuite) send(authorID, nick, content string) {
	s.handler.handleMessage(s.ctx, s.session, s.message(authorID, nick, content))
}

func (s *HandlerTestSuite) TestStartBattleResolvesMentions() {
	s.skills.EXPECT().IsAdmin(adminID, "system | 시스템").Return(true)
	s.battles.EXPECT().StartBattle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *battle.StartBattleInput) (*entities.Battle, error) {
			s.Equal(testChannel, input.ChannelID)
			s.Equal(testGuild, input.GuildID)
			s.Equal(adminID, input.Admin.UserID)
			s.Require().Len(input.Players, 2)
			s.Equal("아카시 하지메 / 80", input.Players[0].DisplayName)
			s.Equal("유진석", input.Players[1].DisplayName)
			s.Equal([]int{30, 10, 12}, input.Health)
			s.Equal("드래곤", input.MonsterName)
			return &entities.Battle{}, nil
		})

	s.send(adminID, "system | 시스템", "!전투 <@111> <@!222> 30 10 12 드래곤")
	s.Empty(s.session.messages)
}

func (s *HandlerTestSuite) TestStartBattleFallsBackToMentionedUser() {
	msg := s.message(adminID, "시스템", "!전투 <@999>")
	msg.Mentions = []*discordgo.User{{ID: "999", Username: "whistle"}}

	s.skills.EXPECT().IsAdmin(adminID, "시스템").Return(true)
	s.battles.EXPECT().StartBattle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *battle.StartBattleInput) (*entities.Battle, error) {
			s.Require().Len(input.Players, 1)
			s.Equal("whistle", input.Players[0].DisplayName)
			return &entities.Battle{}, nil
		})

	s.handler.handleMessage(s.ctx, s.session, msg)
}

func (s *HandlerTestSuite) TestStartBattleIsAdminOnly() {
	s.skills.EXPECT().IsAdmin("111", "아카시 하지메").Return(false)

	s.send("111", "아카시 하지메", "!전투 <@222>")
	s.Equal("❌ !전투 명령어는 Admin만 사용할 수 있습니다.", s.session.lastMessage())
}

func (s *HandlerTestSuite) TestStartTeamBattle() {
	s.skills.EXPECT().IsAdmin(adminID, "시스템").Return(true)
	s.battles.EXPECT().StartTeamBattle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *battle.StartTeamBattleInput) (*entities.Battle, error) {
			s.Equal(adminID, input.RequesterID)
			s.Require().Len(input.TeamA, 1)
			s.Require().Len(input.TeamB, 1)
			s.Equal("111", input.TeamA[0].UserID)
			s.Equal("222", input.TeamB[0].UserID)
			s.Equal([]int{20, 15}, input.Health)
			return &entities.Battle{}, nil
		})

	s.send(adminID, "시스템", "!전투 <@111> vs <@222>, 20, 15")
}

func (s *HandlerTestSuite) TestServiceErrorsBecomeReplies() {
	s.skills.EXPECT().IsAdmin(adminID, "시스템").Return(true)
	s.battles.EXPECT().StartBattle(gomock.Any(), gomock.Any()).
		Return(nil, apperr.AlreadyExists("이미 진행 중인 전투가 있습니다!"))

	s.send(adminID, "시스템", "!전투 <@111>")
	s.Equal("❌ 이미 진행 중인 전투가 있습니다!", s.session.lastMessage())
}

func (s *HandlerTestSuite) TestInternalErrorsStayGeneric() {
	s.battles.EXPECT().Surrender(gomock.Any(), testChannel, "111").Return(apperr.Internal("redis down"))

	s.send("111", "아카시 하지메", "!항복")
	s.Equal(genericFailure, s.session.lastMessage())
}

func (s *HandlerTestSuite) TestDiceAnnouncementsFromBotsOnly() {
	s.battles.EXPECT().HandleDiceMessage(gomock.Any(), testChannel, diceRoll).Return(nil)

	bot := s.message("dice-bot", "", diceRoll)
	bot.Author.Bot = true
	s.handler.handleMessage(s.ctx, s.session, bot)

	// a player typing the same text is not a roll
	s.send("111", "아카시 하지메", diceRoll)

	chatter := s.message("dice-bot", "", "안녕하세요")
	chatter.Author.Bot = true
	s.handler.handleMessage(s.ctx, s.session, chatter)
}

func (s *HandlerTestSuite) TestResultValuesGoToDuels() {
	gomock.InOrder(
		s.battles.EXPECT().RollResult(gomock.Any(), testChannel, "111", 88).Return(nil),
		s.battles.EXPECT().RollResult(gomock.Any(), testChannel, "222", 12).Return(apperr.Internal("redis down")),
	)

	s.send("111", "아카시 하지메", "🎲 결과: 88")
	s.send("222", "유진석", "주사위: 12")
	s.send("111", "아카시 하지메", "결과가 궁금하네요")

	// failures are logged, never posted
	s.Empty(s.session.messages)
}

func (s *HandlerTestSuite) TestTurnCommands() {
	gomock.InOrder(
		s.battles.EXPECT().SkipTurn(gomock.Any(), testChannel, "111").Return(nil),
		s.battles.EXPECT().SetTarget(gomock.Any(), testChannel, "111", "222").Return(nil),
		s.battles.EXPECT().SkipTurn(gomock.Any(), testChannel, "222").
			Return(apperr.PermissionDenied("지금은 주사위를 기다리고 있지 않습니다")),
	)

	s.send("111", "아카시 하지메", "!턴넘김")
	s.send("111", "아카시 하지메", "!타격 <@222>")
	s.Empty(s.session.messages)

	s.send("222", "유진석", "!턴넘김")
	s.Equal("❌ 지금은 주사위를 기다리고 있지 않습니다", s.session.lastMessage())
}

func (s *HandlerTestSuite) TestTargetNeedsMention() {
	s.send("111", "아카시 하지메", "!타격 유진석")
	s.Equal("❌ "+targetUsage, s.session.lastMessage())
}

func (s *HandlerTestSuite) TestFocusedAttack() {
	s.battles.EXPECT().FocusedAttack(gomock.Any(), &battle.FocusedAttackInput{
		ChannelID:   testChannel,
		RequesterID: adminID,
		TargetID:    "111",
		Count:       3,
		Mode:        entities.FocusModeSingle,
		FollowUp:    true,
	}).Return(nil)

	s.send(adminID, "시스템", "!집중공격 <@111> 3 단일 추가공격")
}

func (s *HandlerTestSuite) TestStatusPostsBoard() {
	s.battles.EXPECT().Status(gomock.Any(), testChannel).Return(&entities.Board{
		Title:  "⚔️ 시스템 vs 유진석 - 라운드 2",
		Fields: []*entities.BoardField{{Name: "유진석", Value: "💚 10/10", Inline: true}},
	}, nil)

	s.send("222", "유진석", "!전투상태")
	s.Require().Len(s.session.embeds, 1)
	embed := s.session.embeds[0].Embeds[0]
	s.Equal("⚔️ 시스템 vs 유진석 - 라운드 2", embed.Title)
	s.Equal("💚 10/10", embed.Fields[0].Value)
}

func (s *HandlerTestSuite) TestStatisticsAndHistory() {
	s.battles.EXPECT().Statistics(gomock.Any()).Return(&entities.Statistics{
		TotalBattles:  4,
		AverageRounds: 3.5,
		UserWinRate:   75,
		MostUsedSkill: entities.SkillKaron,
		MostUsedCount: 2,
	}, nil)
	s.battles.EXPECT().History(gomock.Any(), historyLimit).Return([]*entities.BattleRecord{
		{MonsterName: "시스템", Winner: entities.WinnerAdmin, Rounds: 5},
	}, nil)

	s.send("111", "아카시 하지메", "!전투통계")
	s.Require().Len(s.session.embeds, 1)
	fields := s.session.embeds[0].Embeds[0].Fields
	s.Equal("4회", fields[0].Value)
	s.Equal("🤝 카론 (2회)", fields[len(fields)-1].Value)

	s.send("111", "아카시 하지메", "!전투기록")
	s.Contains(s.session.lastMessage(), "시스템 - 시스템 승리 (5라운드)")
}

func (s *HandlerTestSuite) TestForceEnd() {
	s.battles.EXPECT().ForceEnd(gomock.Any(), testChannel, adminID, "시스템").Return(nil)
	s.send(adminID, "시스템", "!전투종료")
}

func (s *HandlerTestSuite) TestUnknownCommandsIgnored() {
	s.send("111", "아카시 하지메", "!주사위")
	s.send("111", "아카시 하지메", "그냥 채팅")
	s.Empty(s.session.messages)
}

func (s *HandlerTestSuite) component(userID, customID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: testChannel,
		GuildID:   testGuild,
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:      discordgo.MessageComponentInteractionData{CustomID: customID},
	}
}

func (s *HandlerTestSuite) TestSyncButtonAccepts() {
	s.battles.EXPECT().Accept(gomock.Any(), testChannel, "111", true).Return(nil)

	s.handler.handleComponent(s.ctx, s.session, s.component("111", syncButtonID(true)))
	s.Equal(discordgo.InteractionResponseDeferredMessageUpdate, s.session.lastResponse().Type)
}

func (s *HandlerTestSuite) TestSyncButtonRejection() {
	s.battles.EXPECT().Accept(gomock.Any(), testChannel, "outsider", false).
		Return(apperr.PermissionDenied("전투 참가자만 수락할 수 있습니다"))

	s.handler.handleComponent(s.ctx, s.session, s.component("outsider", syncButtonID(false)))
	resp := s.session.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("❌ 전투 참가자만 수락할 수 있습니다", resp.Data.Content)
}

func (s *HandlerTestSuite) TestForeignButtonsIgnored() {
	s.handler.handleComponent(s.ctx, s.session, s.component("111", "blackjack:hit"))
	s.Nil(s.session.lastResponse())
}

func (s *HandlerTestSuite) command(userID, nick, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: testChannel,
		GuildID:   testGuild,
		Member:    &discordgo.Member{Nick: nick, User: &discordgo.User{ID: userID}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
			Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
				Members: map[string]*discordgo.Member{"222": {Nick: "유진석 / 70"}},
				Users:   map[string]*discordgo.User{"222": {ID: "222", Username: "jinseok"}},
			},
		},
	}
}

func (s *HandlerTestSuite) TestSkillCommand() {
	s.battles.EXPECT().ActivateSkill(gomock.Any(), &skill.ActivateInput{
		ChannelID:  testChannel,
		Skill:      entities.SkillPhoenix,
		CasterID:   "111",
		CasterName: "아카시 하지메",
		TargetID:   "222",
		TargetName: "유진석 / 70",
		Rounds:     3,
	}).Return(&skill.Activation{
		Skill:      entities.SkillPhoenix,
		CasterName: "아카시 하지메",
		TargetName: "유진석",
		Rounds:     3,
		Messages:   []string{"🔥 유진석님이 그림으로부터 보호됩니다."},
	}, nil)

	s.handler.handleCommand(s.ctx, s.session, s.command("111", "아카시 하지메", commandSkill,
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionHero, Type: discordgo.ApplicationCommandOptionString, Value: "피닉스"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionRounds, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionTarget, Type: discordgo.ApplicationCommandOptionUser, Value: "222"},
	))

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Zero(resp.Data.Flags)
	s.Contains(resp.Data.Content, "**피닉스** 스킬을 3라운드 동안")
	s.Contains(resp.Data.Content, "(대상: 유진석)")
	s.Contains(resp.Data.Content, "그림으로부터 보호")
}

func (s *HandlerTestSuite) TestSkillCommandRejected() {
	s.battles.EXPECT().ActivateSkill(gomock.Any(), gomock.Any()).
		Return(nil, apperr.PermissionDenied("이 스킬을 사용할 권한이 없습니다"))

	s.handler.handleCommand(s.ctx, s.session, s.command("111", "아카시 하지메", commandSkill,
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionHero, Type: discordgo.ApplicationCommandOptionString, Value: "그림"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionRounds, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(1)},
	))

	resp := s.session.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("❌ 이 스킬을 사용할 권한이 없습니다", resp.Data.Content)
}

func (s *HandlerTestSuite) TestCancelSkillCommand() {
	s.battles.EXPECT().CancelSkill(gomock.Any(), &skill.CancelInput{
		ChannelID:     testChannel,
		Skill:         entities.SkillVirella,
		RequesterID:   adminID,
		RequesterName: "시스템",
	}).Return([]string{"🌿 속박이 풀렸습니다."}, nil)

	s.handler.handleCommand(s.ctx, s.session, s.command(adminID, "시스템", commandCancelSkill,
		&discordgo.ApplicationCommandInteractionDataOption{Name: optionHero, Type: discordgo.ApplicationCommandOptionString, Value: "비렐라"},
	))
	s.Equal("🚫 **비렐라** 스킬이 취소되었습니다.\n🌿 속박이 풀렸습니다.", s.session.lastResponse().Data.Content)
}

func (s *HandlerTestSuite) TestListSkills() {
	s.skills.EXPECT().UsableSkills("111", "아카시 하지메").
		Return([]entities.SkillName{entities.SkillOnixel, entities.SkillKaron})

	s.handler.handleCommand(s.ctx, s.session, s.command("111", "아카시 하지메", commandListSkills))
	resp := s.session.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(resp.Data.Content, "🔥 **오닉셀**")
	s.Contains(resp.Data.Content, "🤝 **카론**")
}

func (s *HandlerTestSuite) TestNicknameHealthIncreaseIsRecovery() {
	s.battles.EXPECT().UpdateRecovery(gomock.Any(), "111", 50, 80).Return(nil)

	before := &discordgo.Member{Nick: "아카시 하지메 / 50", User: &discordgo.User{ID: "111"}}
	after := &discordgo.Member{Nick: "아카시 하지메 / 80", User: &discordgo.User{ID: "111"}}
	s.handler.handleMemberUpdate(s.ctx, before, after)

	// damage mirrored by the bot lowers health and is not a recovery
	s.handler.handleMemberUpdate(s.ctx, after, before)
	// no cached previous state
	s.handler.handleMemberUpdate(s.ctx, nil, after)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
