package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

func newPlayer(c *Combatant, name string, health int) *entities.Player {
	if health <= 0 {
		health = DefaultHealth
	}
	return &entities.Player{
		UserID:      c.UserID,
		Name:        name,
		DisplayName: c.DisplayName,
		MaxHealth:   health,
		RealHealth:  nickname.RealHealth(c.DisplayName),
	}
}

func healthAt(values []int, i int) int {
	if i < len(values) && values[i] > 0 {
		return values[i]
	}
	return DefaultHealth
}

// ensureFree rejects a second battle in the same channel
func (s *service) ensureFree(ctx context.Context, channelID string) error {
	existing, err := s.battles.Get(ctx, channelID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.Phase != entities.BattlePhaseFinished {
		return apperr.AlreadyExists("이미 진행 중인 전투가 있습니다!")
	}
	return nil
}

// StartBattle opens a challenge between the admin and one or more players
func (s *service) StartBattle(ctx context.Context, input *StartBattleInput) (*entities.Battle, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.ChannelID == "" {
		return nil, apperr.InvalidArgument("channel id is required")
	}
	if input.Admin == nil || input.Admin.UserID == "" {
		return nil, apperr.InvalidArgument("admin is required")
	}

	seen := map[string]bool{input.Admin.UserID: true}
	var opponents []*Combatant
	for _, c := range input.Players {
		if c == nil || c.UserID == "" || seen[c.UserID] {
			continue
		}
		seen[c.UserID] = true
		opponents = append(opponents, c)
	}
	if len(opponents) == 0 {
		return nil, apperr.InvalidArgument("최소 한 명의 상대를 지정해야 합니다!")
	}

	unlock := s.locks.lock(input.ChannelID)
	defer unlock()

	if err := s.ensureFree(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	monster := input.MonsterName
	if monster == "" {
		monster = nickname.SystemName
	}

	adminHealth := healthAt(input.Health, 0)
	admin := newPlayer(input.Admin, monster, adminHealth)

	players := make([]*entities.Player, 0, len(opponents))
	for i, c := range opponents {
		players = append(players, newPlayer(c, nickname.ExtractRealName(c.DisplayName), healthAt(input.Health, i+1)))
	}

	now := s.clock.Now()
	b := &entities.Battle{
		ID:             s.uuid.New(),
		ChannelID:      input.ChannelID,
		GuildID:        input.GuildID,
		CreatedBy:      input.Admin.UserID,
		Phase:          entities.BattlePhaseWaiting,
		TurnPhase:      entities.TurnPhaseUserAttack,
		Round:          1,
		Players:        players,
		Admin:          admin,
		MonsterName:    monster,
		AdminHealthSet: adminHealth != DefaultHealth,
		CreatedAt:      now,
		LastActivity:   now,
	}
	if err := s.battles.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Printf("Battle %s opened in %s: %s", b.ID, b.ChannelID, battleName(b))
	s.postBoard(ctx, b, challengeBoard(b))
	return b, nil
}

// StartTeamBattle opens a challenge between two teams of players
func (s *service) StartTeamBattle(ctx context.Context, input *StartTeamBattleInput) (*entities.Battle, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.ChannelID == "" {
		return nil, apperr.InvalidArgument("channel id is required")
	}
	if len(input.TeamA) == 0 {
		return nil, apperr.InvalidArgument("팀 A에 최소 한 명이 있어야 합니다!")
	}
	if len(input.TeamB) == 0 {
		return nil, apperr.InvalidArgument("팀 B에 최소 한 명이 있어야 합니다!")
	}

	b := &entities.Battle{
		ChannelID:    input.ChannelID,
		GuildID:      input.GuildID,
		CreatedBy:    input.RequesterID,
		Phase:        entities.BattlePhaseWaiting,
		TurnPhase:    entities.TurnPhaseTeamAttack,
		Round:        1,
		IsTeamBattle: true,
	}

	seen := make(map[string]bool)
	index := 0
	join := func(members []*Combatant, team entities.Team) error {
		for _, c := range members {
			if c == nil || c.UserID == "" {
				continue
			}
			if seen[c.UserID] {
				return apperr.InvalidArgument("한 사람이 두 번 참가할 수 없습니다!")
			}
			seen[c.UserID] = true

			p := newPlayer(c, nickname.ExtractRealName(c.DisplayName), healthAt(input.Health, index))
			p.Team = team
			index++

			b.Players = append(b.Players, p)
			if team == entities.TeamA {
				b.TeamA = append(b.TeamA, p.UserID)
			} else {
				b.TeamB = append(b.TeamB, p.UserID)
			}
		}
		return nil
	}
	if err := join(input.TeamA, entities.TeamA); err != nil {
		return nil, err
	}
	if err := join(input.TeamB, entities.TeamB); err != nil {
		return nil, err
	}
	if len(b.TeamA) == 0 || len(b.TeamB) == 0 {
		return nil, apperr.InvalidArgument("양 팀에 최소 한 명씩 있어야 합니다!")
	}

	unlock := s.locks.lock(input.ChannelID)
	defer unlock()

	if err := s.ensureFree(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	b.ID = s.uuid.New()
	b.CreatedAt = now
	b.LastActivity = now
	if err := s.battles.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Printf("Team battle %s opened in %s", b.ID, b.ChannelID)
	s.postBoard(ctx, b, challengeBoard(b))
	return b, nil
}

// Accept applies the health-sync choice and starts the initiative roll
func (s *service) Accept(ctx context.Context, channelID, userID string, sync bool) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}
	if b.Phase != entities.BattlePhaseWaiting {
		return apperr.InvalidArgument("이미 시작된 전투입니다")
	}
	if b.Find(userID) == nil && b.CreatedBy != userID {
		return apperr.PermissionDenied("전투 참가자만 수락할 수 있습니다")
	}

	b.HealthSync = sync
	if sync {
		for _, p := range b.Players {
			p.MaxHealth = nickname.BattleHealth(p.RealHealth)
		}
		// an explicitly given admin health wins over the nickname
		if b.Admin != nil && !b.AdminHealthSet {
			b.Admin.MaxHealth = nickname.BattleHealth(b.Admin.RealHealth)
		}
	}

	if err := b.AdvancePhase(entities.BattlePhaseInitRoll); err != nil {
		return apperr.Wrap(err, "failed to start initiative")
	}
	s.skills.StartBattle(ctx, channelID)

	ids := make([]string, 0, len(b.Players)+1)
	for _, p := range b.Participants() {
		ids = append(ids, p.UserID)
	}
	b.Pending = entities.NewPendingDice(entities.PendingPhaseInit, ids...)
	b.Touch(s.clock.Now())

	log.Printf("Battle %s accepted by %s (sync=%t)", b.ID, userID, sync)
	s.postBoard(ctx, b, initiativeBoard(b))
	return nil
}
