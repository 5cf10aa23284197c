package battle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

// maxTurnSteps stops a turn search that never reaches a prompt
const maxTurnSteps = 256

// nextTurn walks the turn order until someone has to roll or the battle is decided
func (s *service) nextTurn(ctx context.Context, b *entities.Battle) {
	for step := 0; step < maxTurnSteps; step++ {
		if s.decided(b) {
			s.conclude(ctx, b)
			return
		}
		if b.IsTeamBattle {
			if s.stepTeam(ctx, b) {
				return
			}
			continue
		}
		if b.TurnPhase == entities.TurnPhaseAdminAttack {
			s.startAdminAttack(ctx, b)
			return
		}
		if s.stepUser(ctx, b) {
			return
		}
	}
	log.Printf("Battle %s found no one able to act in %d steps", b.ID, maxTurnSteps)
}

// decided reports whether the win condition is met
func (s *service) decided(b *entities.Battle) bool {
	if b.IsTeamBattle {
		return b.LivingTeamMembers(entities.TeamA) == 0 || b.LivingTeamMembers(entities.TeamB) == 0
	}
	return b.Admin == nil || b.Admin.IsEliminated || len(b.LivingPlayers()) == 0
}

func (s *service) conclude(ctx context.Context, b *entities.Battle) {
	if b.IsTeamBattle {
		s.endTeamBattle(ctx, b)
		return
	}
	s.endBattle(ctx, b)
}

// settle ends a decided battle and writes off rolls owed by eliminated or
// exiled players. It reports whether the battle is over.
func (s *service) settle(ctx context.Context, b *entities.Battle) bool {
	switch b.Phase {
	case entities.BattlePhaseFinished:
		return true
	case entities.BattlePhaseWaiting:
		return false
	}
	if s.decided(b) {
		s.conclude(ctx, b)
		return true
	}
	if b.Pending == nil {
		return false
	}

	// fallen players roll zero and exiled players leave the exchange
	for _, id := range append([]string(nil), b.Pending.WaitingFor...) {
		p := b.Find(id)
		switch {
		case p == nil:
		case p.IsEliminated:
			b.Pending.Record(id, 0)
		case s.excluded(ctx, b.ChannelID, id):
			b.Pending.Drop(id)
		}
	}
	if b.Pending.Done() {
		s.resolve(ctx, b)
	}
	return b.Phase == entities.BattlePhaseFinished
}

func (s *service) excluded(ctx context.Context, channelID, userID string) bool {
	state := s.skills.ChannelState(ctx, channelID)
	return state != nil && state.SpecialEffects.IsExcluded(userID)
}

// blocked reports and announces a player who cannot act this turn
func (s *service) blocked(ctx context.Context, b *entities.Battle, p *entities.Player) bool {
	blocked, reason := s.skills.ActionBlocked(ctx, b.ChannelID, p.UserID)
	if !blocked {
		return false
	}
	text := fmt.Sprintf("⛓️ %s님은 이번 턴에 행동할 수 없습니다.", p.Name)
	if reason != "" {
		text += " " + reason
	}
	s.say(ctx, b.ChannelID, text)
	return true
}

// stepUser prompts the current player's attack or moves past them.
// It returns true once a roll is awaited.
func (s *service) stepUser(ctx context.Context, b *entities.Battle) bool {
	p := b.CurrentPlayer()
	if p == nil {
		b.TurnPhase = entities.TurnPhaseAdminAttack
		return false
	}
	if p.IsEliminated || s.blocked(ctx, b, p) {
		b.TurnIndex++
		b.ActionsLeft = 0
		return false
	}
	if b.ActionsLeft <= 0 {
		b.ActionsLeft = s.skills.ActionCount(ctx, b.ChannelID, p.UserID)
	}

	s.refreshStatus(ctx, b)
	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **라운드 %d - %s의 공격**\n%s\n\n🗡️ %s님, 공격 다이스를 굴려주세요!\n🛡️ %s님, 회피 다이스를 굴려주세요!",
		b.Round, p.Name, healthInfo(b), p.Name, b.MonsterName))

	pending := entities.NewPendingDice(entities.PendingPhaseUserAttack, p.UserID, b.Admin.UserID)
	pending.AttackerID = p.UserID
	pending.TargetID = b.Admin.UserID
	b.Pending = pending
	return true
}

// startAdminAttack has the admin attack every living player at once.
// Bound players defend with zero and excluded players are left out.
func (s *service) startAdminAttack(ctx context.Context, b *entities.Battle) {
	b.TurnPhase = entities.TurnPhaseAdminAttack
	living := b.LivingPlayers()
	if len(living) == 0 {
		s.endBattle(ctx, b)
		return
	}
	if b.AdminAttacksLeft <= 0 {
		b.AdminAttacksLeft = s.skills.ActionCount(ctx, b.ChannelID, b.Admin.UserID)
	}

	ids := []string{b.Admin.UserID}
	var bound []*entities.Player
	for _, p := range living {
		if s.excluded(ctx, b.ChannelID, p.UserID) {
			continue
		}
		if blocked, _ := s.skills.ActionBlocked(ctx, b.ChannelID, p.UserID); blocked {
			bound = append(bound, p)
			continue
		}
		ids = append(ids, p.UserID)
	}

	pending := entities.NewPendingDice(entities.PendingPhaseAdminAttack, ids...)
	pending.AttackerID = b.Admin.UserID
	for _, p := range bound {
		pending.Rolls[p.UserID] = 0
	}
	b.Pending = pending

	s.refreshStatus(ctx, b)
	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **라운드 %d - %s의 반격**\n%s\n\n🗡️ %s님, 공격 다이스를 굴려주세요!\n🛡️ 모든 유저는 회피 다이스를 굴려주세요!",
		b.Round, b.MonsterName, healthInfo(b), b.MonsterName))
	if len(bound) > 0 {
		names := make([]string, len(bound))
		for i, p := range bound {
			names[i] = p.Name
		}
		s.say(ctx, b.ChannelID, fmt.Sprintf("⛓️ 행동 불가: %s (회피 0)", strings.Join(names, ", ")))
	}
}

// endRound closes the round and lets the skills tick
func (s *service) endRound(ctx context.Context, b *entities.Battle) {
	b.Round++
	b.TurnIndex = 0
	b.ActionsLeft = 0
	b.AdminAttacksLeft = 0
	b.Focused = nil
	if b.IsTeamBattle {
		b.TurnPhase = entities.TurnPhaseTeamAttack
	} else {
		b.TurnPhase = entities.TurnPhaseUserAttack
	}

	s.sayAll(ctx, b.ChannelID, s.skills.AdvanceRound(ctx, b.ChannelID, b.Round))
}

// stepTeam prompts the current team player or moves past them.
// It returns true when a roll or a target is awaited.
func (s *service) stepTeam(ctx context.Context, b *entities.Battle) bool {
	p := b.CurrentPlayer()
	if p == nil {
		s.endRound(ctx, b)
		return false
	}
	if p.IsEliminated || s.excluded(ctx, b.ChannelID, p.UserID) || s.blocked(ctx, b, p) {
		b.TurnIndex++
		b.ActionsLeft = 0
		return false
	}

	target := b.Find(p.CurrentTarget)
	if target == nil || target.IsEliminated || s.excluded(ctx, b.ChannelID, target.UserID) {
		p.CurrentTarget = ""
		s.awaitTarget(ctx, b, p)
		return true
	}
	if b.ActionsLeft <= 0 {
		b.ActionsLeft = s.skills.ActionCount(ctx, b.ChannelID, p.UserID)
	}

	s.refreshStatus(ctx, b)
	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **라운드 %d - 전투**\n%s\n\n🗡️ %s님이 %s을(를) 공격합니다!\n두 분 모두 주사위를 굴려주세요!",
		b.Round, healthInfo(b), p.Name, target.Name))

	pending := entities.NewPendingDice(entities.PendingPhaseTeamAttack, p.UserID, target.UserID)
	pending.AttackerID = p.UserID
	pending.TargetID = target.UserID
	b.Pending = pending
	return true
}

// awaitTarget asks the player for a target and skips them when the timer runs out
func (s *service) awaitTarget(ctx context.Context, b *entities.Battle, p *entities.Player) {
	waitID := s.uuid.New()
	b.TargetWait = waitID

	s.refreshStatus(ctx, b)
	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **라운드 %d - %s의 턴**\n%s\n\n🎯 %s님, `!타격 @대상`으로 타겟을 지정해주세요!",
		b.Round, p.Name, healthInfo(b), p.Name))

	channelID := b.ChannelID
	s.after(s.targetTimeout, func() {
		s.expireTarget(context.Background(), channelID, waitID)
	})
}

// expireTarget skips the player whose target wait is still waitID.
// A wait that was already answered makes this a no-op.
func (s *service) expireTarget(ctx context.Context, channelID, waitID string) {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil || b.TargetWait != waitID {
		return
	}
	b.TargetWait = ""

	if p := b.CurrentPlayer(); p != nil {
		s.say(ctx, channelID, fmt.Sprintf("⏭️ %s님이 타겟을 지정하지 않아 턴을 넘깁니다.", p.Name))
	}
	b.TurnIndex++
	b.ActionsLeft = 0
	s.nextTurn(ctx, b)
}

// SetTarget designates the opponent a team battle player attacks
func (s *service) SetTarget(ctx context.Context, channelID, userID, targetID string) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}
	if !b.IsTeamBattle {
		return apperr.InvalidArgument("팀 전투에서만 타겟을 지정할 수 있습니다")
	}

	attacker := b.Find(userID)
	if attacker == nil || attacker.IsEliminated {
		return apperr.PermissionDenied("전투에 참여 중이지 않거나 탈락한 상태입니다.")
	}
	target := b.Find(targetID)
	if target == nil {
		return apperr.InvalidArgument("대상이 전투에 참여 중이 아닙니다.")
	}
	if target.IsEliminated {
		return apperr.InvalidArgument("탈락한 대상은 공격할 수 없습니다!")
	}
	if attacker.Team == target.Team {
		return apperr.InvalidArgument("같은 팀은 공격할 수 없습니다!")
	}

	attacker.CurrentTarget = target.UserID
	s.say(ctx, channelID, fmt.Sprintf("⚔️ %s님이 %s을(를) 타겟으로 지정했습니다!", attacker.Name, target.Name))

	if b.Phase != entities.BattlePhaseCombat || b.TargetWait == "" {
		return nil
	}
	if current := b.CurrentPlayer(); current == nil || current.UserID != attacker.UserID {
		return nil
	}
	b.TargetWait = ""
	b.Touch(s.clock.Now())
	s.nextTurn(ctx, b)
	return nil
}
