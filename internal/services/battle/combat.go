package battle

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

// applyHits lands hits on victim after the damage-sharing skills had their
// say and returns the hits the victim took. Shared damage is floored to whole
// hits so an even split never creates extra hits.
func (s *service) applyHits(ctx context.Context, b *entities.Battle, victim *entities.Player, hits int) int {
	if hits <= 0 || victim == nil || victim.IsEliminated {
		return 0
	}

	keep, shares, messages := s.skills.ShareDamage(ctx, b.ChannelID, victim.UserID, hits*10)
	applied := victim.TakeHits(nickname.HitsFromDamage(keep))
	if applied > 0 {
		s.mirror.mirror(ctx, b.GuildID, victim)
	}

	for _, share := range shares {
		other := b.Find(share.UserID)
		if other == nil || other == victim || other.IsEliminated {
			continue
		}
		if other.TakeHits(share.Amount/10) > 0 {
			s.mirror.mirror(ctx, b.GuildID, other)
		}
	}
	s.sayAll(ctx, b.ChannelID, messages)
	return applied
}

func fallenNote(p *entities.Player) string {
	if !p.IsEliminated {
		return ""
	}
	return fmt.Sprintf("\n💀 **%s 탈락!**", p.Name)
}

func (s *service) resolveUserAttack(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	attacker := b.Find(pending.AttackerID)
	if attacker == nil || b.Admin == nil {
		b.TurnIndex++
		s.nextTurn(ctx, b)
		return
	}

	attack := pending.Rolls[attacker.UserID]
	defend := pending.Rolls[b.Admin.UserID]
	if attack > defend {
		attacker.HitsDealt += s.applyHits(ctx, b, b.Admin, 1)
		s.say(ctx, b.ChannelID, fmt.Sprintf("🎯 **명중!** %s의 공격(%d)이 %s(%d)에게 명중!",
			attacker.Name, attack, b.MonsterName, defend))
	} else {
		s.say(ctx, b.ChannelID, fmt.Sprintf("🛡️ **회피!** %s(%d)이 %s의 공격(%d)을 회피!",
			b.MonsterName, defend, attacker.Name, attack))
	}

	b.ActionsLeft--
	if b.ActionsLeft > 0 && !attacker.IsEliminated && !s.decided(b) {
		s.say(ctx, b.ChannelID, fmt.Sprintf("⚡ %s님의 추가 공격! (남은 횟수 %d)", attacker.Name, b.ActionsLeft))
	} else {
		b.TurnIndex++
		b.ActionsLeft = 0
	}

	s.pause()
	s.nextTurn(ctx, b)
}

func (s *service) resolveAdminAttack(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	attack := pending.Rolls[b.Admin.UserID]

	var lines, fallen []string
	for _, p := range b.Players {
		defend, targeted := pending.Rolls[p.UserID]
		if !targeted || p.IsEliminated {
			continue
		}
		if attack > defend {
			b.Admin.HitsDealt += s.applyHits(ctx, b, p, 1)
			lines = append(lines, fmt.Sprintf("🎯 %s(%d) 피격!", p.Name, defend))
			if p.IsEliminated {
				fallen = append(fallen, p.Name)
			}
		} else {
			lines = append(lines, fmt.Sprintf("🛡️ %s(%d) 회피!", p.Name, defend))
		}
	}

	text := fmt.Sprintf("⚔️ **%s 공격(%d)**\n%s", b.MonsterName, attack, joinLines(lines))
	if len(fallen) > 0 {
		text += "\n\n💀 **탈락:** " + strings.Join(fallen, ", ")
	}
	s.say(ctx, b.ChannelID, text)

	b.AdminAttacksLeft--
	if s.decided(b) {
		s.conclude(ctx, b)
		return
	}
	if b.AdminAttacksLeft > 0 {
		s.say(ctx, b.ChannelID, fmt.Sprintf("⚡ %s의 추가 공격! (남은 횟수 %d)", b.MonsterName, b.AdminAttacksLeft))
		s.pause()
		s.startAdminAttack(ctx, b)
		return
	}

	s.endRound(ctx, b)
	s.pause()
	s.nextTurn(ctx, b)
}

func (s *service) resolveTeamAttack(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	attacker := b.Find(pending.AttackerID)
	target := b.Find(pending.TargetID)
	if attacker == nil || target == nil {
		b.TurnIndex++
		s.nextTurn(ctx, b)
		return
	}

	attack := pending.Rolls[attacker.UserID]
	defend := pending.Rolls[target.UserID]
	if attack > defend {
		attacker.HitsDealt += s.applyHits(ctx, b, target, 1)
		s.say(ctx, b.ChannelID, fmt.Sprintf("🎯 **명중!** %s의 공격(%d)이 %s(%d)에게 명중!%s",
			attacker.Name, attack, target.Name, defend, fallenNote(target)))
	} else {
		s.say(ctx, b.ChannelID, fmt.Sprintf("🛡️ **회피!** %s(%d)이 %s의 공격(%d)을 회피!",
			target.Name, defend, attacker.Name, attack))
	}

	b.ActionsLeft--
	if b.ActionsLeft <= 0 || attacker.IsEliminated || target.IsEliminated {
		b.TurnIndex++
		b.ActionsLeft = 0
	}

	s.pause()
	s.nextTurn(ctx, b)
}

// FocusedAttack replaces the admin attack with repeated hits on one player
func (s *service) FocusedAttack(ctx context.Context, input *FocusedAttackInput) error {
	if input == nil {
		return apperr.InvalidArgument("input cannot be nil")
	}
	if input.Count < 1 || input.Count > MaxFocusedAttacks {
		return apperr.InvalidArgumentf("공격 횟수는 1~%d 사이여야 합니다.", MaxFocusedAttacks)
	}
	mode := input.Mode
	if mode == "" {
		mode = entities.FocusModeEach
	}
	if mode != entities.FocusModeEach && mode != entities.FocusModeSingle {
		return apperr.InvalidArgumentf("알 수 없는 판정 방식입니다: %s", mode)
	}

	unlock := s.locks.lock(input.ChannelID)
	defer unlock()

	b, err := s.live(ctx, input.ChannelID)
	if err != nil {
		return err
	}
	if b.Admin == nil || b.Phase != entities.BattlePhaseCombat {
		return apperr.InvalidArgument("진행 중인 Admin 전투가 없습니다.")
	}
	if !b.IsAdmin(input.RequesterID) {
		return apperr.PermissionDenied("집중공격은 Admin만 사용할 수 있습니다.")
	}
	if b.TurnPhase != entities.TurnPhaseAdminAttack || b.Focused != nil {
		return apperr.InvalidArgument("Admin의 공격 턴이 아닙니다.")
	}

	target := b.Find(input.TargetID)
	if target == nil || target == b.Admin || target.IsEliminated {
		return apperr.InvalidArgument("대상을 찾을 수 없거나 이미 탈락했습니다.")
	}

	b.Touch(s.clock.Now())
	b.Pending = nil
	b.Focused = &entities.FocusedAttack{
		TargetID: target.UserID,
		Total:    input.Count,
		Mode:     mode,
		FollowUp: input.FollowUp,
	}

	if mode == entities.FocusModeSingle {
		s.say(ctx, b.ChannelID, fmt.Sprintf(
			"⚔️ **%s의 집중공격!**\n🎯 대상: %s\n🔢 공격 횟수: %d회\n🎲 판정 방식: 단일 판정\n\n"+
				"🗡️ %s님, 공격 주사위를 굴려주세요!\n🛡️ %s님, 회피 주사위를 굴려주세요!\n(성공 시 모든 공격 명중, 실패 시 모든 공격 실패)",
			b.MonsterName, target.Name, input.Count, b.MonsterName, target.Name))

		pending := entities.NewPendingDice(entities.PendingPhaseFocusedSingle, b.Admin.UserID, target.UserID)
		pending.AttackerID = b.Admin.UserID
		pending.TargetID = target.UserID
		b.Pending = pending
		return nil
	}

	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **%s의 집중공격!**\n🎯 대상: %s\n🔢 공격 횟수: %d회\n🎲 판정 방식: 각각 회피\n\n첫 번째 공격을 시작합니다...",
		b.MonsterName, target.Name, input.Count))
	s.pause()
	s.promptFocused(ctx, b, target)
	return nil
}

func (s *service) promptFocused(ctx context.Context, b *entities.Battle, target *entities.Player) {
	f := b.Focused
	s.say(ctx, b.ChannelID, fmt.Sprintf(
		"⚔️ **집중공격 %d/%d회차**\n🗡️ %s님, 공격 주사위를 굴려주세요!\n🛡️ %s님, 회피 주사위를 굴려주세요!",
		f.Completed+1, f.Total, b.MonsterName, target.Name))

	pending := entities.NewPendingDice(entities.PendingPhaseFocusedEach, b.Admin.UserID, target.UserID)
	pending.AttackerID = b.Admin.UserID
	pending.TargetID = target.UserID
	b.Pending = pending
}

func (s *service) resolveFocusedSingle(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	f := b.Focused
	target := b.Find(pending.TargetID)
	if f == nil || target == nil {
		s.finishFocused(ctx, b)
		return
	}

	attack := pending.Rolls[b.Admin.UserID]
	defend := pending.Rolls[target.UserID]
	if attack > defend {
		hits := f.Total
		if left := target.RemainingHealth(); hits > left {
			hits = left
		}
		f.Hits = s.applyHits(ctx, b, target, hits)
		b.Admin.HitsDealt += f.Hits
		s.say(ctx, b.ChannelID, fmt.Sprintf("💥 **대성공!** %s의 공격(%d)이 %s(%d)에게 %d회 모두 명중!%s",
			b.MonsterName, attack, target.Name, defend, f.Hits, fallenNote(target)))
	} else {
		s.say(ctx, b.ChannelID, fmt.Sprintf("🛡️ **완벽한 회피!** %s(%d)이 %s의 모든 공격(%d)을 회피!",
			target.Name, defend, b.MonsterName, attack))
	}
	f.Completed = f.Total
	s.finishFocused(ctx, b)
}

// resolveFocusedEach settles one exchange; the sequence stops early when the target falls
func (s *service) resolveFocusedEach(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	f := b.Focused
	target := b.Find(pending.TargetID)
	if f == nil || target == nil {
		s.finishFocused(ctx, b)
		return
	}

	f.Completed++
	attack := pending.Rolls[b.Admin.UserID]
	defend := pending.Rolls[target.UserID]
	if attack > defend {
		applied := s.applyHits(ctx, b, target, 1)
		f.Hits += applied
		b.Admin.HitsDealt += applied
		s.say(ctx, b.ChannelID, fmt.Sprintf("🎯 **%d회차 명중!** %s의 공격(%d)이 %s(%d)에게 명중!%s",
			f.Completed, b.MonsterName, attack, target.Name, defend, fallenNote(target)))
	} else {
		s.say(ctx, b.ChannelID, fmt.Sprintf("🛡️ **%d회차 회피!** %s(%d)이 %s의 공격(%d)을 회피!",
			f.Completed, target.Name, defend, b.MonsterName, attack))
	}

	if f.Remaining() > 0 && !target.IsEliminated {
		s.pause()
		s.promptFocused(ctx, b, target)
		return
	}

	s.say(ctx, b.ChannelID, fmt.Sprintf("\n💥 **집중공격 종료!**\n총 %d회 공격 중 %d회 명중!", f.Completed, f.Hits))
	s.finishFocused(ctx, b)
}

// finishFocused chains into the attack on everyone or closes the round
func (s *service) finishFocused(ctx context.Context, b *entities.Battle) {
	if s.decided(b) {
		s.conclude(ctx, b)
		return
	}
	if b.Focused != nil && b.Focused.FollowUp {
		s.say(ctx, b.ChannelID, "이어서 전체 공격을 시작합니다...")
		s.pause()
		s.startAdminAttack(ctx, b)
		return
	}

	s.endRound(ctx, b)
	s.pause()
	s.nextTurn(ctx, b)
}

// Surrender takes the caller out of the battle
func (s *service) Surrender(ctx context.Context, channelID, userID string) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}
	p := b.Find(userID)
	if p == nil {
		return apperr.PermissionDenied("전투에 참여 중이지 않습니다")
	}
	if b.Phase == entities.BattlePhaseWaiting {
		return apperr.InvalidArgument("아직 시작되지 않은 전투입니다")
	}
	if p.IsEliminated {
		return apperr.InvalidArgument("이미 탈락한 상태입니다")
	}
	b.Touch(s.clock.Now())

	if b.IsAdmin(userID) {
		p.Surrender()
		s.say(ctx, channelID, fmt.Sprintf("🏳️ %s이(가) 항복했습니다!", b.MonsterName))
		s.endBattle(ctx, b)
		return nil
	}

	p.Surrender()
	s.mirror.mirror(ctx, b.GuildID, p)
	s.say(ctx, channelID, fmt.Sprintf("🏳️ %s님이 항복했습니다.", p.Name))

	if b.TargetWait != "" {
		if current := b.CurrentPlayer(); current == p {
			b.TargetWait = ""
			b.TurnIndex++
			b.ActionsLeft = 0
			s.nextTurn(ctx, b)
			return nil
		}
	}
	s.settle(ctx, b)
	return nil
}
