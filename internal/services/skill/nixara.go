package skill

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

// dueler is implemented by skills that consume out-of-turn rolls
type dueler interface {
	ResolveDuel(ctx context.Context, s *Scope, userID string, value int) (bool, []string)
	Awaits(s *Scope, userID string) bool
}

type nixara struct {
	baseHandler
}

func newNixara() *nixara {
	return &nixara{baseHandler{name: entities.SkillNixara}}
}

func (h *nixara) Activate(ctx context.Context, s *Scope) ([]string, error) {
	target := s.Instance.TargetID
	if target == "" || target == s.Instance.UserID || target == entities.TargetAllUsers {
		return nil, apperr.InvalidArgument("닉사라는 결투할 대상이 필요합니다")
	}
	s.effects().NixaraDuel = &entities.DuelEffect{
		CasterID: s.Instance.UserID,
		TargetID: target,
	}
	return []string{fmt.Sprintf("🌀 닉사라의 결투가 시작됩니다! %s과(와) %s은(는) 주사위를 굴려주세요.",
		s.Instance.UserName, s.name(ctx, target))}, nil
}

// Awaits reports whether userID still owes a duel roll
func (h *nixara) Awaits(s *Scope, userID string) bool {
	duel := s.effects().NixaraDuel
	if duel == nil {
		return false
	}
	return (userID == duel.CasterID && duel.CasterRoll == nil) ||
		(userID == duel.TargetID && duel.TargetRoll == nil)
}

// ResolveDuel records a duel roll and settles the duel once both sides rolled.
// The loser of the gap is exiled for a round per full 10 points of difference.
func (h *nixara) ResolveDuel(ctx context.Context, s *Scope, userID string, value int) (bool, []string) {
	if !h.Awaits(s, userID) {
		return false, nil
	}
	effects := s.effects()
	duel := effects.NixaraDuel
	v := value
	if userID == duel.CasterID && duel.CasterRoll == nil {
		duel.CasterRoll = &v
	} else {
		duel.TargetRoll = &v
	}
	if !duel.Complete() {
		return true, []string{fmt.Sprintf("🌀 결투 주사위 %d 기록됨", value)}
	}

	caster, target := *duel.CasterRoll, *duel.TargetRoll
	effects.Clear(entities.EffectNixaraDuel)

	diff := caster - target
	if diff < 0 {
		diff = -diff
	}
	rounds := diff / 10
	targetName := s.name(ctx, duel.TargetID)
	if rounds == 0 {
		return true, []string{fmt.Sprintf("🌀 닉사라의 유배가 실패했습니다! (%d vs %d)", caster, target)}
	}

	if effects.NixaraExcluded == nil {
		effects.NixaraExcluded = make(map[string]*entities.ExclusionEffect)
	}
	effects.NixaraExcluded[duel.TargetID] = &entities.ExclusionEffect{
		CasterID:   duel.CasterID,
		RoundsLeft: rounds,
	}
	return true, []string{fmt.Sprintf("🌀 %s이(가) %d라운드 동안 차원 유배됩니다! (%d vs %d)", targetName, rounds, caster, target)}
}

func (h *nixara) OnRoundStart(ctx context.Context, s *Scope) []string {
	effects := s.effects()
	if len(effects.NixaraExcluded) == 0 {
		return nil
	}
	ids := make([]string, 0, len(effects.NixaraExcluded))
	for id := range effects.NixaraExcluded {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var messages []string
	for _, id := range ids {
		ex := effects.NixaraExcluded[id]
		ex.RoundsLeft--
		if ex.RoundsLeft <= 0 {
			delete(effects.NixaraExcluded, id)
			messages = append(messages, fmt.Sprintf("🌀 %s이(가) 차원 유배에서 돌아왔습니다!", s.name(ctx, id)))
		}
	}
	if len(effects.NixaraExcluded) == 0 {
		effects.Clear(entities.EffectNixaraExcluded)
	}
	return messages
}

func (h *nixara) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	if !s.effects().IsExcluded(roll.UserID) {
		return roll.Value, ""
	}
	return 0, "💫 닉사라의 차원 유배로 행동할 수 없습니다!"
}

func (h *nixara) Blocks(s *Scope, userID string) (bool, string) {
	if s.effects().IsExcluded(userID) {
		return true, "💫 닉사라의 차원 유배로 행동할 수 없습니다!"
	}
	return false, ""
}

func (h *nixara) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	effects := s.effects()
	effects.Clear(entities.EffectNixaraDuel)
	effects.Clear(entities.EffectNixaraExcluded)
	return nil
}
