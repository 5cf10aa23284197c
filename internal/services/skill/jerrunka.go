package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

const jerrunkaPenalty = 20

type jerrunka struct {
	baseHandler
}

func newJerrunka() *jerrunka {
	return &jerrunka{baseHandler{name: entities.SkillJerrunka}}
}

// Activate curses the weakest user who has not cast a skill,
// or the weakest user overall when everyone has one
func (h *jerrunka) Activate(ctx context.Context, s *Scope) ([]string, error) {
	var living, unskilled []*entities.Participant
	for _, p := range s.livingUsers(ctx) {
		if p.UserID == s.Instance.UserID {
			continue
		}
		living = append(living, p)
		if _, inst := s.State.SkillOf(p.UserID); inst == nil {
			unskilled = append(unskilled, p)
		}
	}

	target := lowestHealth(unskilled)
	if target == nil {
		target = lowestHealth(living)
	}
	if target == nil {
		return nil, apperr.InvalidArgument("저주할 대상이 없습니다")
	}

	s.setTarget(target.UserID, target.Name)
	s.effects().JerrunkaCurse = &entities.CurseEffect{
		CasterID: s.Instance.UserID,
		TargetID: target.UserID,
		Penalty:  jerrunkaPenalty,
	}
	return []string{fmt.Sprintf("😈 제룬카의 저주가 %s에게 내려졌습니다! 주사위 -%d", target.Name, jerrunkaPenalty)}, nil
}

func (h *jerrunka) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	curse := s.effects().JerrunkaCurse
	if curse == nil || curse.TargetID != roll.UserID {
		return roll.Value, ""
	}
	value := floorOne(roll.Value - curse.Penalty)
	if value == roll.Value {
		return roll.Value, ""
	}
	return value, fmt.Sprintf("😈 제룬카의 저주로 주사위가 -%d됩니다! (%d → %d)", curse.Penalty, roll.Value, value)
}

func (h *jerrunka) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectJerrunkaCurse)
	return nil
}
