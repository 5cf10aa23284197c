package skill

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

const (
	volkenPhases        = 5
	volkenSelectPhase   = 4
	volkenSelectBelow   = 50
	volkenCounterStrike = 2
)

type volken struct {
	baseHandler
}

func newVolken() *volken {
	return &volken{baseHandler{name: entities.SkillVolken}}
}

// Activate always runs the full five phases regardless of the requested rounds
func (h *volken) Activate(ctx context.Context, s *Scope) ([]string, error) {
	s.Instance.RoundsLeft = volkenPhases
	s.Instance.Duration = volkenPhases
	s.effects().VolkenEruption = &entities.VolkenEffect{
		CasterID:        s.Instance.UserID,
		Phase:           1,
		SelectedTargets: []string{},
	}
	return []string{"🌋 볼켄의 화산이 깨어납니다! (1/5단계)"}, nil
}

func (h *volken) OnRoundStart(ctx context.Context, s *Scope) []string {
	v := s.effects().VolkenEruption
	if v == nil || v.Phase >= volkenPhases {
		return nil
	}
	v.Phase++
	switch v.Phase {
	case volkenSelectPhase:
		return []string{"🌋 볼켄 4단계: 50 미만을 굴린 적이 표적으로 선정됩니다!"}
	case volkenPhases:
		return []string{"🌋 볼켄 5단계: 분화가 임박했습니다!"}
	default:
		return []string{fmt.Sprintf("🌋 볼켄 %d단계: 화산재가 짙어집니다.", v.Phase)}
	}
}

func (h *volken) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	v := s.effects().VolkenEruption
	if v == nil {
		return roll.Value, ""
	}

	switch {
	case v.Phase <= 3:
		if roll.UserID != v.CasterID || roll.Value == 1 {
			return roll.Value, ""
		}
		return 1, "🌋 볼켄의 화산재로 주사위가 1로 고정됩니다!"
	case v.Phase == volkenSelectPhase:
		if !s.opposes(roll) || roll.Value >= volkenSelectBelow {
			return roll.Value, ""
		}
		for _, id := range v.SelectedTargets {
			if id == roll.UserID {
				return roll.Value, ""
			}
		}
		v.SelectedTargets = append(v.SelectedTargets, roll.UserID)
		return roll.Value, fmt.Sprintf("🔥 %s이(가) 볼켄의 표적으로 선정되었습니다!", s.name(ctx, roll.UserID))
	}
	return roll.Value, ""
}

// OnSkillEnd erupts on every selected target that is still standing
func (h *volken) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	v := s.effects().VolkenEruption
	s.effects().Clear(entities.EffectVolkenEruption)
	if cancelled || v == nil || len(v.SelectedTargets) == 0 {
		return nil
	}

	lines := []string{"🌋 볼켄의 분화! 표적에게 용암이 쏟아집니다!"}
	for _, id := range v.SelectedTargets {
		info, err := s.Arena.UserInfo(ctx, s.ChannelID, id)
		if err != nil || info == nil || info.IsEliminated {
			continue
		}
		total := 0
		for i := 0; i < volkenCounterStrike; i++ {
			result, err := s.Roller.Roll(1, 3, 0)
			if err != nil {
				continue
			}
			dealt, err := s.Arena.DamageUser(ctx, s.ChannelID, id, result.Total*10)
			if err != nil {
				continue
			}
			total += dealt
		}
		lines = append(lines, fmt.Sprintf("• %s: %d회 피격", info.Name, total))
	}
	return []string{strings.Join(lines, "\n")}
}
