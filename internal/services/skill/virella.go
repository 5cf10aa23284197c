package skill

import (
	"context"
	"fmt"
	"sort"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

const (
	virellaMaxRounds   = 3
	virellaResistCheck = 50
)

type virella struct {
	baseHandler
}

func newVirella() *virella {
	return &virella{baseHandler{name: entities.SkillVirella}}
}

func (h *virella) Activate(ctx context.Context, s *Scope) ([]string, error) {
	target := s.Instance.TargetID
	if target == "" || target == s.Instance.UserID || target == entities.TargetAllUsers {
		return nil, apperr.InvalidArgument("비렐라는 속박할 대상이 필요합니다")
	}

	rounds := s.Instance.Duration
	if rounds > virellaMaxRounds {
		rounds = virellaMaxRounds
	}
	if rounds < 1 {
		rounds = 1
	}

	effects := s.effects()
	if effects.VirellaBound == nil {
		effects.VirellaBound = make(map[string]*entities.BindEffect)
	}
	effects.VirellaBound[target] = &entities.BindEffect{
		CasterID:   s.Instance.UserID,
		RoundsLeft: rounds,
	}
	return []string{fmt.Sprintf("🌿 비렐라의 덩굴이 %s을(를) 속박합니다! (최대 %d라운드)", s.name(ctx, target), rounds)}, nil
}

// OnRoundStart gives every bound player a resistance roll
func (h *virella) OnRoundStart(ctx context.Context, s *Scope) []string {
	effects := s.effects()
	if len(effects.VirellaBound) == 0 {
		return nil
	}

	ids := make([]string, 0, len(effects.VirellaBound))
	for id := range effects.VirellaBound {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var messages []string
	for _, id := range ids {
		bind := effects.VirellaBound[id]
		value := s.percent()
		bind.ResistRolls = append(bind.ResistRolls, value)

		if value >= virellaResistCheck {
			bind.ResistSuccess = true
			delete(effects.VirellaBound, id)
			messages = append(messages, fmt.Sprintf("🌿 %s이(가) 비렐라의 속박에서 벗어났습니다! (저항 %d)", s.name(ctx, id), value))
			continue
		}

		bind.RoundsLeft--
		if bind.RoundsLeft <= 0 {
			delete(effects.VirellaBound, id)
			messages = append(messages, fmt.Sprintf("🌿 %s을(를) 묶던 덩굴이 시들었습니다.", s.name(ctx, id)))
			continue
		}
		messages = append(messages, fmt.Sprintf("🌿 %s의 저항 실패 (저항 %d), 속박 %d라운드 남음", s.name(ctx, id), value, bind.RoundsLeft))
	}
	if len(effects.VirellaBound) == 0 {
		effects.Clear(entities.EffectVirellaBound)
	}
	return messages
}

func (h *virella) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	if !s.effects().IsBound(roll.UserID) {
		return roll.Value, ""
	}
	return 0, "🌿 비렐라의 속박으로 행동할 수 없습니다!"
}

func (h *virella) Blocks(s *Scope, userID string) (bool, string) {
	if s.effects().IsBound(userID) {
		return true, "🌿 비렐라의 속박으로 행동할 수 없습니다!"
	}
	return false, ""
}

func (h *virella) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectVirellaBound)
	return nil
}
