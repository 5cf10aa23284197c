package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

const phoenixReviveHealth = 10

type phoenix struct {
	baseHandler
}

func newPhoenix() *phoenix {
	return &phoenix{baseHandler{name: entities.SkillPhoenix}}
}

// Activate revives a fallen target or wards a living one against execution
func (h *phoenix) Activate(ctx context.Context, s *Scope) ([]string, error) {
	targetID := s.target()
	target, err := s.Arena.UserInfo(ctx, s.ChannelID, targetID)
	if err != nil {
		return nil, apperr.Wrap(err, "피닉스의 대상을 찾을 수 없습니다")
	}
	s.setTarget(target.UserID, target.Name)

	if target.IsEliminated {
		if err := s.Arena.ReviveUser(ctx, s.ChannelID, target.UserID, phoenixReviveHealth); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("🔥 피닉스의 불꽃으로 %s이(가) 부활했습니다! (체력 %d)", target.Name, phoenixReviveHealth)}, nil
	}

	effects := s.effects()
	if effects.PhoenixWard == nil {
		effects.PhoenixWard = &entities.WardEffect{
			CasterID:  s.Instance.UserID,
			Protected: make(map[string]bool),
		}
	}
	effects.PhoenixWard.Protected[target.UserID] = true
	return []string{fmt.Sprintf("🔥 피닉스의 가호가 %s을(를) 감쌉니다!", target.Name)}, nil
}

func (h *phoenix) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectPhoenixWard)
	return nil
}
