package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

const (
	hwangyaUserActions  = 3
	hwangyaAdminActions = 2
)

type hwangya struct {
	baseHandler
}

func newHwangya() *hwangya {
	return &hwangya{baseHandler{name: entities.SkillHwangya}}
}

func (h *hwangya) Activate(ctx context.Context, s *Scope) ([]string, error) {
	actions := hwangyaUserActions
	if s.Instance.CasterSide == entities.CasterSideAdmin {
		actions = hwangyaAdminActions
	}
	s.effects().HwangyaActions = &entities.MultiActionEffect{
		CasterID: s.Instance.UserID,
		Actions:  actions,
	}
	return []string{fmt.Sprintf("⚔️ 황야의 질주! %s은(는) 한 턴에 %d번 공격합니다.", s.Instance.UserName, actions)}, nil
}

func (h *hwangya) Actions(s *Scope, userID string) int {
	effect := s.effects().HwangyaActions
	if effect == nil || effect.CasterID != userID {
		return 0
	}
	return effect.Actions
}

func (h *hwangya) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectHwangyaActions)
	return nil
}
