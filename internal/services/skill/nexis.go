package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

const nexisDamage = 30

type nexis struct {
	baseHandler
}

func newNexis() *nexis {
	return &nexis{baseHandler{name: entities.SkillNexis}}
}

// Activate strikes the target, the battle admin by default, for fixed damage
func (h *nexis) Activate(ctx context.Context, s *Scope) ([]string, error) {
	targetID := s.Instance.TargetID
	if targetID == "" || targetID == entities.TargetAllUsers {
		targetID = s.adminID(ctx)
	}
	if targetID == "" {
		return nil, apperr.InvalidArgument("넥시스의 대상을 찾을 수 없습니다")
	}
	target, err := s.Arena.UserInfo(ctx, s.ChannelID, targetID)
	if err != nil {
		return nil, apperr.Wrap(err, "넥시스의 대상을 찾을 수 없습니다")
	}
	s.setTarget(target.UserID, target.Name)

	if _, err := s.Arena.DamageUser(ctx, s.ChannelID, target.UserID, nexisDamage); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("⭐ 넥시스의 일격! %s에게 고정 피해 %d", target.Name, nexisDamage)}, nil
}
