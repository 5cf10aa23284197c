package skill

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

type coalFold struct {
	baseHandler
}

func newCoalFold() *coalFold {
	return &coalFold{baseHandler{name: entities.SkillCoalFold}}
}

// OnDiceRoll replaces the target's roll with 0 (40%) or 100 (60%)
func (h *coalFold) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	if !s.affects(roll) {
		return roll.Value, ""
	}
	if s.percent() <= 40 {
		return 0, "💀 콜 폴드의 절망이 주사위를 0으로 만듭니다!"
	}
	return 100, "✨ 콜 폴드의 희망이 주사위를 100으로 만듭니다!"
}
