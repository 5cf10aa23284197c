package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// clampHandler keeps the target's rolls inside [lo, hi]
type clampHandler struct {
	baseHandler
	lo, hi int
	emoji  string
}

func newClamp(name entities.SkillName, lo, hi int, emoji string) *clampHandler {
	return &clampHandler{
		baseHandler: baseHandler{name: name},
		lo:          lo,
		hi:          hi,
		emoji:       emoji,
	}
}

func (h *clampHandler) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	if !s.affects(roll) {
		return roll.Value, ""
	}
	value := clamp(roll.Value, h.lo, h.hi)
	if value == roll.Value {
		return roll.Value, ""
	}
	return value, fmt.Sprintf("%s %s의 힘으로 주사위가 %d(으)로 보정됩니다!", h.emoji, h.name, value)
}
