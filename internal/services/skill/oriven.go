package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

const orivenPenalty = 10

type oriven struct {
	baseHandler
}

func newOriven() *oriven {
	return &oriven{baseHandler{name: entities.SkillOriven}}
}

// OnDiceRoll weakens every roller on the side opposite the caster
func (h *oriven) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	if !s.opposes(roll) {
		return roll.Value, ""
	}
	value := floorOne(roll.Value - orivenPenalty)
	if value == roll.Value {
		return roll.Value, ""
	}
	return value, fmt.Sprintf("🌀 오리븐의 바람으로 주사위가 -%d됩니다! (%d → %d)", orivenPenalty, roll.Value, value)
}
