package skill

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

type lucencia struct {
	baseHandler
}

func newLucencia() *lucencia {
	return &lucencia{baseHandler{name: entities.SkillLucencia}}
}

func (h *lucencia) Activate(ctx context.Context, s *Scope) ([]string, error) {
	return []string{fmt.Sprintf("💚 %s이(가) 루센시아의 빛을 품었습니다! 쓰러진 동료를 체력을 바쳐 되살립니다.", s.Instance.UserName)}, nil
}

// OnRoundStart revives one fallen user at the caster's expense,
// priority users first
func (h *lucencia) OnRoundStart(ctx context.Context, s *Scope) []string {
	dead := s.deadUsers(ctx)
	if len(dead) == 0 {
		return nil
	}

	caster, err := s.Arena.UserInfo(ctx, s.ChannelID, s.Instance.UserID)
	if err != nil || caster == nil || caster.IsEliminated {
		return nil
	}
	cost := s.Settings.Lucencia.HealthCost
	if caster.Health <= nickname.HitsFromDamage(cost) {
		return []string{fmt.Sprintf("💚 %s의 체력이 부족해 루센시아가 응답하지 않습니다.", caster.Name)}
	}

	target := dead[0]
	for _, priority := range s.Settings.PriorityUsers {
		found := false
		for _, p := range dead {
			if p.UserID == priority {
				target = p
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if _, err := s.Arena.DamageUser(ctx, s.ChannelID, caster.UserID, cost); err != nil {
		log.Printf("Lucencia failed to charge %s: %v", caster.UserID, err)
		return nil
	}
	if err := s.Arena.ReviveUser(ctx, s.ChannelID, target.UserID, s.Settings.Lucencia.RevivalHealth); err != nil {
		log.Printf("Lucencia failed to revive %s: %v", target.UserID, err)
		return nil
	}
	return []string{fmt.Sprintf("💚 %s이(가) 체력 %d을(를) 소모하여 %s을(를) 부활시켰습니다!", caster.Name, cost, target.Name)}
}
