package skill

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

type karon struct {
	baseHandler
}

func newKaron() *karon {
	return &karon{baseHandler{name: entities.SkillKaron}}
}

func (h *karon) Activate(ctx context.Context, s *Scope) ([]string, error) {
	if s.Instance.TargetID == "" {
		s.setTarget(entities.TargetAllUsers, "모든 유저")
	}
	return []string{fmt.Sprintf("🤝 카론의 사슬이 %s을(를) 묶습니다! 받은 피해를 모두가 함께 받습니다.", s.Instance.TargetName)}, nil
}

// ShareDamage mirrors damage taken by a linked user onto every other living user
func (h *karon) ShareDamage(ctx context.Context, s *Scope, victimID string, amount int) (int, []DamageShare, string) {
	if amount <= 0 {
		return amount, nil, ""
	}
	victim, err := s.Arena.UserInfo(ctx, s.ChannelID, victimID)
	if err != nil || victim == nil || victim.IsAdmin {
		return amount, nil, ""
	}
	if s.Instance.TargetID != entities.TargetAllUsers && s.Instance.TargetID != victimID {
		return amount, nil, ""
	}

	var shares []DamageShare
	for _, p := range s.livingUsers(ctx) {
		if p.UserID == victimID {
			continue
		}
		shares = append(shares, DamageShare{UserID: p.UserID, Amount: amount, Source: h.name})
	}
	if len(shares) == 0 {
		return amount, nil, ""
	}
	return amount, shares, fmt.Sprintf("🤝 카론의 사슬로 %s의 피해 %d이(가) 모든 유저에게 전해집니다!", victim.Name, amount)
}
