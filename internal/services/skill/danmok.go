package skill

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

const (
	danmokThreshold    = 50
	danmokDamage       = 20
	danmokSplashDamage = 10
)

type danmok struct {
	baseHandler
}

func newDanmok() *danmok {
	return &danmok{baseHandler{name: entities.SkillDanmok}}
}

func (h *danmok) Activate(ctx context.Context, s *Scope) ([]string, error) {
	s.effects().DanmokPierce = &entities.PierceEffect{
		CasterID: s.Instance.UserID,
		Round:    s.State.CurrentRound,
		Pierced:  make(map[string]bool),
	}
	return []string{"🏹 단목이 활시위를 당깁니다! 50 미만을 굴린 적은 관통당합니다."}, nil
}

// OnDiceRoll pierces an opposing roller who rolled low, once per round.
// The roll value itself is untouched.
func (h *danmok) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	pierce := s.effects().DanmokPierce
	if pierce == nil || !s.opposes(roll) || roll.Value >= danmokThreshold {
		return roll.Value, ""
	}
	if pierce.Round != s.State.CurrentRound || pierce.Pierced == nil {
		pierce.Round = s.State.CurrentRound
		pierce.Pierced = make(map[string]bool)
	}
	if pierce.Pierced[roll.UserID] {
		return roll.Value, ""
	}
	pierce.Pierced[roll.UserID] = true

	if _, err := s.Arena.DamageUser(ctx, s.ChannelID, roll.UserID, danmokDamage); err != nil {
		log.Printf("Danmok failed to damage %s: %v", roll.UserID, err)
		return roll.Value, ""
	}
	msg := fmt.Sprintf("🏹 단목의 화살이 %s을(를) 관통합니다! (%d 피해)", s.name(ctx, roll.UserID), danmokDamage)

	if roll.IsAdmin {
		return roll.Value, msg
	}
	if next := nextLivingUser(s.livingUsers(ctx), roll.UserID); next != nil {
		if _, err := s.Arena.DamageUser(ctx, s.ChannelID, next.UserID, danmokSplashDamage); err == nil {
			msg += fmt.Sprintf(" 화살이 %s에게 이어집니다! (%d 피해)", next.Name, danmokSplashDamage)
		}
	}
	return roll.Value, msg
}

func (h *danmok) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectDanmokPierce)
	return nil
}

// nextLivingUser returns the user after userID in turn order, wrapping around
func nextLivingUser(living []*entities.Participant, userID string) *entities.Participant {
	idx := -1
	for i, p := range living {
		if p.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 || len(living) < 2 {
		return nil
	}
	return living[(idx+1)%len(living)]
}
