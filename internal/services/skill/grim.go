package skill

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

type grim struct {
	baseHandler
}

func newGrim() *grim {
	return &grim{baseHandler{name: entities.SkillGrim}}
}

func (h *grim) Activate(ctx context.Context, s *Scope) ([]string, error) {
	rounds := s.Instance.Duration
	if rounds < 1 {
		rounds = 1
	}
	s.effects().GrimPreparing = &entities.GrimEffect{
		CasterID:   s.Instance.UserID,
		RoundsLeft: rounds,
	}
	return []string{fmt.Sprintf("💀 그림이 처형을 준비합니다... %d라운드 후 가장 약한 자가 쓰러집니다.", rounds)}, nil
}

// OnRoundStart counts down and executes the weakest living user at zero
func (h *grim) OnRoundStart(ctx context.Context, s *Scope) []string {
	g := s.effects().GrimPreparing
	if g == nil || g.TriggeredAt > 0 {
		return nil
	}
	g.RoundsLeft--
	if g.RoundsLeft > 0 {
		return []string{fmt.Sprintf("💀 그림의 처형까지 %d라운드", g.RoundsLeft)}
	}

	g.TriggeredAt = s.State.CurrentRound
	target := lowestHealth(s.livingUsers(ctx))
	if target == nil {
		return []string{"💀 그림의 낫이 허공을 가릅니다."}
	}
	g.TargetID = target.UserID

	if s.effects().IsWarded(target.UserID) {
		return []string{fmt.Sprintf("🔥 피닉스의 가호가 %s을(를) 그림의 처형으로부터 지켰습니다!", target.Name)}
	}
	if err := s.Arena.KillUser(ctx, s.ChannelID, target.UserID); err != nil {
		log.Printf("Grim failed to execute %s: %v", target.UserID, err)
		return nil
	}
	return []string{fmt.Sprintf("💀 그림의 처형! %s이(가) 쓰러졌습니다!", target.Name)}
}

func (h *grim) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	s.effects().Clear(entities.EffectGrimPreparing)
	return nil
}
