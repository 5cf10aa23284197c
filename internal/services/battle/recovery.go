package battle

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

// UpdateRecovery applies an out-of-battle heal to every battle the user is in.
// In synced battles the admin heals received hits while a player's battle
// health pool grows.
func (s *service) UpdateRecovery(ctx context.Context, userID string, oldHealth, newHealth int) error {
	if userID == "" {
		return apperr.InvalidArgument("user id is required")
	}
	list, err := s.battles.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list battles: %w", err)
	}

	delta := nickname.BattleHealth(newHealth) - nickname.BattleHealth(oldHealth)
	for _, candidate := range list {
		s.applyRecovery(ctx, candidate.ChannelID, userID, newHealth, delta)
	}
	return nil
}

func (s *service) applyRecovery(ctx context.Context, channelID, userID string, newHealth, delta int) {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return
	}
	p := b.Find(userID)
	if p == nil || p.IsEliminated {
		return
	}
	p.RealHealth = newHealth
	if !b.HealthSync || delta <= 0 {
		return
	}

	if b.IsAdmin(userID) {
		healed := p.Heal(delta)
		if healed == 0 {
			return
		}
		s.say(ctx, channelID, fmt.Sprintf("💚 %s의 회복으로 전투 체력이 %d 증가했습니다! (전투 체력: %d/%d)",
			b.MonsterName, healed, p.RemainingHealth(), p.MaxHealth))
	} else {
		p.RaiseMaxHealth(delta)
		s.say(ctx, channelID, fmt.Sprintf("💚 %s님의 회복으로 전투 체력이 %d 증가했습니다! (전투 체력: %d/%d)",
			p.Name, delta, p.RemainingHealth(), p.MaxHealth))
	}

	if b.Phase != entities.BattlePhaseWaiting {
		s.refreshStatus(ctx, b)
	}
}
