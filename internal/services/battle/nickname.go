package battle

import (
	"context"
	"log"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

// healthMirror writes a player's narrative health into their nickname
type healthMirror struct {
	setter NicknameSetter
}

// realHealthLeft is the narrative health after the hits taken this battle
func realHealthLeft(p *entities.Player) int {
	left := p.RealHealth - p.HitsReceived*10
	if left < 0 {
		return 0
	}
	return left
}

// mirror is best effort. The privileged admin nickname is never rewritten
// because it doubles as the admin credential.
func (m *healthMirror) mirror(ctx context.Context, guildID string, p *entities.Player) {
	if m == nil || m.setter == nil || p == nil || p.DisplayName == "" {
		return
	}
	if nickname.IsSystemName(p.DisplayName) {
		return
	}

	updated := nickname.UpdateHealth(p.DisplayName, realHealthLeft(p))
	if updated == p.DisplayName {
		return
	}
	if err := m.setter.SetNickname(ctx, guildID, p.UserID, updated); err != nil {
		log.Printf("Failed to update nickname of %s: %v", p.UserID, err)
		return
	}
	p.DisplayName = updated
}
