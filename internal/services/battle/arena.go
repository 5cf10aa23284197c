package battle

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battles"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

// arena is the participant surface handed to skill handlers. Every call
// arrives from a skill hook the engine runs under the channel lock, while
// the skill layer holds its own lock too. Nickname writes are queued and
// run by Flush once the skill layer lets go.
type arena struct {
	battles  battles.Repository
	notifier Notifier
	mirror   *healthMirror

	mu     sync.Mutex
	queued map[string][]mirrorRequest
}

type mirrorRequest struct {
	guildID string
	player  *entities.Player
}

// ArenaConfig holds configuration for the arena
type ArenaConfig struct {
	Battles   battles.Repository
	Notifier  Notifier
	Nicknames NicknameSetter
}

// NewArena creates the skill-facing view of the battles in cfg.Battles
func NewArena(cfg *ArenaConfig) skill.Arena {
	if cfg.Battles == nil {
		panic("battle repository is required")
	}
	return &arena{
		battles:  cfg.Battles,
		notifier: cfg.Notifier,
		mirror:   &healthMirror{setter: cfg.Nicknames},
		queued:   make(map[string][]mirrorRequest),
	}
}

// queue remembers that p's nickname needs the current health
func (a *arena) queue(b *entities.Battle, p *entities.Player) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.queued[b.ChannelID] {
		if r.player == p {
			return
		}
	}
	a.queued[b.ChannelID] = append(a.queued[b.ChannelID], mirrorRequest{guildID: b.GuildID, player: p})
}

// Flush writes the queued nicknames of a channel
func (a *arena) Flush(ctx context.Context, channelID string) {
	a.mu.Lock()
	requests := a.queued[channelID]
	delete(a.queued, channelID)
	a.mu.Unlock()

	for _, r := range requests {
		a.mirror.mirror(ctx, r.guildID, r.player)
	}
}

func (a *arena) live(ctx context.Context, channelID string) (*entities.Battle, error) {
	b, err := a.battles.Get(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if b.Phase == entities.BattlePhaseFinished {
		return nil, apperr.NotFoundf("battle in %s has finished", channelID)
	}
	return b, nil
}

func (a *arena) player(ctx context.Context, channelID, userID string) (*entities.Battle, *entities.Player, error) {
	b, err := a.live(ctx, channelID)
	if err != nil {
		return nil, nil, err
	}
	p := b.Find(userID)
	if p == nil {
		return nil, nil, apperr.NotFoundf("%s is not in the battle", userID)
	}
	return b, p, nil
}

// IsBattleActive reports whether skills may be cast in the channel
func (a *arena) IsBattleActive(ctx context.Context, channelID string) bool {
	b, err := a.live(ctx, channelID)
	if err != nil {
		return false
	}
	return b.Phase == entities.BattlePhaseInitRoll || b.Phase == entities.BattlePhaseCombat
}

// Participants lists players in turn order followed by the admin
func (a *arena) Participants(ctx context.Context, channelID string) ([]*entities.Participant, error) {
	b, err := a.live(ctx, channelID)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Participant, 0, len(b.Players)+1)
	for i, p := range b.Players {
		out = append(out, entities.ParticipantFrom(p, false, i))
	}
	if b.Admin != nil {
		out = append(out, entities.ParticipantFrom(b.Admin, true, len(b.Players)))
	}
	return out, nil
}

func (a *arena) UserInfo(ctx context.Context, channelID, userID string) (*entities.Participant, error) {
	b, p, err := a.player(ctx, channelID, userID)
	if err != nil {
		return nil, err
	}
	order := len(b.Players)
	for i, candidate := range b.Players {
		if candidate == p {
			order = i
		}
	}
	return entities.ParticipantFrom(p, b.IsAdmin(userID), order), nil
}

// DamageUser applies narrative damage as battle hits and returns the hits taken
func (a *arena) DamageUser(ctx context.Context, channelID, userID string, amount int) (int, error) {
	b, p, err := a.player(ctx, channelID, userID)
	if err != nil {
		return 0, err
	}
	applied := p.TakeHits(nickname.HitsFromDamage(amount))
	if applied > 0 {
		a.queue(b, p)
	}
	return applied, nil
}

func (a *arena) HealUser(ctx context.Context, channelID, userID string, amount int) (int, error) {
	b, p, err := a.player(ctx, channelID, userID)
	if err != nil {
		return 0, err
	}
	healed := p.Heal(nickname.HitsFromDamage(amount))
	if healed > 0 {
		a.queue(b, p)
	}
	return healed, nil
}

func (a *arena) KillUser(ctx context.Context, channelID, userID string) error {
	b, p, err := a.player(ctx, channelID, userID)
	if err != nil {
		return err
	}
	if p.IsEliminated {
		return nil
	}
	p.Kill()
	a.queue(b, p)
	return nil
}

// ReviveUser brings a fallen player back with narrative health converted to battle health
func (a *arena) ReviveUser(ctx context.Context, channelID, userID string, health int) error {
	b, p, err := a.player(ctx, channelID, userID)
	if err != nil {
		return err
	}
	if !p.Revive(nickname.BattleHealth(health)) {
		return apperr.InvalidArgumentf("%s is still standing", p.Name)
	}
	a.queue(b, p)
	return nil
}

func (a *arena) SendBattleMessage(ctx context.Context, channelID, text string) error {
	if a.notifier == nil {
		return apperr.Unavailable("no chat surface configured")
	}
	return a.notifier.Send(ctx, channelID, text)
}
