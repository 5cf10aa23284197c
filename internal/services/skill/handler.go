package skill

import (
	"context"
	"sort"

	"github.com/KirkDiggler/arena-bot-discord/internal/dice"
	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Roll is one die value travelling through the pipeline
type Roll struct {
	UserID  string
	IsAdmin bool
	Value   int
}

// DamageShare is extra damage redirected to another participant
type DamageShare struct {
	UserID string
	Amount int
	Source entities.SkillName
}

// Scope is what a handler sees while it runs. State is the live channel
// state and may be mutated; it is only valid for the duration of the call.
type Scope struct {
	ChannelID string
	Skill     entities.SkillName
	Instance  *entities.SkillInstance
	State     *entities.ChannelState
	Arena     Arena
	Roller    dice.Roller
	Settings  *Settings
}

func (s *Scope) effects() *entities.SpecialEffects {
	if s.State.SpecialEffects == nil {
		s.State.SpecialEffects = &entities.SpecialEffects{}
	}
	return s.State.SpecialEffects
}

func (s *Scope) participants(ctx context.Context) []*entities.Participant {
	parts, err := s.Arena.Participants(ctx, s.ChannelID)
	if err != nil {
		return nil
	}
	return parts
}

// livingUsers returns non-admin participants still in the fight
func (s *Scope) livingUsers(ctx context.Context) []*entities.Participant {
	var out []*entities.Participant
	for _, p := range s.participants(ctx) {
		if !p.IsAdmin && !p.IsEliminated {
			out = append(out, p)
		}
	}
	return out
}

func (s *Scope) deadUsers(ctx context.Context) []*entities.Participant {
	var out []*entities.Participant
	for _, p := range s.participants(ctx) {
		if !p.IsAdmin && p.IsEliminated {
			out = append(out, p)
		}
	}
	return out
}

func (s *Scope) adminID(ctx context.Context) string {
	for _, p := range s.participants(ctx) {
		if p.IsAdmin {
			return p.UserID
		}
	}
	return ""
}

func (s *Scope) name(ctx context.Context, userID string) string {
	if p, err := s.Arena.UserInfo(ctx, s.ChannelID, userID); err == nil && p != nil {
		return p.Name
	}
	if s.Instance != nil && s.Instance.TargetID == userID && s.Instance.TargetName != "" {
		return s.Instance.TargetName
	}
	return userID
}

// opposes reports whether a roller is an enemy of the caster
func (s *Scope) opposes(roll *Roll) bool {
	if s.Instance == nil {
		return false
	}
	side := s.Instance.CasterSide
	if side == "" {
		side = entities.CasterSideUser
	}
	return side.Opposes(roll.IsAdmin)
}

func (s *Scope) percent() int {
	return dice.Percent(s.Roller)
}

// lowestHealth picks the weakest participant, turn order breaking ties
func lowestHealth(parts []*entities.Participant) *entities.Participant {
	if len(parts) == 0 {
		return nil
	}
	sorted := append([]*entities.Participant{}, parts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Health < sorted[j].Health
	})
	return sorted[0]
}

// Handler is the behaviour of one skill. The set of handlers is closed;
// new skills embed baseHandler and are added to the registry.
type Handler interface {
	Name() entities.SkillName

	// Activate runs once when the skill is cast, after the instance is stored
	Activate(ctx context.Context, s *Scope) ([]string, error)

	// OnDiceRoll transforms a running roll value
	OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string)

	// OnRoundStart runs before any dice of the new round are resolved
	OnRoundStart(ctx context.Context, s *Scope) []string

	// OnSkillEnd runs exactly once when the skill is removed
	OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string

	// ShareDamage redirects damage dealt to victimID.
	// It returns the amount the victim keeps.
	ShareDamage(ctx context.Context, s *Scope, victimID string, amount int) (int, []DamageShare, string)

	// Blocks reports whether userID may not act
	Blocks(s *Scope, userID string) (bool, string)

	// Actions returns the attack exchanges granted to userID, 0 for none
	Actions(s *Scope, userID string) int

	sealed()
}

// baseHandler provides no-op defaults
type baseHandler struct {
	name entities.SkillName
}

func (b baseHandler) Name() entities.SkillName { return b.name }

func (b baseHandler) Activate(ctx context.Context, s *Scope) ([]string, error) {
	return nil, nil
}

func (b baseHandler) OnDiceRoll(ctx context.Context, s *Scope, roll *Roll) (int, string) {
	return roll.Value, ""
}

func (b baseHandler) OnRoundStart(ctx context.Context, s *Scope) []string {
	return nil
}

func (b baseHandler) OnSkillEnd(ctx context.Context, s *Scope, cancelled bool) []string {
	return nil
}

func (b baseHandler) ShareDamage(ctx context.Context, s *Scope, victimID string, amount int) (int, []DamageShare, string) {
	return amount, nil, ""
}

func (b baseHandler) Blocks(s *Scope, userID string) (bool, string) {
	return false, ""
}

func (b baseHandler) Actions(s *Scope, userID string) int {
	return 0
}

func (b baseHandler) sealed() {}

// floorOne keeps penalised rolls from reaching zero
func floorOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// affects reports whether a roll belongs to the skill's target audience
func (s *Scope) affects(roll *Roll) bool {
	if s.Instance == nil {
		return false
	}
	if s.Instance.TargetID == entities.TargetAllUsers {
		return !roll.IsAdmin
	}
	return s.Instance.Targets(roll.UserID)
}

// target returns the explicit target, falling back to the caster
func (s *Scope) target() string {
	if s.Instance.TargetID != "" {
		return s.Instance.TargetID
	}
	return s.Instance.UserID
}

func (s *Scope) setTarget(userID, name string) {
	s.Instance.TargetID = userID
	s.Instance.TargetName = name
}
