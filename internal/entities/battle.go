package entities

import (
	"fmt"
	"time"
)

// BattlePhase is the lifecycle of a battle. Phases only move forward one step at a time.
type BattlePhase string

const (
	BattlePhaseWaiting  BattlePhase = "waiting"
	BattlePhaseInitRoll BattlePhase = "init_roll"
	BattlePhaseCombat   BattlePhase = "combat"
	BattlePhaseFinished BattlePhase = "finished"
)

var phaseOrder = map[BattlePhase]int{
	BattlePhaseWaiting:  0,
	BattlePhaseInitRoll: 1,
	BattlePhaseCombat:   2,
	BattlePhaseFinished: 3,
}

// TurnPhase is the sub-cycle inside BattlePhaseCombat
type TurnPhase string

const (
	TurnPhaseUserAttack  TurnPhase = "user_attack"
	TurnPhaseAdminAttack TurnPhase = "admin_attack"
	TurnPhaseTeamAttack  TurnPhase = "team_attack"
)

// Team tags a player in a team battle
type Team string

const (
	TeamNone Team = ""
	TeamA    Team = "A"
	TeamB    Team = "B"
)

// Opponent returns the other team
func (t Team) Opponent() Team {
	switch t {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	default:
		return TeamNone
	}
}

// FocusMode selects how a focused attack is resolved
type FocusMode string

const (
	// FocusModeSingle resolves all hits with one roll pair
	FocusModeSingle FocusMode = "single"
	// FocusModeEach resolves every hit as its own exchange
	FocusModeEach FocusMode = "each"
)

// FocusedAttack tracks an admin committing several hits to one player
type FocusedAttack struct {
	TargetID  string
	Total     int
	Mode      FocusMode
	Completed int
	Hits      int
	FollowUp  bool
}

// Remaining returns exchanges left in each mode
func (f *FocusedAttack) Remaining() int {
	if f.Total-f.Completed < 0 {
		return 0
	}
	return f.Total - f.Completed
}

// Battle is the single live battle of a channel
type Battle struct {
	ID        string
	ChannelID string
	GuildID   string
	CreatedBy string

	Phase     BattlePhase
	TurnPhase TurnPhase
	Round     int
	TurnIndex int

	// Players is the turn order. It is fixed when initiative resolves.
	Players []*Player
	// Admin is nil for team battles
	Admin       *Player
	MonsterName string

	IsTeamBattle bool
	TeamA        []string
	TeamB        []string

	HealthSync bool
	// AdminHealthSet keeps an explicitly given admin health when syncing
	AdminHealthSet bool

	Pending *PendingDice
	Focused *FocusedAttack

	// ActionsLeft counts extra attack exchanges granted to the current actor
	ActionsLeft int
	// AdminAttacksLeft counts repeated all-attacks in the current admin phase
	AdminAttacksLeft int

	// TargetWait identifies the current target-designation timer
	TargetWait string

	StatusMessageID string
	CreatedAt       time.Time
	LastActivity    time.Time
}

// AdvancePhase moves the battle one step forward
func (b *Battle) AdvancePhase(next BattlePhase) error {
	current, ok := phaseOrder[b.Phase]
	if !ok {
		return fmt.Errorf("unknown battle phase %q", b.Phase)
	}
	target, ok := phaseOrder[next]
	if !ok {
		return fmt.Errorf("unknown battle phase %q", next)
	}
	if target != current+1 {
		return fmt.Errorf("cannot move battle from %s to %s", b.Phase, next)
	}
	b.Phase = next
	return nil
}

// IsBlocked reports whether the battle is awaiting rolls
func (b *Battle) IsBlocked() bool {
	return b.Pending != nil
}

// Participants returns the players followed by the admin, if any
func (b *Battle) Participants() []*Player {
	out := make([]*Player, 0, len(b.Players)+1)
	out = append(out, b.Players...)
	if b.Admin != nil {
		out = append(out, b.Admin)
	}
	return out
}

// Find looks up any participant by user id, admin included
func (b *Battle) Find(userID string) *Player {
	if b.Admin != nil && b.Admin.UserID == userID {
		return b.Admin
	}
	for _, p := range b.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// IsAdmin reports whether userID is the admin of this battle
func (b *Battle) IsAdmin(userID string) bool {
	return b.Admin != nil && b.Admin.UserID == userID
}

// LivingPlayers returns non-admin players still in the fight, in turn order
func (b *Battle) LivingPlayers() []*Player {
	out := make([]*Player, 0, len(b.Players))
	for _, p := range b.Players {
		if !p.IsEliminated {
			out = append(out, p)
		}
	}
	return out
}

// TeamMembers returns the players of a team in turn order
func (b *Battle) TeamMembers(team Team) []*Player {
	out := make([]*Player, 0, len(b.Players))
	for _, p := range b.Players {
		if p.Team == team {
			out = append(out, p)
		}
	}
	return out
}

// LivingTeamMembers counts the non-eliminated players of a team
func (b *Battle) LivingTeamMembers(team Team) int {
	count := 0
	for _, p := range b.Players {
		if p.Team == team && !p.IsEliminated {
			count++
		}
	}
	return count
}

// CurrentPlayer returns the player at the turn index, or nil when exhausted
func (b *Battle) CurrentPlayer() *Player {
	if b.TurnIndex < 0 || b.TurnIndex >= len(b.Players) {
		return nil
	}
	return b.Players[b.TurnIndex]
}

// Touch records activity for the idle sweeper
func (b *Battle) Touch(now time.Time) {
	b.LastActivity = now
}
