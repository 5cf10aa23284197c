package entities

// PendingPhase tags what a PendingDice record is waiting on
type PendingPhase string

const (
	PendingPhaseInit          PendingPhase = "init"
	PendingPhaseUserAttack    PendingPhase = "user_attack"
	PendingPhaseAdminAttack   PendingPhase = "admin_attack"
	PendingPhaseTeamAttack    PendingPhase = "team_attack"
	PendingPhaseFocusedSingle PendingPhase = "focused_single"
	PendingPhaseFocusedEach   PendingPhase = "focused_each"
)

// PendingDice is the set of rolls a battle is blocked on
type PendingDice struct {
	Phase      PendingPhase
	WaitingFor []string
	Rolls      map[string]int

	AttackerID string
	TargetID   string
}

// NewPendingDice waits for one roll from each of ids
func NewPendingDice(phase PendingPhase, ids ...string) *PendingDice {
	waiting := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		waiting = append(waiting, id)
	}
	return &PendingDice{
		Phase:      phase,
		WaitingFor: waiting,
		Rolls:      make(map[string]int, len(waiting)),
	}
}

// Awaits reports whether a roll from userID is still owed
func (p *PendingDice) Awaits(userID string) bool {
	for _, id := range p.WaitingFor {
		if id == userID {
			return true
		}
	}
	return false
}

// Record stores a roll and removes the roller from the waiting set.
// It returns false when the roller is not awaited.
func (p *PendingDice) Record(userID string, value int) bool {
	for i, id := range p.WaitingFor {
		if id == userID {
			p.WaitingFor = append(p.WaitingFor[:i], p.WaitingFor[i+1:]...)
			p.Rolls[userID] = value
			return true
		}
	}
	return false
}

// Drop stops waiting for userID without recording a roll
func (p *PendingDice) Drop(userID string) bool {
	for i, id := range p.WaitingFor {
		if id == userID {
			p.WaitingFor = append(p.WaitingFor[:i], p.WaitingFor[i+1:]...)
			return true
		}
	}
	return false
}

// Done reports whether every awaited roll has arrived
func (p *PendingDice) Done() bool {
	return len(p.WaitingFor) == 0
}
