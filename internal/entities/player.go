package entities

// Player is a battle participant
type Player struct {
	UserID string
	// Name is the real name recovered from the known-names table
	Name string
	// DisplayName is the raw server nickname at battle start
	DisplayName string

	HitsReceived int
	HitsDealt    int
	MaxHealth    int
	// RealHealth is the narrative health mirrored into the nickname
	RealHealth int

	IsEliminated bool
	InitRoll     int
	Team         Team

	CurrentTarget string
}

// RemainingHealth returns battle health left, never negative
func (p *Player) RemainingHealth() int {
	left := p.MaxHealth - p.HitsReceived
	if left < 0 {
		return 0
	}
	return left
}

// TakeHits records hits against the player and returns how many were applied
func (p *Player) TakeHits(hits int) int {
	if hits <= 0 || p.IsEliminated {
		return 0
	}
	p.HitsReceived += hits
	p.refreshElimination()
	return hits
}

// Heal removes received hits, floored at zero
func (p *Player) Heal(hits int) int {
	if hits <= 0 || p.IsEliminated {
		return 0
	}
	if hits > p.HitsReceived {
		hits = p.HitsReceived
	}
	p.HitsReceived -= hits
	return hits
}

// Kill eliminates the player immediately
func (p *Player) Kill() {
	p.HitsReceived = p.MaxHealth
	p.refreshElimination()
}

// Revive brings an eliminated player back with the given battle health
func (p *Player) Revive(health int) bool {
	if !p.IsEliminated {
		return false
	}
	if health < 1 {
		health = 1
	}
	if health > p.MaxHealth {
		health = p.MaxHealth
	}
	p.HitsReceived = p.MaxHealth - health
	p.refreshElimination()
	return true
}

// RaiseMaxHealth grows the battle health pool
func (p *Player) RaiseMaxHealth(delta int) {
	if delta <= 0 {
		return
	}
	p.MaxHealth += delta
	p.refreshElimination()
}

// Surrender marks the player out of the fight
func (p *Player) Surrender() {
	if p.HitsReceived < p.MaxHealth {
		p.HitsReceived = p.MaxHealth
	}
	p.refreshElimination()
}

func (p *Player) refreshElimination() {
	p.IsEliminated = p.HitsReceived >= p.MaxHealth
}
