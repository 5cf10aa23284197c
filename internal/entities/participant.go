package entities

// Participant is the read-only view of a battle participant handed to skills
type Participant struct {
	UserID       string
	Name         string
	IsAdmin      bool
	Team         Team
	Order        int
	Health       int
	MaxHealth    int
	HitsReceived int
	RealHealth   int
	IsEliminated bool
}

// ParticipantFrom builds the view of p
func ParticipantFrom(p *Player, isAdmin bool, order int) *Participant {
	return &Participant{
		UserID:       p.UserID,
		Name:         p.Name,
		IsAdmin:      isAdmin,
		Team:         p.Team,
		Order:        order,
		Health:       p.RemainingHealth(),
		MaxHealth:    p.MaxHealth,
		HitsReceived: p.HitsReceived,
		RealHealth:   p.RealHealth,
		IsEliminated: p.IsEliminated,
	}
}
