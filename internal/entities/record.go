package entities

import "time"

// Winner values stored in battle history
const (
	WinnerUsers   = "users"
	WinnerAdmin   = "admin"
	WinnerTeamA   = "team_a"
	WinnerTeamB   = "team_b"
	WinnerDraw    = "draw"
	WinnerTimeout = "timeout"
)

// ParticipantStat is one line of the end-of-battle summary
type ParticipantStat struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	HitsDealt    int    `json:"hits_dealt"`
	HitsReceived int    `json:"hits_received"`
	Survived     bool   `json:"survived"`
}

// BattleRecord is a finished battle kept in the history ring
type BattleRecord struct {
	ID           string             `json:"id"`
	ChannelID    string             `json:"channel_id"`
	MonsterName  string             `json:"monster_name"`
	Winner       string             `json:"winner"`
	Rounds       int                `json:"rounds"`
	IsTeamBattle bool               `json:"is_team_battle"`
	Participants []*ParticipantStat `json:"participants"`
	SkillsUsed   []SkillName        `json:"skills_used,omitempty"`
	EndedAt      time.Time          `json:"ended_at"`
}

// Statistics summarises the history ring
type Statistics struct {
	TotalBattles   int
	AverageRounds  float64
	UserWinRate    float64
	AdminWinRate   float64
	TeamBattleRate float64
	MostUsedSkill  SkillName
	MostUsedCount  int
}
