package battle

import (
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestHealthBar(t *testing.T) {
	tests := []struct {
		name  string
		left  int
		total int
		want  string
	}{
		{name: "full", left: 10, total: 10, want: "💚💚💚💚💚💚💚💚💚💚"},
		{name: "half", left: 5, total: 10, want: "💛💛💛💛💛🖤🖤🖤🖤🖤"},
		{name: "low", left: 3, total: 10, want: "🧡🧡🧡🖤🖤🖤🖤🖤🖤🖤"},
		{name: "empty", left: 0, total: 10, want: "🖤🖤🖤🖤🖤🖤🖤🖤🖤🖤"},
		{name: "one of thirty rounds up", left: 1, total: 30, want: "🧡🖤🖤🖤🖤🖤🖤🖤🖤🖤"},
		{name: "no pool", left: 0, total: 0, want: "🖤🖤🖤🖤🖤🖤🖤🖤🖤🖤"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, healthBar(tt.left, tt.total))
		})
	}
}

func TestTeamWinner(t *testing.T) {
	b := &entities.Battle{
		IsTeamBattle: true,
		Players: []*entities.Player{
			{UserID: "a1", Team: entities.TeamA, MaxHealth: 10},
			{UserID: "a2", Team: entities.TeamA, MaxHealth: 10, HitsReceived: 10, IsEliminated: true},
			{UserID: "b1", Team: entities.TeamB, MaxHealth: 10, HitsReceived: 10, IsEliminated: true},
		},
	}
	assert.Equal(t, entities.WinnerTeamA, teamWinner(b))

	b.Players[0].IsEliminated = true
	assert.Equal(t, entities.WinnerDraw, teamWinner(b))
}

func TestHealthInfo(t *testing.T) {
	b := &entities.Battle{
		MonsterName: "시스템",
		Players:     []*entities.Player{{Name: "아카시 하지메", MaxHealth: 10, HitsReceived: 3}},
		Admin:       &entities.Player{Name: "시스템", MaxHealth: 20},
	}
	assert.Equal(t, "아카시 하지메: 7/10 | 시스템: 20/20", healthInfo(b))

	team := &entities.Battle{
		IsTeamBattle: true,
		Players: []*entities.Player{
			{Team: entities.TeamA, MaxHealth: 10},
			{Team: entities.TeamB, MaxHealth: 10, IsEliminated: true},
		},
	}
	assert.Equal(t, "팀 A: 1명 생존 | 팀 B: 0명 생존", healthInfo(team))
}

func TestResultBoard(t *testing.T) {
	b := &entities.Battle{
		MonsterName: "시스템",
		Round:       4,
		Players:     []*entities.Player{{Name: "유진석", MaxHealth: 10, HitsReceived: 2, HitsDealt: 10}},
		Admin:       &entities.Player{Name: "시스템", MaxHealth: 10, HitsReceived: 10, IsEliminated: true, HitsDealt: 2},
	}

	board := resultBoard(b, entities.WinnerUsers)
	assert.Equal(t, "🎉 **플레이어 승리!**", board.Description)
	assert.Equal(t, "총 4라운드", board.Footer)
	assert.Len(t, board.Fields, 2)
	assert.Equal(t, "유진석 (8/10)", board.Fields[0].Value)
	assert.Contains(t, board.Fields[1].Value, "시스템: 명중 2 / 피격 10")
}
