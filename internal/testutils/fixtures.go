package testutils

import (
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// CreateTestPlayer creates a player with full battle health
func CreateTestPlayer(id, name string, maxHealth int) *entities.Player {
	return &entities.Player{
		UserID:      id,
		Name:        name,
		DisplayName: name,
		MaxHealth:   maxHealth,
		RealHealth:  maxHealth * 10,
	}
}

// CreateTestBattle creates an admin battle already in combat with players
// in the given turn order
func CreateTestBattle(channelID string, admin *entities.Player, players ...*entities.Player) *entities.Battle {
	now := time.Now()
	return &entities.Battle{
		ID:           "battle-" + channelID,
		ChannelID:    channelID,
		Phase:        entities.BattlePhaseCombat,
		TurnPhase:    entities.TurnPhaseUserAttack,
		Round:        1,
		Players:      players,
		Admin:        admin,
		MonsterName:  admin.Name,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// CreateTestTeamBattle creates a team battle in combat. Players are
// assigned to teams by their Team field.
func CreateTestTeamBattle(channelID string, players ...*entities.Player) *entities.Battle {
	battle := &entities.Battle{
		ID:           "battle-" + channelID,
		ChannelID:    channelID,
		Phase:        entities.BattlePhaseCombat,
		TurnPhase:    entities.TurnPhaseTeamAttack,
		Round:        1,
		Players:      players,
		IsTeamBattle: true,
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
	}
	for _, p := range players {
		switch p.Team {
		case entities.TeamA:
			battle.TeamA = append(battle.TeamA, p.UserID)
		case entities.TeamB:
			battle.TeamB = append(battle.TeamB, p.UserID)
		}
	}
	return battle
}

// CreateTestSkill creates an active skill instance
func CreateTestSkill(casterID, targetID string, rounds int, side entities.CasterSide) *entities.SkillInstance {
	return &entities.SkillInstance{
		UserID:       casterID,
		UserName:     casterID,
		TargetID:     targetID,
		TargetName:   targetID,
		RoundsLeft:   rounds,
		Duration:     rounds,
		StartedRound: 1,
		CasterSide:   side,
	}
}
