package battle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

// endBattle decides an admin battle: the users win once the admin is down
func (s *service) endBattle(ctx context.Context, b *entities.Battle) {
	winner := entities.WinnerAdmin
	if b.Admin == nil || b.Admin.IsEliminated {
		winner = entities.WinnerUsers
	}
	s.finish(ctx, b, winner, true, resultBoard(b, winner))
}

// endTeamBattle decides a team battle. A team wins only while the other is wiped out.
func (s *service) endTeamBattle(ctx context.Context, b *entities.Battle) {
	winner := teamWinner(b)
	s.finish(ctx, b, winner, true, resultBoard(b, winner))
}

func teamWinner(b *entities.Battle) string {
	aliveA := b.LivingTeamMembers(entities.TeamA)
	aliveB := b.LivingTeamMembers(entities.TeamB)
	switch {
	case aliveA > 0 && aliveB == 0:
		return entities.WinnerTeamA
	case aliveB > 0 && aliveA == 0:
		return entities.WinnerTeamB
	default:
		return entities.WinnerDraw
	}
}

// finish is the terminal step of every battle: the skills of the channel
// are dropped, the result is logged and the battle leaves the active set.
func (s *service) finish(ctx context.Context, b *entities.Battle, winner string, record bool, board *entities.Board) {
	if b.Phase == entities.BattlePhaseFinished {
		return
	}
	// aborted battles jump straight to the terminal phase
	if err := b.AdvancePhase(entities.BattlePhaseFinished); err != nil {
		b.Phase = entities.BattlePhaseFinished
	}
	b.Pending = nil
	b.TargetWait = ""

	used := s.skills.EndBattle(ctx, b.ChannelID)

	if record {
		if err := s.history.Append(ctx, s.record(b, winner, used)); err != nil {
			log.Printf("Failed to record battle %s: %v", b.ID, err)
		}
	}
	if board != nil {
		if _, err := s.notifier.SendBoard(ctx, b.ChannelID, board); err != nil {
			log.Printf("Failed to send result of battle %s: %v", b.ID, err)
		}
	}
	if err := s.battles.Delete(ctx, b.ChannelID); err != nil && !apperr.IsNotFound(err) {
		log.Printf("Failed to remove battle %s: %v", b.ID, err)
	}
	log.Printf("Battle %s in %s finished: %s after %d rounds", b.ID, b.ChannelID, winner, b.Round)
}

func (s *service) record(b *entities.Battle, winner string, used []entities.SkillName) *entities.BattleRecord {
	rec := &entities.BattleRecord{
		ID:           b.ID,
		ChannelID:    b.ChannelID,
		MonsterName:  b.MonsterName,
		Winner:       winner,
		Rounds:       b.Round,
		IsTeamBattle: b.IsTeamBattle,
		SkillsUsed:   used,
		EndedAt:      s.clock.Now(),
	}
	for _, p := range b.Participants() {
		rec.Participants = append(rec.Participants, &entities.ParticipantStat{
			UserID:       p.UserID,
			Name:         p.Name,
			HitsDealt:    p.HitsDealt,
			HitsReceived: p.HitsReceived,
			Survived:     !p.IsEliminated,
		})
	}
	return rec
}

// ForceEnd stops a battle without recording a result
func (s *service) ForceEnd(ctx context.Context, channelID, requesterID, requesterName string) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}
	if b.CreatedBy != requesterID && !s.skills.IsAdmin(requesterID, requesterName) {
		return apperr.PermissionDenied("전투 종료는 Admin만 가능합니다")
	}

	s.finish(ctx, b, entities.WinnerDraw, false, &entities.Board{
		Title:       "⚔️ 전투 강제 종료",
		Description: "Admin에 의해 전투가 강제로 종료되었습니다.",
		Color:       colorOrange,
	})
	return nil
}

// SweepIdle ends battles without dice activity for the idle timeout
func (s *service) SweepIdle(ctx context.Context) int {
	list, err := s.battles.List(ctx)
	if err != nil {
		log.Printf("Failed to list battles for sweep: %v", err)
		return 0
	}

	swept := 0
	for _, candidate := range list {
		if s.sweep(ctx, candidate.ChannelID) {
			swept++
		}
	}
	return swept
}

func (s *service) sweep(ctx context.Context, channelID string) bool {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return false
	}
	if s.clock.Now().Sub(b.LastActivity) < s.idleTimeout {
		return false
	}

	s.finish(ctx, b, entities.WinnerTimeout, true, &entities.Board{
		Title:       "⏰ 전투 시간 만료",
		Description: "전투가 시간 초과로 자동 종료되었습니다.",
		Color:       colorOrange,
	})
	return true
}

// RunSweeper calls SweepIdle on interval until ctx is done
func (s *service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.SweepIdle(ctx); n > 0 {
				log.Printf("Swept %d idle battles", n)
			}
		}
	}
}

// History returns recent finished battles, newest first
func (s *service) History(ctx context.Context, limit int) ([]*entities.BattleRecord, error) {
	if limit < 0 {
		return nil, apperr.InvalidArgument("limit cannot be negative")
	}
	records, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load battle history: %w", err)
	}
	return records, nil
}

// Statistics summarises the battle history
func (s *service) Statistics(ctx context.Context) (*entities.Statistics, error) {
	records, err := s.history.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load battle history: %w", err)
	}
	return summarize(records), nil
}

func summarize(records []*entities.BattleRecord) *entities.Statistics {
	stats := &entities.Statistics{TotalBattles: len(records)}
	if len(records) == 0 {
		return stats
	}

	rounds, userWins, adminWins, teams := 0, 0, 0, 0
	counts := make(map[entities.SkillName]int)
	for _, rec := range records {
		rounds += rec.Rounds
		switch rec.Winner {
		case entities.WinnerUsers:
			userWins++
		case entities.WinnerAdmin:
			adminWins++
		}
		if rec.IsTeamBattle {
			teams++
		}
		for _, name := range rec.SkillsUsed {
			counts[name]++
		}
	}

	total := float64(len(records))
	stats.AverageRounds = float64(rounds) / total
	stats.UserWinRate = float64(userWins) / total * 100
	stats.AdminWinRate = float64(adminWins) / total * 100
	stats.TeamBattleRate = float64(teams) / total * 100
	stats.MostUsedSkill, stats.MostUsedCount = skill.MostUsed(counts)
	return stats
}
