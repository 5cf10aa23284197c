package battle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

const (
	colorRed    = 0xff0000
	colorGreen  = 0x00ff00
	colorBlue   = 0x0099ff
	colorOrange = 0xffa500
	colorGold   = 0xffd700

	healthBarCells = 10
)

// postBoard edits the battle's status message, posting a new one when
// there is none yet or the old one was deleted.
func (s *service) postBoard(ctx context.Context, b *entities.Battle, board *entities.Board) {
	if b.StatusMessageID != "" {
		err := s.notifier.EditBoard(ctx, b.ChannelID, b.StatusMessageID, board)
		if err == nil {
			return
		}
		if !apperr.IsNotFound(err) {
			log.Printf("Failed to edit board of battle %s: %v", b.ID, err)
			return
		}
	}

	id, err := s.notifier.SendBoard(ctx, b.ChannelID, board)
	if err != nil {
		log.Printf("Failed to send board of battle %s: %v", b.ID, err)
		return
	}
	b.StatusMessageID = id
}

func (s *service) refreshStatus(ctx context.Context, b *entities.Battle) {
	s.postBoard(ctx, b, statusBoard(b, s.skills.ActiveSkills(ctx, b.ChannelID)))
}

// Status renders the current board of a channel
func (s *service) Status(ctx context.Context, channelID string) (*entities.Board, error) {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if b.Phase == entities.BattlePhaseWaiting {
		return challengeBoard(b), nil
	}
	return statusBoard(b, s.skills.ActiveSkills(ctx, channelID)), nil
}

func battleName(b *entities.Battle) string {
	if b.IsTeamBattle {
		return fmt.Sprintf("팀 전투 (%d vs %d)", len(b.TeamA), len(b.TeamB))
	}
	names := make([]string, len(b.Players))
	for i, p := range b.Players {
		names[i] = p.Name
	}
	return fmt.Sprintf("%s vs %s", b.MonsterName, strings.Join(names, ", "))
}

func challengeBoard(b *entities.Battle) *entities.Board {
	board := &entities.Board{
		Color:      colorRed,
		SyncChoice: true,
		Footer:     "체력 동기화 여부를 선택하면 선공 다이스를 굴립니다.",
	}
	if b.IsTeamBattle {
		board.Title = "⚔️ 팀 전투 준비"
		board.Description = battleName(b)
		board.AddField("팀 A", teamRoster(b, entities.TeamA), true)
		board.AddField("팀 B", teamRoster(b, entities.TeamB), true)
		return board
	}

	board.Title = "⚔️ 전투 도전!"
	board.Description = fmt.Sprintf("**%s**이(가) 전투를 신청했습니다!", b.MonsterName)
	lines := make([]string, len(b.Players))
	for i, p := range b.Players {
		lines[i] = fmt.Sprintf("• %s (체력 %d)", p.Name, p.MaxHealth)
	}
	board.AddField("상대", joinLines(lines), false)
	board.AddField(b.MonsterName, fmt.Sprintf("체력 %d", b.Admin.MaxHealth), false)
	return board
}

func teamRoster(b *entities.Battle, team entities.Team) string {
	var lines []string
	for _, p := range b.TeamMembers(team) {
		lines = append(lines, fmt.Sprintf("• %s (체력 %d)", p.Name, p.MaxHealth))
	}
	return joinLines(lines)
}

func initiativeBoard(b *entities.Battle) *entities.Board {
	board := &entities.Board{
		Title:       "⚔️ 전투 시작!",
		Description: "모든 참가자는 선공 결정을 위해 주사위를 굴려주세요!",
		Color:       colorGreen,
	}

	lines := make([]string, 0, len(b.Players)+1)
	for _, p := range b.Participants() {
		lines = append(lines, fmt.Sprintf("%s: %d", p.Name, p.MaxHealth))
	}
	board.AddField("전투 체력", joinLines(lines), false)
	if b.HealthSync {
		board.AddField("체력 동기화", "✅ 닉네임 체력이 전투 체력에 반영됩니다", false)
	}
	return board
}

func statusBoard(b *entities.Battle, active []*skill.ActiveSkill) *entities.Board {
	board := &entities.Board{
		Title:       fmt.Sprintf("⚔️ %s - 라운드 %d", battleName(b), b.Round),
		Description: turnLine(b),
		Color:       colorBlue,
	}

	if b.IsTeamBattle {
		board.AddField("팀 A", teamHealth(b, entities.TeamA), true)
		board.AddField("팀 B", teamHealth(b, entities.TeamB), true)
	} else {
		if b.Admin != nil {
			board.AddField(b.MonsterName, healthLine(b.Admin), false)
		}
		for _, p := range b.Players {
			board.AddField(p.Name, healthLine(p), true)
		}
	}

	if len(active) > 0 {
		lines := make([]string, len(active))
		for i, a := range active {
			lines[i] = activeLine(a)
		}
		board.AddField("🔮 활성 스킬", joinLines(lines), false)
	}
	return board
}

func turnLine(b *entities.Battle) string {
	switch {
	case b.Phase == entities.BattlePhaseInitRoll:
		return "🎲 선공 결정 중"
	case b.Focused != nil:
		return fmt.Sprintf("🎯 %s의 집중 공격", b.MonsterName)
	case b.TurnPhase == entities.TurnPhaseAdminAttack:
		return fmt.Sprintf("🗡️ %s의 반격", b.MonsterName)
	}
	if p := b.CurrentPlayer(); p != nil {
		return fmt.Sprintf("🗡️ %s의 턴", p.Name)
	}
	return ""
}

func activeLine(a *skill.ActiveSkill) string {
	line := fmt.Sprintf("%s **%s** - %s", a.Emoji, a.Name, a.Instance.UserName)
	if a.Instance.TargetName != "" && a.Instance.TargetID != a.Instance.UserID {
		line += " → " + a.Instance.TargetName
	}
	return line + fmt.Sprintf(" (%d라운드 남음)", a.Instance.RoundsLeft)
}

func healthLine(p *entities.Player) string {
	if p.IsEliminated {
		return "💀 탈락"
	}
	return fmt.Sprintf("%s %d/%d", healthBar(p.RemainingHealth(), p.MaxHealth), p.RemainingHealth(), p.MaxHealth)
}

func teamHealth(b *entities.Battle, team entities.Team) string {
	var lines []string
	for _, p := range b.TeamMembers(team) {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Name, healthLine(p)))
	}
	return joinLines(lines)
}

// healthBar draws left out of total as ten cells, colored by how much is left
func healthBar(left, total int) string {
	if total <= 0 {
		return strings.Repeat("🖤", healthBarCells)
	}
	if left < 0 {
		left = 0
	}
	filled := (left*healthBarCells + total - 1) / total
	if filled > healthBarCells {
		filled = healthBarCells
	}

	cell := "💚"
	switch ratio := float64(left) / float64(total); {
	case ratio <= 0:
		cell = "💔"
	case ratio <= 0.3:
		cell = "🧡"
	case ratio <= 0.6:
		cell = "💛"
	}
	return strings.Repeat(cell, filled) + strings.Repeat("🖤", healthBarCells-filled)
}

// healthInfo is the one-line health summary used in turn prompts
func healthInfo(b *entities.Battle) string {
	if b.IsTeamBattle {
		return fmt.Sprintf("팀 A: %d명 생존 | 팀 B: %d명 생존",
			b.LivingTeamMembers(entities.TeamA), b.LivingTeamMembers(entities.TeamB))
	}
	parts := make([]string, 0, len(b.Players)+1)
	for _, p := range b.Participants() {
		parts = append(parts, fmt.Sprintf("%s: %d/%d", p.Name, p.RemainingHealth(), p.MaxHealth))
	}
	return strings.Join(parts, " | ")
}

func resultBoard(b *entities.Battle, winner string) *entities.Board {
	board := &entities.Board{
		Title:  "⚔️ 전투 종료!",
		Color:  colorGold,
		Footer: fmt.Sprintf("총 %d라운드", b.Round),
	}
	switch winner {
	case entities.WinnerUsers:
		board.Description = "🎉 **플레이어 승리!**"
	case entities.WinnerAdmin:
		board.Description = fmt.Sprintf("👹 **%s 승리!**", b.MonsterName)
	case entities.WinnerTeamA:
		board.Description = "🎉 **팀 A 승리!**"
	case entities.WinnerTeamB:
		board.Description = "🎉 **팀 B 승리!**"
	default:
		board.Description = "🤝 **무승부**"
	}

	var survivors []string
	stats := make([]string, 0, len(b.Players)+1)
	for _, p := range b.Participants() {
		if !p.IsEliminated {
			survivors = append(survivors, fmt.Sprintf("%s (%d/%d)", p.Name, p.RemainingHealth(), p.MaxHealth))
		}
		stats = append(stats, fmt.Sprintf("%s: 명중 %d / 피격 %d", p.Name, p.HitsDealt, p.HitsReceived))
	}
	if len(survivors) > 0 {
		board.AddField("생존자", joinLines(survivors), false)
	}
	board.AddField("전투 기록", joinLines(stats), false)
	return board
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return "-"
	}
	return strings.Join(lines, "\n")
}
