package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

const genericFailure = "❌ 명령을 처리하는 중 오류가 발생했습니다."

// errorReply turns a service error into the chat line shown to the actor.
// Only coded errors carry a message meant for players.
func errorReply(err error) string {
	if message, ok := apperr.PlayerMessage(err); ok {
		return "❌ " + message
	}
	if apperr.IsUnavailable(err) {
		return "⏳ 잠시 후 다시 시도해주세요."
	}
	return genericFailure
}

// reply posts to the channel, logging failures
func reply(s Session, channelID, text string) {
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		log.Printf("Failed to reply in %s: %v", channelID, err)
	}
}

func winnerLabel(r *entities.BattleRecord) string {
	switch r.Winner {
	case entities.WinnerUsers:
		return "플레이어 승리"
	case entities.WinnerAdmin:
		return r.MonsterName + " 승리"
	case entities.WinnerTeamA:
		return "팀 A 승리"
	case entities.WinnerTeamB:
		return "팀 B 승리"
	case entities.WinnerTimeout:
		return "시간 만료"
	}
	return "무승부"
}

func statisticsBoard(stats *entities.Statistics) *entities.Board {
	board := &entities.Board{
		Title: "📊 전투 통계",
		Color: 0x9b59b6,
	}
	if stats.TotalBattles == 0 {
		board.Description = "아직 기록된 전투가 없습니다."
		return board
	}

	board.AddField("총 전투", fmt.Sprintf("%d회", stats.TotalBattles), true)
	board.AddField("평균 라운드", fmt.Sprintf("%.1f", stats.AverageRounds), true)
	board.AddField("팀 전투 비율", fmt.Sprintf("%.1f%%", stats.TeamBattleRate), true)
	board.AddField("플레이어 승률", fmt.Sprintf("%.1f%%", stats.UserWinRate), true)
	board.AddField("Admin 승률", fmt.Sprintf("%.1f%%", stats.AdminWinRate), true)
	if stats.MostUsedSkill != "" {
		board.AddField("가장 많이 쓰인 스킬",
			fmt.Sprintf("%s %s (%d회)", skill.Emoji(stats.MostUsedSkill), stats.MostUsedSkill, stats.MostUsedCount), true)
	}
	return board
}

func historyText(records []*entities.BattleRecord) string {
	if len(records) == 0 {
		return "아직 기록된 전투가 없습니다."
	}
	lines := []string{"📜 **최근 전투 기록**"}
	for _, r := range records {
		name := r.MonsterName
		if r.IsTeamBattle {
			name = "팀 전투"
		}
		lines = append(lines, fmt.Sprintf("`%s` %s - %s (%d라운드)",
			r.EndedAt.Format("01/02 15:04"), name, winnerLabel(r), r.Rounds))
	}
	return strings.Join(lines, "\n")
}

func skillListText(names []entities.SkillName) string {
	if len(names) == 0 {
		return "사용할 수 있는 스킬이 없습니다."
	}
	lines := []string{"🔮 **사용 가능한 스킬**"}
	for _, name := range names {
		info, ok := skill.Lookup(name)
		if !ok {
			lines = append(lines, string(name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s **%s** - %s", info.Emoji, info.Name, info.Description))
	}
	return strings.Join(lines, "\n")
}
