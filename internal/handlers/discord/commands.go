package discord

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

// Prefix commands
const (
	cmdBattle    = "!전투"
	cmdSkipTurn  = "!턴넘김"
	cmdTarget    = "!타격"
	cmdFocused   = "!집중공격"
	cmdSurrender = "!항복"
	cmdStatus    = "!전투상태"
	cmdStats     = "!전투통계"
	cmdHistory   = "!전투기록"
	cmdForceEnd  = "!전투종료"

	teamSeparator = "vs"
)

const (
	battleUsage  = "사용법: `!전투 @유저1 [@유저2 ...] [체력1 체력2 ...] [이름]`"
	teamUsage    = "팀 전투 형식: `!전투 @유저1 @유저2 vs @유저3 @유저4 [체력1 체력2 ...]`"
	focusedUsage = "사용법: `!집중공격 @대상 횟수 [단일/각각] [추가공격]`"
	targetUsage  = "사용법: `!타격 @대상`"
)

// splitArgs breaks a command on whitespace and commas
func splitArgs(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// parseMention returns the user id of a <@id> or <@!id> token
func parseMention(token string) (string, bool) {
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	id := strings.TrimPrefix(token[2:len(token)-1], "!")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

func parseHealth(token string) (int, bool) {
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return v, true
}

// battleArgs is a parsed !전투 command
type battleArgs struct {
	Players     []string
	Health      []int
	MonsterName string
}

// teamArgs is a parsed !전투 command with a vs separator
type teamArgs struct {
	TeamA  []string
	TeamB  []string
	Health []int
}

func isTeamCommand(args []string) bool {
	for _, a := range args {
		if strings.EqualFold(a, teamSeparator) {
			return true
		}
	}
	return false
}

// parseBattleArgs reads mentions, health values and an optional monster
// name in any order
func parseBattleArgs(args []string) (*battleArgs, error) {
	out := &battleArgs{}
	for _, a := range args {
		if id, ok := parseMention(a); ok {
			out.Players = append(out.Players, id)
			continue
		}
		if hp, ok := parseHealth(a); ok {
			out.Health = append(out.Health, hp)
			continue
		}
		out.MonsterName = a
	}
	if len(out.Players) == 0 {
		return nil, apperr.InvalidArgument(battleUsage)
	}
	return out, nil
}

func parseTeamArgs(args []string) (*teamArgs, error) {
	out := &teamArgs{}
	right := false
	for _, a := range args {
		if strings.EqualFold(a, teamSeparator) {
			if right {
				return nil, apperr.InvalidArgument(teamUsage)
			}
			right = true
			continue
		}
		if id, ok := parseMention(a); ok {
			if right {
				out.TeamB = append(out.TeamB, id)
			} else {
				out.TeamA = append(out.TeamA, id)
			}
			continue
		}
		if hp, ok := parseHealth(a); ok {
			out.Health = append(out.Health, hp)
		}
	}
	if len(out.TeamA) == 0 {
		return nil, apperr.InvalidArgument("팀 A에 최소 한 명이 있어야 합니다!")
	}
	if len(out.TeamB) == 0 {
		return nil, apperr.InvalidArgument("팀 B에 최소 한 명이 있어야 합니다!")
	}
	return out, nil
}

// focusedArgs is a parsed !집중공격 command
type focusedArgs struct {
	TargetID string
	Count    int
	Mode     entities.FocusMode
	FollowUp bool
}

func parseFocusedArgs(args []string) (*focusedArgs, error) {
	if len(args) < 2 {
		return nil, apperr.InvalidArgument(focusedUsage)
	}
	target, ok := parseMention(args[0])
	if !ok {
		return nil, apperr.InvalidArgument("올바른 유저 멘션을 사용해주세요.")
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, apperr.InvalidArgument("공격 횟수는 숫자여야 합니다.")
	}

	out := &focusedArgs{TargetID: target, Count: count, Mode: entities.FocusModeEach}
	if len(args) >= 3 {
		switch args[2] {
		case "단일", "single":
			out.Mode = entities.FocusModeSingle
		case "각각", "each":
			out.Mode = entities.FocusModeEach
		}
	}
	if len(args) >= 4 {
		switch args[3] {
		case "추가공격", "추가", "add":
			out.FollowUp = true
		}
	}
	return out, nil
}
