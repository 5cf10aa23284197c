package dice

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	rollMessagePattern    = regexp.MustCompile("`([^`]+)`님이.*?주사위를\\s*굴\\s*려.*?\\*\\*(\\d+)\\*\\*.*?나왔습니다")
	resultMessagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`결과:\s*(\d+)`),
		regexp.MustCompile(`주사위:\s*(\d+)`),
		regexp.MustCompile(`결과는\s*(\d+)`),
		regexp.MustCompile(`(\d+)이\(가\) 나왔습니다`),
	}
)

// RollMessage is a dice-bot announcement reduced to who rolled and what
type RollMessage struct {
	PlayerName string
	Value      int
}

// ParseRollMessage extracts the roller name and result from a dice bot
// message such as "`이름`님이 D100 주사위를 굴려 **73** 이 나왔습니다".
// Whitespace runs are collapsed before matching. The second return value is
// false for anything that is not a roll announcement.
func ParseRollMessage(content string) (*RollMessage, bool) {
	normalized := strings.Join(strings.Fields(norm.NFC.String(content)), " ")
	match := rollMessagePattern.FindStringSubmatch(normalized)
	if match == nil {
		return nil, false
	}

	value, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, false
	}

	name := strings.TrimSpace(match[1])
	if name == "" {
		return nil, false
	}

	return &RollMessage{PlayerName: name, Value: value}, true
}

// ParseResultValue matches the generic "결과: N" family players post for
// skill duels. It is independent from ParseRollMessage; the first pattern
// that matches wins.
func ParseResultValue(content string) (int, bool) {
	content = norm.NFC.String(content)
	for _, pattern := range resultMessagePatterns {
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			continue
		}
		value, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, false
		}
		return value, true
	}
	return 0, false
}
