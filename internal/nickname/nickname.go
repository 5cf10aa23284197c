// Package nickname reads and rewrites the narrative health players carry in
// their server nicknames, e.g. "[축복] 아카시 하지메 / 85 / 10%".
package nickname

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultRealHealth is used when a nickname carries no health value
	DefaultRealHealth = 100
	// MaxLength is the platform nickname limit in characters
	MaxLength = 32
	// SystemName is the real name of the battle admin
	SystemName = "시스템"
	// SystemNickname is the nickname the admin account runs under
	SystemNickname = "system | 시스템"
)

// KnownNames are the player characters of the server
var KnownNames = []string{
	"아카시 하지메", "펀처", "유진석", "휘슬", "배달기사", "페이",
	"로메즈 아가레스", "레이나 하트베인", "비비", "오카미 나오하",
	"카라트에크", "토트", "처용", "멀 플리시", "코발트윈드", "옥타",
	"베레니케", "안드라 블랙", "봉고 3호", "몰", "베니", "백야",
	"루치페르", "벨사이르 드라켄리트", "불스", "퓨어 메탈",
	"노 단투", "라록", "아카이브", "베터", "메르쿠리",
	"마크-112", "스푸트니크 2세", "이터니티", "커피머신",
}

var systemNames = []string{SystemNickname, "system", SystemName}

var (
	// longest first so "노 단투" is never shadowed by a shorter name
	sortedNames = func() []string {
		names := append([]string{}, KnownNames...)
		sort.SliceStable(names, func(i, j int) bool {
			return utf8.RuneCountInString(names[i]) > utf8.RuneCountInString(names[j])
		})
		return names
	}()

	healthAfterName = regexp.MustCompile(`([\s/|·⟊]+)(\d+)`)
	healthSuffix    = regexp.MustCompile(`[⚡💚💛🧡❤💔].*$`)
	percentAhead    = regexp.MustCompile(`^\s*%`)

	fallbackExtract = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,3})\s*(?:/|$)`),
		regexp.MustCompile(`(?:/|\||⟊|·)\s*(\d{1,3})`),
		regexp.MustCompile(`\[\w*/(\d{1,3})\]`),
	}

	fallbackUpdate = []*regexp.Regexp{
		regexp.MustCompile(`(\[.*?/)(\d{1,3})(\])`),
		regexp.MustCompile(`(\s*/\s*)(\d{1,3})`),
		regexp.MustCompile(`(\|\s*)(\d{1,3})`),
		regexp.MustCompile(`(·\s*)(\d{1,3})`),
		regexp.MustCompile(`(⟊\s*)(\d{1,3})`),
		regexp.MustCompile(`(\s+)(\d{1,3})$`),
	}
)

func compact(s string) string {
	return strings.NewReplacer(" ", "", "_", "").Replace(s)
}

// IsSystemName reports whether name identifies the admin account
func IsSystemName(name string) bool {
	trimmed := strings.TrimSpace(norm.NFC.String(name))
	for _, sys := range systemNames {
		if strings.EqualFold(trimmed, sys) {
			return true
		}
	}
	return false
}

// ExtractRealName recovers the canonical character name from a nickname.
// Spaces and underscores are ignored when matching. Unknown names are
// returned with any health suffix removed.
func ExtractRealName(displayName string) string {
	if strings.TrimSpace(displayName) == "" {
		return "Unknown"
	}
	display := norm.NFC.String(displayName)
	if IsSystemName(display) {
		return SystemName
	}

	compacted := compact(display)
	for _, known := range sortedNames {
		if strings.Contains(display, known) || strings.Contains(compacted, compact(known)) {
			return known
		}
	}

	stripped := strings.TrimSpace(healthSuffix.ReplaceAllString(display, ""))
	if stripped == "" {
		return strings.TrimSpace(display)
	}
	return stripped
}

// SameParticipant reports whether two nicknames resolve to the same character
func SameParticipant(a, b string) bool {
	return ExtractRealName(a) == ExtractRealName(b)
}

// ExtractHealth reads the narrative health (1-100) that follows the known
// name in a nickname. Percent values are corruption, not health.
func ExtractHealth(displayName string) (int, bool) {
	if displayName == "" {
		return 0, false
	}
	display := norm.NFC.String(displayName)

	for _, known := range sortedNames {
		idx := strings.Index(display, known)
		if idx == -1 {
			continue
		}
		after := display[idx+len(known):]
		for _, m := range healthAfterName.FindAllStringSubmatchIndex(after, -1) {
			digits := after[m[4]:m[5]]
			if len(digits) > 3 {
				continue
			}
			if health, ok := inRange(digits); ok {
				return health, true
			}
		}
	}

	for i, pattern := range fallbackExtract {
		for _, m := range pattern.FindAllStringSubmatchIndex(display, -1) {
			if i == 1 && percentAhead.MatchString(display[m[3]:]) {
				continue
			}
			if health, ok := inRange(display[m[2]:m[3]]); ok {
				return health, true
			}
			break
		}
	}
	return 0, false
}

// RealHealth returns the nickname health or DefaultRealHealth
func RealHealth(displayName string) int {
	if health, ok := ExtractHealth(displayName); ok {
		return health
	}
	return DefaultRealHealth
}

// UpdateHealth rewrites the health value in a nickname, appending
// " / N" when none is present. The result is capped at MaxLength.
func UpdateHealth(displayName string, health int) string {
	if health < 0 {
		health = 0
	}
	if health > 100 {
		health = 100
	}
	value := strconv.Itoa(health)
	if displayName == "" {
		return truncate("Unknown / " + value)
	}
	display := norm.NFC.String(displayName)

	for _, known := range sortedNames {
		idx := strings.Index(display, known)
		if idx == -1 {
			continue
		}
		start := idx + len(known)
		after := display[start:]
		for _, m := range healthAfterName.FindAllStringSubmatchIndex(after, -1) {
			digits := after[m[4]:m[5]]
			if len(digits) > 3 {
				continue
			}
			if _, ok := inRange(digits); !ok {
				continue
			}
			return truncate(display[:start+m[4]] + value + display[start+m[5]:])
		}
	}

	for _, pattern := range fallbackUpdate {
		m := pattern.FindStringSubmatchIndex(display)
		if m == nil {
			continue
		}
		healthStart, healthEnd := m[4], m[5]
		if percentAhead.MatchString(display[healthEnd:]) {
			continue
		}
		if _, ok := inRange(display[healthStart:healthEnd]); !ok {
			continue
		}
		return truncate(display[:healthStart] + value + display[healthEnd:])
	}

	return truncate(display + " / " + value)
}

// BattleHealth converts narrative health to battle hit points: one point per
// started ten, never below one.
func BattleHealth(realHealth int) int {
	if realHealth <= 0 {
		return 1
	}
	return int(math.Ceil(float64(realHealth) / 10))
}

// HitsFromDamage converts narrative damage to battle hits the same way
func HitsFromDamage(damage int) int {
	if damage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(damage) / 10))
}

func inRange(digits string) (int, bool) {
	v, err := strconv.Atoi(digits)
	if err != nil || v < 1 || v > 100 {
		return 0, false
	}
	return v, true
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxLength {
		return s
	}
	return string([]rune(s)[:MaxLength])
}
