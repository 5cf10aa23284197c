package skill

import "github.com/KirkDiggler/arena-bot-discord/internal/entities"

// DefaultPriority applies to skills missing from the priority table
const DefaultPriority = 5

// Info describes a skill for listings and the status board
type Info struct {
	Name        entities.SkillName
	Priority    int
	Emoji       string
	Description string
}

// Catalogue lists every skill in display order.
// Lower priority values are applied to a roll first.
var Catalogue = []Info{
	{entities.SkillCoalFold, 1, "🎲", "대상의 주사위가 0(40%) 또는 100(60%)이 됩니다"},
	{entities.SkillGrim, 1, "💀", "준비 후 가장 체력이 낮은 유저를 처형합니다"},
	{entities.SkillVolken, 1, "🌋", "5단계 화산 폭발, 만료 시 선별된 대상에게 반격"},
	{entities.SkillOnixel, 2, "🔥", "주사위를 50~150으로 보정합니다"},
	{entities.SkillStravos, 2, "⚡", "주사위를 75~150으로 보정합니다"},
	{entities.SkillOriven, 3, "⚡", "적 진영의 주사위 -10"},
	{entities.SkillJerrunka, 3, "🎯", "가장 약한 유저를 저주해 주사위 -20"},
	{entities.SkillDanmok, 3, "🏹", "50 미만을 굴린 적을 관통합니다"},
	{entities.SkillKaron, 10, "🤝", "받은 피해를 모든 유저가 함께 받습니다"},
	{entities.SkillHwangya, 10, "⚔️", "한 턴에 여러 번 행동합니다"},
	{entities.SkillPhoenix, 10, "🔥", "죽은 대상을 부활시키거나 처형으로부터 보호합니다"},
	{entities.SkillVirella, 10, "🌿", "대상을 최대 3라운드 속박합니다"},
	{entities.SkillNixara, 10, "🌀", "결투에서 진 대상을 차원 유배합니다"},
	{entities.SkillScarnel, 10, "☄️", "대상과 피해를 나누고, 만료 시 운석이 떨어집니다"},
	{entities.SkillLucencia, 10, "💚", "체력을 소모해 죽은 유저를 부활시킵니다"},
	{entities.SkillNexis, 10, "⭐", "대상에게 고정 피해 30"},
}

var catalogueIndex = func() map[entities.SkillName]int {
	out := make(map[entities.SkillName]int, len(Catalogue))
	for i, info := range Catalogue {
		out[info.Name] = i
	}
	return out
}()

// Lookup returns the catalogue entry for name
func Lookup(name entities.SkillName) (Info, bool) {
	i, ok := catalogueIndex[name]
	if !ok {
		return Info{}, false
	}
	return Catalogue[i], true
}

// Priority returns the application order of a skill
func Priority(name entities.SkillName) int {
	if info, ok := Lookup(name); ok {
		return info.Priority
	}
	return DefaultPriority
}

// Emoji returns the status board marker of a skill
func Emoji(name entities.SkillName) string {
	if info, ok := Lookup(name); ok {
		return info.Emoji
	}
	return "🔮"
}
