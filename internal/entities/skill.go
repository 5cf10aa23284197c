package entities

// SkillName identifies a skill. Names are the in-game Korean hero names.
type SkillName string

const (
	SkillOnixel   SkillName = "오닉셀"
	SkillPhoenix  SkillName = "피닉스"
	SkillOriven   SkillName = "오리븐"
	SkillKaron    SkillName = "카론"
	SkillScarnel  SkillName = "스카넬"
	SkillLucencia SkillName = "루센시아"
	SkillVirella  SkillName = "비렐라"
	SkillGrim     SkillName = "그림"
	SkillNixara   SkillName = "닉사라"
	SkillJerrunka SkillName = "제룬카"
	SkillNexis    SkillName = "넥시스"
	SkillVolken   SkillName = "볼켄"
	SkillDanmok   SkillName = "단목"
	SkillCoalFold SkillName = "콜 폴드"
	SkillHwangya  SkillName = "황야"
	SkillStravos  SkillName = "스트라보스"
)

// TargetAllUsers is the target sentinel for skills aimed at every user
const TargetAllUsers = "all_users"

// CasterSide records whether a skill was cast by the admin or a user
type CasterSide string

const (
	CasterSideAdmin CasterSide = "admin"
	CasterSideUser  CasterSide = "user"
)

// Opposes reports whether a roller on the given side is an enemy of the caster
func (c CasterSide) Opposes(rollerIsAdmin bool) bool {
	if c == CasterSideAdmin {
		return !rollerIsAdmin
	}
	return rollerIsAdmin
}

// SkillInstance is one active skill in a channel
type SkillInstance struct {
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	TargetID     string     `json:"target_id"`
	TargetName   string     `json:"target_name"`
	RoundsLeft   int        `json:"rounds_left"`
	StartedRound int        `json:"started_round"`
	Duration     int        `json:"duration"`
	CasterSide   CasterSide `json:"caster_side"`
}

// Targets reports whether the skill is aimed at userID
func (s *SkillInstance) Targets(userID string) bool {
	if s.TargetID == TargetAllUsers {
		return true
	}
	if s.TargetID == "" {
		return s.UserID == userID
	}
	return s.TargetID == userID
}

// ChannelState is everything the skill registry knows about one channel
type ChannelState struct {
	BattleActive   bool                         `json:"battle_active"`
	CurrentRound   int                          `json:"current_round"`
	ActiveSkills   map[SkillName]*SkillInstance `json:"active_skills"`
	DisabledSkills []SkillName                  `json:"disabled_skills"`
	SpecialEffects *SpecialEffects              `json:"special_effects"`
}

// NewChannelState returns the default state of an untouched channel
func NewChannelState() *ChannelState {
	return &ChannelState{
		CurrentRound:   1,
		ActiveSkills:   make(map[SkillName]*SkillInstance),
		DisabledSkills: []SkillName{},
		SpecialEffects: &SpecialEffects{},
	}
}

// Normalize fills nil maps left behind by decoding
func (c *ChannelState) Normalize() {
	if c.ActiveSkills == nil {
		c.ActiveSkills = make(map[SkillName]*SkillInstance)
	}
	if c.DisabledSkills == nil {
		c.DisabledSkills = []SkillName{}
	}
	if c.SpecialEffects == nil {
		c.SpecialEffects = &SpecialEffects{}
	}
	if c.CurrentRound < 1 {
		c.CurrentRound = 1
	}
}

// IsEmpty reports whether the channel carries nothing worth persisting
func (c *ChannelState) IsEmpty() bool {
	return !c.BattleActive && len(c.ActiveSkills) == 0 && c.SpecialEffects.IsEmpty()
}

// SkillOf returns the skill cast by userID, if any
func (c *ChannelState) SkillOf(userID string) (SkillName, *SkillInstance) {
	for name, inst := range c.ActiveSkills {
		if inst.UserID == userID {
			return name, inst
		}
	}
	return "", nil
}

// IsDisabled reports whether name has been disabled in the channel
func (c *ChannelState) IsDisabled(name SkillName) bool {
	for _, d := range c.DisabledSkills {
		if d == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (c *ChannelState) Clone() *ChannelState {
	if c == nil {
		return nil
	}
	out := &ChannelState{
		BattleActive:   c.BattleActive,
		CurrentRound:   c.CurrentRound,
		ActiveSkills:   make(map[SkillName]*SkillInstance, len(c.ActiveSkills)),
		DisabledSkills: append([]SkillName{}, c.DisabledSkills...),
		SpecialEffects: c.SpecialEffects.Clone(),
	}
	for name, inst := range c.ActiveSkills {
		cp := *inst
		out.ActiveSkills[name] = &cp
	}
	return out
}
