package entities

// EffectKind names one slot of the special effects side-table
type EffectKind string

const (
	EffectVirellaBound   EffectKind = "virella_bound"
	EffectNixaraExcluded EffectKind = "nixara_excluded"
	EffectNixaraDuel     EffectKind = "nixara_duel"
	EffectGrimPreparing  EffectKind = "grim_preparing"
	EffectVolkenEruption EffectKind = "volken_eruption"
	EffectJerrunkaCurse  EffectKind = "jerrunka_curse"
	EffectDanmokPierce   EffectKind = "danmok_pierce"
	EffectHwangyaActions EffectKind = "hwangya_actions"
	EffectPhoenixWard    EffectKind = "phoenix_ward"
	EffectScarnelBond    EffectKind = "scarnel_bond"
)

// AllEffectKinds lists every slot in a stable order
var AllEffectKinds = []EffectKind{
	EffectVirellaBound,
	EffectNixaraExcluded,
	EffectNixaraDuel,
	EffectGrimPreparing,
	EffectVolkenEruption,
	EffectJerrunkaCurse,
	EffectDanmokPierce,
	EffectHwangyaActions,
	EffectPhoenixWard,
	EffectScarnelBond,
}

// BindEffect is a bound player who rolls to break free each round
type BindEffect struct {
	CasterID      string `json:"caster_id"`
	RoundsLeft    int    `json:"rounds_left"`
	ResistRolls   []int  `json:"resist_rolls"`
	ResistSuccess bool   `json:"resist_success"`
}

// ExclusionEffect removes a player from the fight for a number of rounds
type ExclusionEffect struct {
	CasterID   string `json:"caster_id"`
	RoundsLeft int    `json:"rounds_left"`
}

// DuelEffect is a pending two-party roll-off
type DuelEffect struct {
	CasterID   string `json:"caster_id"`
	TargetID   string `json:"target_id"`
	CasterRoll *int   `json:"caster_roll,omitempty"`
	TargetRoll *int   `json:"target_roll,omitempty"`
}

// Complete reports whether both sides have rolled
func (d *DuelEffect) Complete() bool {
	return d.CasterRoll != nil && d.TargetRoll != nil
}

// GrimEffect is a delayed execution
type GrimEffect struct {
	CasterID    string `json:"caster_id"`
	RoundsLeft  int    `json:"rounds_left"`
	TargetID    string `json:"target_id,omitempty"`
	TriggeredAt int    `json:"triggered_at,omitempty"`
}

// VolkenEffect is the phased eruption
type VolkenEffect struct {
	CasterID        string   `json:"caster_id"`
	Phase           int      `json:"phase"`
	SelectedTargets []string `json:"selected_targets"`
}

// CurseEffect applies a flat penalty to one player
type CurseEffect struct {
	CasterID string `json:"caster_id"`
	TargetID string `json:"target_id"`
	Penalty  int    `json:"penalty"`
}

// PierceEffect tracks who already took piercing damage this round
type PierceEffect struct {
	CasterID string          `json:"caster_id"`
	Round    int             `json:"round"`
	Pierced  map[string]bool `json:"pierced"`
}

// MultiActionEffect grants extra actions to the caster
type MultiActionEffect struct {
	CasterID string `json:"caster_id"`
	Actions  int    `json:"actions"`
}

// WardEffect protects players from lethal skills
type WardEffect struct {
	CasterID  string          `json:"caster_id"`
	Protected map[string]bool `json:"protected"`
}

// BondEffect links two players who split incoming damage. Carry holds the
// damage points each side owes or has overpaid below one whole hit.
type BondEffect struct {
	CasterID  string         `json:"caster_id"`
	PartnerID string         `json:"partner_id"`
	Carry     map[string]int `json:"carry,omitempty"`
}

// SpecialEffects is the typed side-table of cross-round skill state.
// Each slot is owned by exactly one skill.
type SpecialEffects struct {
	VirellaBound   map[string]*BindEffect      `json:"virella_bound,omitempty"`
	NixaraExcluded map[string]*ExclusionEffect `json:"nixara_excluded,omitempty"`
	NixaraDuel     *DuelEffect                 `json:"nixara_duel,omitempty"`
	GrimPreparing  *GrimEffect                 `json:"grim_preparing,omitempty"`
	VolkenEruption *VolkenEffect               `json:"volken_eruption,omitempty"`
	JerrunkaCurse  *CurseEffect                `json:"jerrunka_curse,omitempty"`
	DanmokPierce   *PierceEffect               `json:"danmok_pierce,omitempty"`
	HwangyaActions *MultiActionEffect          `json:"hwangya_actions,omitempty"`
	PhoenixWard    *WardEffect                 `json:"phoenix_ward,omitempty"`
	ScarnelBond    *BondEffect                 `json:"scarnel_bond,omitempty"`
}

// Has reports whether the slot holds state
func (s *SpecialEffects) Has(kind EffectKind) bool {
	if s == nil {
		return false
	}
	switch kind {
	case EffectVirellaBound:
		return len(s.VirellaBound) > 0
	case EffectNixaraExcluded:
		return len(s.NixaraExcluded) > 0
	case EffectNixaraDuel:
		return s.NixaraDuel != nil
	case EffectGrimPreparing:
		return s.GrimPreparing != nil
	case EffectVolkenEruption:
		return s.VolkenEruption != nil
	case EffectJerrunkaCurse:
		return s.JerrunkaCurse != nil
	case EffectDanmokPierce:
		return s.DanmokPierce != nil
	case EffectHwangyaActions:
		return s.HwangyaActions != nil
	case EffectPhoenixWard:
		return s.PhoenixWard != nil
	case EffectScarnelBond:
		return s.ScarnelBond != nil
	}
	return false
}

// Clear empties the slot
func (s *SpecialEffects) Clear(kind EffectKind) {
	if s == nil {
		return
	}
	switch kind {
	case EffectVirellaBound:
		s.VirellaBound = nil
	case EffectNixaraExcluded:
		s.NixaraExcluded = nil
	case EffectNixaraDuel:
		s.NixaraDuel = nil
	case EffectGrimPreparing:
		s.GrimPreparing = nil
	case EffectVolkenEruption:
		s.VolkenEruption = nil
	case EffectJerrunkaCurse:
		s.JerrunkaCurse = nil
	case EffectDanmokPierce:
		s.DanmokPierce = nil
	case EffectHwangyaActions:
		s.HwangyaActions = nil
	case EffectPhoenixWard:
		s.PhoenixWard = nil
	case EffectScarnelBond:
		s.ScarnelBond = nil
	}
}

// Active returns the occupied slots
func (s *SpecialEffects) Active() []EffectKind {
	var out []EffectKind
	for _, kind := range AllEffectKinds {
		if s.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// IsEmpty reports whether no slot holds state
func (s *SpecialEffects) IsEmpty() bool {
	return len(s.Active()) == 0
}

// IsBound reports whether userID is held by a bind
func (s *SpecialEffects) IsBound(userID string) bool {
	if s == nil {
		return false
	}
	bind, ok := s.VirellaBound[userID]
	return ok && bind.RoundsLeft > 0 && !bind.ResistSuccess
}

// IsExcluded reports whether userID is exiled from the fight
func (s *SpecialEffects) IsExcluded(userID string) bool {
	if s == nil {
		return false
	}
	ex, ok := s.NixaraExcluded[userID]
	return ok && ex.RoundsLeft > 0
}

// IsWarded reports whether userID is protected from lethal skills
func (s *SpecialEffects) IsWarded(userID string) bool {
	return s != nil && s.PhoenixWard != nil && s.PhoenixWard.Protected[userID]
}

// Clone returns a deep copy
func (s *SpecialEffects) Clone() *SpecialEffects {
	if s == nil {
		return &SpecialEffects{}
	}
	out := &SpecialEffects{}
	if s.VirellaBound != nil {
		out.VirellaBound = make(map[string]*BindEffect, len(s.VirellaBound))
		for id, b := range s.VirellaBound {
			cp := *b
			cp.ResistRolls = append([]int{}, b.ResistRolls...)
			out.VirellaBound[id] = &cp
		}
	}
	if s.NixaraExcluded != nil {
		out.NixaraExcluded = make(map[string]*ExclusionEffect, len(s.NixaraExcluded))
		for id, e := range s.NixaraExcluded {
			cp := *e
			out.NixaraExcluded[id] = &cp
		}
	}
	if s.NixaraDuel != nil {
		cp := *s.NixaraDuel
		cp.CasterRoll = copyInt(s.NixaraDuel.CasterRoll)
		cp.TargetRoll = copyInt(s.NixaraDuel.TargetRoll)
		out.NixaraDuel = &cp
	}
	if s.GrimPreparing != nil {
		cp := *s.GrimPreparing
		out.GrimPreparing = &cp
	}
	if s.VolkenEruption != nil {
		cp := *s.VolkenEruption
		cp.SelectedTargets = append([]string{}, s.VolkenEruption.SelectedTargets...)
		out.VolkenEruption = &cp
	}
	if s.JerrunkaCurse != nil {
		cp := *s.JerrunkaCurse
		out.JerrunkaCurse = &cp
	}
	if s.DanmokPierce != nil {
		cp := *s.DanmokPierce
		cp.Pierced = copyFlags(s.DanmokPierce.Pierced)
		out.DanmokPierce = &cp
	}
	if s.HwangyaActions != nil {
		cp := *s.HwangyaActions
		out.HwangyaActions = &cp
	}
	if s.PhoenixWard != nil {
		cp := *s.PhoenixWard
		cp.Protected = copyFlags(s.PhoenixWard.Protected)
		out.PhoenixWard = &cp
	}
	if s.ScarnelBond != nil {
		cp := *s.ScarnelBond
		if s.ScarnelBond.Carry != nil {
			cp.Carry = make(map[string]int, len(s.ScarnelBond.Carry))
			for id, v := range s.ScarnelBond.Carry {
				cp.Carry[id] = v
			}
		}
		out.ScarnelBond = &cp
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func copyFlags(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
