package skill

import (
	"sort"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Registry resolves skill names to handlers
type Registry struct {
	handlers map[entities.SkillName]Handler
}

// NewRegistry returns a registry holding every catalogued skill
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[entities.SkillName]Handler)}
	for _, h := range []Handler{
		newCoalFold(),
		newGrim(),
		newVolken(),
		newClamp(entities.SkillOnixel, 50, 150, "🔥"),
		newClamp(entities.SkillStravos, 75, 150, "⚔️"),
		newOriven(),
		newJerrunka(),
		newDanmok(),
		newKaron(),
		newHwangya(),
		newPhoenix(),
		newVirella(),
		newNixara(),
		newScarnel(),
		newLucencia(),
		newNexis(),
	} {
		r.handlers[h.Name()] = h
	}
	return r
}

// Get returns the handler for name
func (r *Registry) Get(name entities.SkillName) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether name is a known skill
func (r *Registry) Has(name entities.SkillName) bool {
	_, ok := r.handlers[name]
	return ok
}

// prioritized is an active skill paired with its handler
type prioritized struct {
	name     entities.SkillName
	instance *entities.SkillInstance
	handler  Handler
}

// ordered returns the live skills of a channel in application order.
// Equal priorities fall back to name order so results are repeatable.
func (r *Registry) ordered(state *entities.ChannelState) []prioritized {
	out := make([]prioritized, 0, len(state.ActiveSkills))
	for name, inst := range state.ActiveSkills {
		if inst == nil || inst.RoundsLeft <= 0 {
			continue
		}
		h, ok := r.handlers[name]
		if !ok {
			continue
		}
		out = append(out, prioritized{name: name, instance: inst, handler: h})
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := Priority(out[i].name), Priority(out[j].name)
		if pi != pj {
			return pi < pj
		}
		return out[i].name < out[j].name
	})
	return out
}
