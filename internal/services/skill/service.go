package skill

//go:generate mockgen -destination=mock/mock_service.go -package=mockskill -source=service.go

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/arena-bot-discord/internal/dice"
	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
)

// Service is the skill effect pipeline. Callers serialize calls per channel.
type Service interface {
	// ProcessRoll runs a raw die value through every active skill in
	// priority order and returns the final value and narration
	ProcessRoll(ctx context.Context, channelID, userID string, value int) (int, []string)

	// AwaitsDuelRoll reports whether userID owes a roll to a skill duel
	AwaitsDuelRoll(ctx context.Context, channelID, userID string) bool

	// HandleDuelRoll feeds a roll to a pending skill duel
	HandleDuelRoll(ctx context.Context, channelID, userID string, value int) (bool, []string)

	// ShareDamage splits or mirrors damage dealt to victimID.
	// It returns the amount the victim keeps plus the redirected shares.
	ShareDamage(ctx context.Context, channelID, victimID string, amount int) (int, []DamageShare, []string)

	// ActionBlocked reports whether userID is prevented from acting
	ActionBlocked(ctx context.Context, channelID, userID string) (bool, string)

	// ActionCount returns the attack exchanges userID gets per turn
	ActionCount(ctx context.Context, channelID, userID string) int

	// AdvanceRound runs round-start hooks, ticks durations and ends expired skills
	AdvanceRound(ctx context.Context, channelID string, round int) []string

	// Activate casts a skill
	Activate(ctx context.Context, input *ActivateInput) (*Activation, error)

	// Cancel ends a skill early. Admin only.
	Cancel(ctx context.Context, input *CancelInput) ([]string, error)

	// StartBattle resets the channel for a new battle
	StartBattle(ctx context.Context, channelID string)

	// EndBattle drops the channel's skills and returns those cast during the battle
	EndBattle(ctx context.Context, channelID string) []entities.SkillName

	// ActiveSkills lists the live skills of a channel in application order
	ActiveSkills(ctx context.Context, channelID string) []*ActiveSkill

	// ChannelState returns a copy of the channel's skill state
	ChannelState(ctx context.Context, channelID string) *entities.ChannelState

	// UsableSkills lists the skills a user may cast
	UsableSkills(userID, displayName string) []entities.SkillName

	// AllowedSkills returns the explicit allow-list of a user
	AllowedSkills(userID string) []entities.SkillName

	// IsAdmin reports whether the user is an authorized admin
	IsAdmin(userID, displayName string) bool

	// UsageCounts returns how often each skill was cast since start
	UsageCounts() map[entities.SkillName]int
}

// ActivateInput contains data for casting a skill
type ActivateInput struct {
	ChannelID  string
	Skill      entities.SkillName
	CasterID   string
	CasterName string
	TargetID   string
	TargetName string
	Rounds     int
	// CasterIsAdmin marks the caster as the battle's admin side
	CasterIsAdmin bool
}

// CancelInput contains data for cancelling a skill
type CancelInput struct {
	ChannelID     string
	Skill         entities.SkillName
	RequesterID   string
	RequesterName string
}

// Activation describes a successful cast
type Activation struct {
	Skill      entities.SkillName
	CasterName string
	TargetName string
	Rounds     int
	Messages   []string
}

// ActiveSkill is a live skill as shown on the status board
type ActiveSkill struct {
	Name     entities.SkillName
	Emoji    string
	Instance entities.SkillInstance
}

type service struct {
	manager  *Manager
	registry *Registry
	arena    Arena
	roller   dice.Roller

	mu    sync.Mutex
	used  map[string][]entities.SkillName
	usage map[entities.SkillName]int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Manager  *Manager
	Registry *Registry
	Arena    Arena
	Roller   dice.Roller
}

// NewService creates a new skill service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Manager == nil {
		panic("skill manager is required")
	}
	if cfg.Arena == nil {
		panic("arena is required")
	}

	svc := &service{
		manager:  cfg.Manager,
		registry: cfg.Registry,
		arena:    cfg.Arena,
		roller:   cfg.Roller,
		used:     make(map[string][]entities.SkillName),
		usage:    make(map[entities.SkillName]int),
	}
	if svc.registry == nil {
		svc.registry = NewRegistry()
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	return svc
}

func (s *service) scope(channelID string, p prioritized, state *entities.ChannelState) *Scope {
	return &Scope{
		ChannelID: channelID,
		Skill:     p.name,
		Instance:  p.instance,
		State:     state,
		Arena:     s.arena,
		Roller:    s.roller,
		Settings:  s.manager.Settings(),
	}
}

// update runs fn against existing channel state under the manager lock.
// Arena side effects the hooks queued run after the lock is released.
func (s *service) update(ctx context.Context, channelID string, fn func(state *entities.ChannelState)) {
	s.manager.UpdateExisting(channelID, fn)
	s.arena.Flush(ctx, channelID)
}

// guard runs one handler hook, turning a panic into a skipped skill
func guard(name entities.SkillName, hook string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Skill %s failed in %s: %v", name, hook, r)
			ok = false
		}
	}()
	fn()
	return true
}

func (s *service) rollerIsAdmin(ctx context.Context, channelID, userID string) bool {
	info, err := s.arena.UserInfo(ctx, channelID, userID)
	if err != nil || info == nil {
		return false
	}
	return info.IsAdmin
}

// ProcessRoll folds the roll through the live skills. Each skill sees the
// value produced by the skills before it.
func (s *service) ProcessRoll(ctx context.Context, channelID, userID string, value int) (int, []string) {
	if !s.manager.HasState(channelID) {
		return value, nil
	}
	roll := &Roll{
		UserID:  userID,
		IsAdmin: s.rollerIsAdmin(ctx, channelID, userID),
		Value:   value,
	}

	var messages []string
	s.update(ctx, channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			var next int
			var msg string
			ok := guard(p.name, "dice roll", func() {
				next, msg = p.handler.OnDiceRoll(ctx, s.scope(channelID, p, state), &Roll{
					UserID:  roll.UserID,
					IsAdmin: roll.IsAdmin,
					Value:   roll.Value,
				})
			})
			if !ok {
				continue
			}
			roll.Value = next
			if msg != "" {
				messages = append(messages, msg)
			}
		}
	})
	return roll.Value, messages
}

func (s *service) AwaitsDuelRoll(ctx context.Context, channelID, userID string) bool {
	awaits := false
	s.manager.View(channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			d, ok := p.handler.(dueler)
			if !ok {
				continue
			}
			guard(p.name, "duel check", func() {
				if d.Awaits(s.scope(channelID, p, state), userID) {
					awaits = true
				}
			})
		}
	})
	return awaits
}

func (s *service) HandleDuelRoll(ctx context.Context, channelID, userID string, value int) (bool, []string) {
	consumed := false
	var messages []string
	s.update(ctx, channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			d, ok := p.handler.(dueler)
			if !ok || consumed {
				continue
			}
			guard(p.name, "duel roll", func() {
				var msgs []string
				consumed, msgs = d.ResolveDuel(ctx, s.scope(channelID, p, state), userID, value)
				messages = append(messages, msgs...)
			})
		}
	})
	return consumed, messages
}

func (s *service) ShareDamage(ctx context.Context, channelID, victimID string, amount int) (int, []DamageShare, []string) {
	keep := amount
	var shares []DamageShare
	var messages []string
	s.update(ctx, channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			guard(p.name, "damage share", func() {
				k, extra, msg := p.handler.ShareDamage(ctx, s.scope(channelID, p, state), victimID, keep)
				keep = k
				shares = append(shares, extra...)
				if msg != "" {
					messages = append(messages, msg)
				}
			})
		}
	})
	return keep, shares, messages
}

func (s *service) ActionBlocked(ctx context.Context, channelID, userID string) (bool, string) {
	blocked := false
	reason := ""
	s.manager.View(channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			guard(p.name, "action check", func() {
				if b, r := p.handler.Blocks(s.scope(channelID, p, state), userID); b && !blocked {
					blocked, reason = true, r
				}
			})
		}
	})
	return blocked, reason
}

func (s *service) ActionCount(ctx context.Context, channelID, userID string) int {
	count := 1
	s.manager.View(channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			guard(p.name, "action count", func() {
				if n := p.handler.Actions(s.scope(channelID, p, state), userID); n > count {
					count = n
				}
			})
		}
	})
	return count
}

// AdvanceRound moves the channel to round. Round-start hooks run first, then
// every skill ticks down and skills reaching zero get their end hook once.
func (s *service) AdvanceRound(ctx context.Context, channelID string, round int) []string {
	var messages []string
	s.update(ctx, channelID, func(state *entities.ChannelState) {
		state.CurrentRound = round

		for _, p := range s.registry.ordered(state) {
			guard(p.name, "round start", func() {
				messages = append(messages, p.handler.OnRoundStart(ctx, s.scope(channelID, p, state))...)
			})
		}

		expired := decreaseRounds(state)
		if len(expired) == 0 {
			return
		}
		names := make([]string, len(expired))
		for i, name := range expired {
			names[i] = string(name)
		}
		messages = append(messages, fmt.Sprintf("⏰ 다음 스킬들이 만료되었습니다: %s", strings.Join(names, ", ")))

		for _, name := range expired {
			inst := state.ActiveSkills[name]
			delete(state.ActiveSkills, name)
			h, ok := s.registry.Get(name)
			if !ok {
				continue
			}
			p := prioritized{name: name, instance: inst, handler: h}
			guard(name, "skill end", func() {
				messages = append(messages, h.OnSkillEnd(ctx, s.scope(channelID, p, state), false)...)
			})
		}
	})
	return messages
}

func (s *service) Activate(ctx context.Context, input *ActivateInput) (*Activation, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.ChannelID == "" || input.CasterID == "" {
		return nil, apperr.InvalidArgument("channel and caster are required")
	}

	handler, ok := s.registry.Get(input.Skill)
	if !ok {
		return nil, apperr.NotFoundf("**%s** 스킬을 찾을 수 없습니다", input.Skill)
	}
	if maxRounds := s.manager.MaxDuration(); input.Rounds < 1 || input.Rounds > maxRounds {
		return nil, apperr.InvalidArgumentf("라운드는 1~%d 사이여야 합니다", maxRounds)
	}
	if !s.manager.CanUse(input.CasterID, input.CasterName, input.Skill) {
		return nil, apperr.PermissionDeniedf("**%s** 스킬을 사용할 권한이 없습니다", input.Skill)
	}
	if !s.arena.IsBattleActive(ctx, input.ChannelID) {
		return nil, apperr.NotFound("진행 중인 전투가 없습니다")
	}

	targetName := input.TargetName
	if input.TargetID != "" && targetName == "" {
		if info, err := s.arena.UserInfo(ctx, input.ChannelID, input.TargetID); err == nil && info != nil {
			targetName = info.Name
		}
	}

	if !s.manager.AddSkill(input.ChannelID, input.Skill, input.CasterID, input.CasterName, input.TargetID, targetName, input.Rounds) {
		return nil, apperr.AlreadyExists("이미 같은 스킬이 사용 중이거나 다른 스킬을 사용 중입니다")
	}

	var activation *Activation
	var activateErr error
	s.manager.Update(input.ChannelID, func(state *entities.ChannelState) {
		snapshot := state.Clone()
		inst := state.ActiveSkills[input.Skill]
		if input.CasterIsAdmin {
			inst.CasterSide = entities.CasterSideAdmin
		}
		state.BattleActive = true

		var messages []string
		ok := guard(input.Skill, "activate", func() {
			messages, activateErr = handler.Activate(ctx, s.scope(input.ChannelID, prioritized{
				name:     input.Skill,
				instance: inst,
				handler:  handler,
			}, state))
		})
		if !ok && activateErr == nil {
			activateErr = apperr.Internalf("%s 스킬 발동 중 오류가 발생했습니다", input.Skill)
		}
		if activateErr != nil {
			*state = *snapshot
			delete(state.ActiveSkills, input.Skill)
			return
		}

		target := inst.TargetName
		if target == "" {
			target = "자기 자신"
		}
		activation = &Activation{
			Skill:      input.Skill,
			CasterName: input.CasterName,
			TargetName: target,
			Rounds:     inst.RoundsLeft,
			Messages:   messages,
		}
	})
	s.arena.Flush(ctx, input.ChannelID)
	if activateErr != nil {
		return nil, activateErr
	}

	s.mu.Lock()
	s.used[input.ChannelID] = append(s.used[input.ChannelID], input.Skill)
	s.usage[input.Skill]++
	s.mu.Unlock()

	log.Printf("Skill %s activated by %s in %s", input.Skill, input.CasterName, input.ChannelID)
	return activation, nil
}

func (s *service) Cancel(ctx context.Context, input *CancelInput) ([]string, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if !s.manager.IsAdmin(input.RequesterID, input.RequesterName) {
		return nil, apperr.PermissionDenied("스킬 취소는 ADMIN만 가능합니다")
	}

	found := false
	var messages []string
	s.update(ctx, input.ChannelID, func(state *entities.ChannelState) {
		inst, ok := state.ActiveSkills[input.Skill]
		if !ok {
			return
		}
		found = true
		delete(state.ActiveSkills, input.Skill)
		if h, ok := s.registry.Get(input.Skill); ok {
			p := prioritized{name: input.Skill, instance: inst, handler: h}
			guard(input.Skill, "skill end", func() {
				messages = h.OnSkillEnd(ctx, s.scope(input.ChannelID, p, state), true)
			})
		}
	})
	if !found {
		return nil, apperr.NotFoundf("**%s** 스킬을 찾을 수 없습니다", input.Skill)
	}
	return append([]string{fmt.Sprintf("✅ **%s** 스킬이 취소되었습니다.", input.Skill)}, messages...), nil
}

func (s *service) StartBattle(ctx context.Context, channelID string) {
	s.manager.ClearChannel(channelID)
	s.manager.Update(channelID, func(state *entities.ChannelState) {
		state.BattleActive = true
		state.CurrentRound = 1
	})

	s.mu.Lock()
	delete(s.used, channelID)
	s.mu.Unlock()
}

func (s *service) EndBattle(ctx context.Context, channelID string) []entities.SkillName {
	s.update(ctx, channelID, func(state *entities.ChannelState) {
		for name, inst := range state.ActiveSkills {
			h, ok := s.registry.Get(name)
			if !ok {
				continue
			}
			p := prioritized{name: name, instance: inst, handler: h}
			guard(name, "skill end", func() {
				h.OnSkillEnd(ctx, s.scope(channelID, p, state), true)
			})
		}
	})
	s.manager.ClearChannel(channelID)

	s.mu.Lock()
	defer s.mu.Unlock()
	used := s.used[channelID]
	delete(s.used, channelID)
	return used
}

func (s *service) ActiveSkills(ctx context.Context, channelID string) []*ActiveSkill {
	var out []*ActiveSkill
	s.manager.View(channelID, func(state *entities.ChannelState) {
		for _, p := range s.registry.ordered(state) {
			out = append(out, &ActiveSkill{
				Name:     p.name,
				Emoji:    Emoji(p.name),
				Instance: *p.instance,
			})
		}
	})
	return out
}

func (s *service) ChannelState(ctx context.Context, channelID string) *entities.ChannelState {
	return s.manager.ChannelState(channelID)
}

func (s *service) UsableSkills(userID, displayName string) []entities.SkillName {
	return s.manager.UsableSkills(userID, displayName)
}

func (s *service) AllowedSkills(userID string) []entities.SkillName {
	return s.manager.AllowedSkills(userID)
}

func (s *service) IsAdmin(userID, displayName string) bool {
	return s.manager.IsAdmin(userID, displayName)
}

func (s *service) UsageCounts() map[entities.SkillName]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[entities.SkillName]int, len(s.usage))
	for name, n := range s.usage {
		out[name] = n
	}
	return out
}

// MostUsed returns the most cast skill of counts, name order breaking ties
func MostUsed(counts map[entities.SkillName]int) (entities.SkillName, int) {
	names := make([]entities.SkillName, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	var best entities.SkillName
	bestCount := 0
	for _, name := range names {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best, bestCount
}
