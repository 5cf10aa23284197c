package skill

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
)

// DefaultAutoSaveInterval is used when neither config nor settings give one
const DefaultAutoSaveInterval = 30 * time.Second

// ManagerConfig holds configuration for the skill registry
type ManagerConfig struct {
	Store            skillstates.Store
	ConfigBackup     skillstates.ConfigBackup
	Settings         *Settings
	UserSkills       UserSkills
	AutoSaveInterval time.Duration
}

// Manager is the skill registry: which skills are active in which channel.
// Memory is authoritative; the store is a write-behind copy.
type Manager struct {
	mu      sync.Mutex
	states  map[string]*entities.ChannelState
	dirty   map[string]bool
	removed map[string]bool

	saveMu   sync.Mutex
	store    skillstates.Store
	backup   skillstates.ConfigBackup
	interval time.Duration

	settings   *Settings
	userSkills UserSkills
}

// NewManager creates a skill registry
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg == nil {
		panic("manager config is required")
	}
	if cfg.Store == nil {
		panic("skill state store is required")
	}

	m := &Manager{
		states:     make(map[string]*entities.ChannelState),
		dirty:      make(map[string]bool),
		removed:    make(map[string]bool),
		store:      cfg.Store,
		backup:     cfg.ConfigBackup,
		settings:   cfg.Settings,
		userSkills: cfg.UserSkills,
		interval:   cfg.AutoSaveInterval,
	}
	if m.settings == nil {
		m.settings = DefaultSettings()
	}
	if m.userSkills == nil {
		m.userSkills = make(UserSkills)
	}
	if m.interval <= 0 {
		m.interval = time.Duration(m.settings.System.AutoSaveInterval) * time.Second
	}
	if m.interval <= 0 {
		m.interval = DefaultAutoSaveInterval
	}
	return m
}

// Load restores persisted channel states. A store failure leaves the
// registry empty rather than failing startup.
func (m *Manager) Load(ctx context.Context) int {
	states, err := m.store.Load(ctx)
	if err != nil {
		log.Printf("Failed to load skill states, starting empty: %v", err)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, state := range states {
		if state == nil {
			continue
		}
		state.Normalize()
		m.states[id] = state
	}
	log.Printf("Loaded skill state for %d channel(s)", len(states))
	return len(states)
}

// Settings returns the gameplay settings
func (m *Manager) Settings() *Settings {
	return m.settings
}

// AddSkill stores a new active skill. It refuses unknown skills,
// non-positive durations, missing ids, a skill already active in the
// channel and a caster who already has a skill.
func (m *Manager) AddSkill(channelID string, name entities.SkillName, casterID, casterName, targetID, targetName string, duration int) bool {
	if _, ok := Lookup(name); !ok {
		return false
	}
	if duration <= 0 || channelID == "" || casterID == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.stateLocked(channelID)
	if _, exists := state.ActiveSkills[name]; exists {
		return false
	}
	if _, inst := state.SkillOf(casterID); inst != nil {
		return false
	}

	side := entities.CasterSideUser
	if m.IsAdmin(casterID, casterName) {
		side = entities.CasterSideAdmin
	}
	state.ActiveSkills[name] = &entities.SkillInstance{
		UserID:       casterID,
		UserName:     casterName,
		TargetID:     targetID,
		TargetName:   targetName,
		RoundsLeft:   duration,
		Duration:     duration,
		StartedRound: state.CurrentRound,
		CasterSide:   side,
	}
	m.markDirtyLocked(channelID)
	return true
}

// RemoveSkill deletes an active skill, reporting whether it was present
func (m *Manager) RemoveSkill(channelID string, name entities.SkillName) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[channelID]
	if !ok {
		return false
	}
	if _, exists := state.ActiveSkills[name]; !exists {
		return false
	}
	delete(state.ActiveSkills, name)
	m.markDirtyLocked(channelID)
	return true
}

// DecreaseSkillRounds ticks every active skill down by one and returns the
// skills that reached zero. Expired skills are left in place for the caller
// to finish with their end hook.
func (m *Manager) DecreaseSkillRounds(channelID string) []entities.SkillName {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[channelID]
	if !ok {
		return nil
	}
	m.markDirtyLocked(channelID)
	return decreaseRounds(state)
}

func decreaseRounds(state *entities.ChannelState) []entities.SkillName {
	var expired []entities.SkillName
	for name, inst := range state.ActiveSkills {
		if inst.RoundsLeft > 0 {
			inst.RoundsLeft--
		}
		if inst.RoundsLeft == 0 {
			expired = append(expired, name)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// ChannelState returns a copy of the channel's state, or a default state
// when the channel is untouched
func (m *Manager) ChannelState(channelID string) *entities.ChannelState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state, ok := m.states[channelID]; ok {
		return state.Clone()
	}
	return entities.NewChannelState()
}

// HasState reports whether the channel holds any state
func (m *Manager) HasState(channelID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.states[channelID]
	return ok
}

// Update runs fn against the live state of a channel, creating it if needed
func (m *Manager) Update(channelID string, fn func(state *entities.ChannelState)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fn(m.stateLocked(channelID))
	m.markDirtyLocked(channelID)
}

// UpdateExisting is Update for channels that already have state.
// It reports whether fn ran.
func (m *Manager) UpdateExisting(channelID string, fn func(state *entities.ChannelState)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[channelID]
	if !ok {
		return false
	}
	fn(state)
	m.markDirtyLocked(channelID)
	return true
}

// View runs fn against the live state of a channel without marking it
// dirty. fn must not modify the state. It reports whether fn ran.
func (m *Manager) View(channelID string, fn func(state *entities.ChannelState)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[channelID]
	if !ok {
		return false
	}
	fn(state)
	return true
}

// ClearChannel drops everything known about a channel
func (m *Manager) ClearChannel(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[channelID]; !ok {
		return
	}
	delete(m.states, channelID)
	delete(m.dirty, channelID)
	m.removed[channelID] = true
}

// MarkDirty queues a channel for the next flush
func (m *Manager) MarkDirty(channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked(channelID)
}

// IsAdmin reports whether a user is an authorized admin by id or nickname
func (m *Manager) IsAdmin(userID, displayName string) bool {
	for _, id := range m.settings.AuthorizedAdmins {
		if id == userID {
			return true
		}
	}
	return displayName != "" && displayName == m.settings.AuthorizedNickname
}

// AllowedSkills returns the explicit allow-list of a user
func (m *Manager) AllowedSkills(userID string) []entities.SkillName {
	entry, ok := m.userSkills[userID]
	if !ok || entry == nil {
		return nil
	}
	return append([]entities.SkillName{}, entry.AllowedSkills...)
}

// CanUse reports whether a user may cast name. Skills whose roles are only
// explicit user ids stay locked to those users even when listed in a
// user's allow-list.
func (m *Manager) CanUse(userID, displayName string, name entities.SkillName) bool {
	if _, ok := Lookup(name); !ok {
		return false
	}
	admin := m.IsAdmin(userID, displayName)
	roles := m.settings.SkillUsers[name]

	restricted := len(roles) > 0
	for _, role := range roles {
		switch role {
		case RoleAllUsers:
			restricted = false
			if !admin {
				return true
			}
		case RoleUsersOnly:
			restricted = false
			if !admin {
				return true
			}
		case RoleAdmin, RoleMonster:
			restricted = false
			if admin {
				return true
			}
		default:
			if role == userID {
				return true
			}
		}
	}
	if restricted {
		return false
	}

	for _, allowed := range m.AllowedSkills(userID) {
		if allowed == name {
			return true
		}
	}
	return false
}

// UsableSkills lists every skill a user may cast in catalogue order
func (m *Manager) UsableSkills(userID, displayName string) []entities.SkillName {
	var out []entities.SkillName
	for _, info := range Catalogue {
		if m.CanUse(userID, displayName, info.Name) {
			out = append(out, info.Name)
		}
	}
	return out
}

// MaxDuration is the longest a skill may be cast for
func (m *Manager) MaxDuration() int {
	return m.settings.System.MaxSkillDuration
}

// Run flushes dirty channels on a fixed interval until ctx is cancelled
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Flush(ctx); err != nil {
				log.Printf("Failed to auto-save skill states: %v", err)
			}
		}
	}
}

// Flush writes channels changed since the last flush
func (m *Manager) Flush(ctx context.Context) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	changed, removed := m.takeDirty(false)
	if len(changed) == 0 && len(removed) == 0 {
		return nil
	}
	if err := m.store.Save(ctx, changed, removed); err != nil {
		m.requeue(changed, removed)
		return err
	}
	return nil
}

// ForceSave writes every channel and backs up the settings
func (m *Manager) ForceSave(ctx context.Context) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	changed, removed := m.takeDirty(true)
	if err := m.store.Save(ctx, changed, removed); err != nil {
		m.requeue(changed, removed)
		return err
	}

	if m.backup != nil {
		m.backupConfig(ctx, "main_config", m.settings)
		m.backupConfig(ctx, "user_skills", m.userSkills)
	}
	log.Printf("Saved skill state for %d channel(s)", len(changed))
	return nil
}

func (m *Manager) backupConfig(ctx context.Context, configType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %s for backup: %v", configType, err)
		return
	}
	if err := m.backup.SaveConfig(ctx, configType, data); err != nil {
		log.Printf("Failed to back up %s: %v", configType, err)
	}
}

func (m *Manager) takeDirty(all bool) (map[string]*entities.ChannelState, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := make(map[string]*entities.ChannelState)
	if all {
		for id, state := range m.states {
			changed[id] = state.Clone()
		}
	} else {
		for id := range m.dirty {
			if state, ok := m.states[id]; ok {
				changed[id] = state.Clone()
			}
		}
	}
	removed := make([]string, 0, len(m.removed))
	for id := range m.removed {
		removed = append(removed, id)
	}
	sort.Strings(removed)

	m.dirty = make(map[string]bool)
	m.removed = make(map[string]bool)
	return changed, removed
}

func (m *Manager) requeue(changed map[string]*entities.ChannelState, removed []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range changed {
		if _, ok := m.states[id]; ok {
			m.dirty[id] = true
		}
	}
	for _, id := range removed {
		if _, ok := m.states[id]; !ok {
			m.removed[id] = true
		}
	}
}

func (m *Manager) stateLocked(channelID string) *entities.ChannelState {
	state, ok := m.states[channelID]
	if !ok {
		state = entities.NewChannelState()
		m.states[channelID] = state
		delete(m.removed, channelID)
	}
	return state
}

func (m *Manager) markDirtyLocked(channelID string) {
	if _, ok := m.states[channelID]; ok {
		m.dirty[channelID] = true
	}
}
