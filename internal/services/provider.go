package services

import (
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/dice"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battles"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/battle"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

// Provider holds all service instances
type Provider struct {
	SkillManager  *skill.Manager
	SkillService  skill.Service
	BattleService battle.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SkillStore        skillstates.Store
	ConfigBackup      skillstates.ConfigBackup
	Settings          *skill.Settings
	UserSkills        skill.UserSkills
	BattleRepository  battles.Repository
	HistoryRepository battlehistory.Repository
	Notifier          battle.Notifier
	Nicknames         battle.NicknameSetter
	Roller            dice.Roller

	AutoSaveInterval time.Duration
	HistorySize      int
	TargetTimeout    time.Duration
	Pace             time.Duration
	IdleTimeout      time.Duration
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.SkillStore == nil {
		panic("skill state store is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	// Use in-memory repositories if none provided
	battleRepo := cfg.BattleRepository
	if battleRepo == nil {
		battleRepo = battles.NewInMemoryRepository()
	}

	historyRepo := cfg.HistoryRepository
	if historyRepo == nil {
		historyRepo = battlehistory.NewInMemoryRepository(cfg.HistorySize, nil)
	}

	manager := skill.NewManager(&skill.ManagerConfig{
		Store:            cfg.SkillStore,
		ConfigBackup:     cfg.ConfigBackup,
		Settings:         cfg.Settings,
		UserSkills:       cfg.UserSkills,
		AutoSaveInterval: cfg.AutoSaveInterval,
	})

	// Skills reach the battles through the arena, never through the battle service
	arena := battle.NewArena(&battle.ArenaConfig{
		Battles:   battleRepo,
		Notifier:  cfg.Notifier,
		Nicknames: cfg.Nicknames,
	})

	skillService := skill.NewService(&skill.ServiceConfig{
		Manager: manager,
		Arena:   arena,
		Roller:  cfg.Roller,
	})

	battleService := battle.NewService(&battle.ServiceConfig{
		Battles:       battleRepo,
		History:       historyRepo,
		Skills:        skillService,
		Notifier:      cfg.Notifier,
		Nicknames:     cfg.Nicknames,
		TargetTimeout: cfg.TargetTimeout,
		Pace:          cfg.Pace,
		IdleTimeout:   cfg.IdleTimeout,
	})

	return &Provider{
		SkillManager:  manager,
		SkillService:  skillService,
		BattleService: battleService,
	}
}
