package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battles"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
	"github.com/KirkDiggler/arena-bot-discord/internal/uuid"
)

const (
	// DefaultHealth is the battle health of anyone not given an explicit value
	DefaultHealth = 10
	// MaxFocusedAttacks bounds a focused attack
	MaxFocusedAttacks = 10

	defaultTargetTimeout = 30 * time.Second
	defaultIdleTimeout   = time.Hour
)

// Service defines the battle engine interface
type Service interface {
	// StartBattle opens a challenge between the admin and one or more players
	StartBattle(ctx context.Context, input *StartBattleInput) (*entities.Battle, error)

	// StartTeamBattle opens a challenge between two teams of players
	StartTeamBattle(ctx context.Context, input *StartTeamBattleInput) (*entities.Battle, error)

	// Accept applies the health-sync choice and starts the initiative roll
	Accept(ctx context.Context, channelID, userID string, sync bool) error

	// HandleDiceMessage routes a dice bot announcement to the battle of the channel.
	// Messages that are not announcements or not awaited are ignored.
	HandleDiceMessage(ctx context.Context, channelID, content string) error

	// HandleRoll records a roll by a known participant
	HandleRoll(ctx context.Context, channelID, userID string, value int) error

	// RollResult feeds a dice value without a roller name, posted by userID
	// themselves, to an open skill duel
	RollResult(ctx context.Context, channelID, userID string, value int) error

	// SkipTurn gives up the caller's pending roll as a zero
	SkipTurn(ctx context.Context, channelID, userID string) error

	// SetTarget designates the opponent a team battle player attacks
	SetTarget(ctx context.Context, channelID, userID, targetID string) error

	// FocusedAttack replaces the admin attack with repeated hits on one player
	FocusedAttack(ctx context.Context, input *FocusedAttackInput) error

	// Surrender takes the caller out of the battle
	Surrender(ctx context.Context, channelID, userID string) error

	// UpdateRecovery applies an out-of-battle heal to every battle the user is in
	UpdateRecovery(ctx context.Context, userID string, oldHealth, newHealth int) error

	// Status renders the current board of a channel
	Status(ctx context.Context, channelID string) (*entities.Board, error)

	// Statistics summarises the battle history
	Statistics(ctx context.Context) (*entities.Statistics, error)

	// History returns recent finished battles, newest first
	History(ctx context.Context, limit int) ([]*entities.BattleRecord, error)

	// SweepIdle ends battles without dice activity for the idle timeout
	SweepIdle(ctx context.Context) int

	// RunSweeper calls SweepIdle on interval until ctx is done
	RunSweeper(ctx context.Context, interval time.Duration)

	// ForceEnd stops a battle without recording a result
	ForceEnd(ctx context.Context, channelID, requesterID, requesterName string) error

	// ActivateSkill casts a skill in the channel's battle
	ActivateSkill(ctx context.Context, input *skill.ActivateInput) (*skill.Activation, error)

	// CancelSkill ends a skill early
	CancelSkill(ctx context.Context, input *skill.CancelInput) ([]string, error)

	// Get returns the live battle of a channel
	Get(ctx context.Context, channelID string) (*entities.Battle, error)
}

// Combatant identifies a chat member taking part in a battle
type Combatant struct {
	UserID      string
	DisplayName string
}

// StartBattleInput contains data for an admin battle
type StartBattleInput struct {
	ChannelID   string
	GuildID     string
	Admin       *Combatant
	Players     []*Combatant
	// Health holds the admin health followed by per-player health, in mention order
	Health      []int
	MonsterName string
}

// StartTeamBattleInput contains data for a team battle
type StartTeamBattleInput struct {
	ChannelID   string
	GuildID     string
	RequesterID string
	TeamA       []*Combatant
	TeamB       []*Combatant
	// Health is per player, team A first
	Health []int
}

// FocusedAttackInput contains data for a focused attack
type FocusedAttackInput struct {
	ChannelID   string
	RequesterID string
	TargetID    string
	Count       int
	Mode        entities.FocusMode
	FollowUp    bool
}

type service struct {
	battles  battles.Repository
	history  battlehistory.Repository
	skills   skill.Service
	notifier Notifier
	mirror   *healthMirror
	uuid     uuid.Generator
	clock    battlehistory.TimeProvider
	locks    *channelLocks
	// after schedules timeouts
	after    func(d time.Duration, fn func())

	targetTimeout time.Duration
	pace          time.Duration
	idleTimeout   time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Battles   battles.Repository
	History   battlehistory.Repository
	Skills    skill.Service
	Notifier  Notifier
	Nicknames NicknameSetter
	UUID      uuid.Generator
	Clock     battlehistory.TimeProvider

	TargetTimeout time.Duration
	// Pace is the pause between narrated steps; zero disables it
	Pace        time.Duration
	IdleTimeout time.Duration
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Battles == nil {
		panic("battle repository is required")
	}
	if cfg.History == nil {
		panic("history repository is required")
	}
	if cfg.Skills == nil {
		panic("skill service is required")
	}
	if cfg.Notifier == nil {
		panic("notifier is required")
	}

	svc := &service{
		battles:       cfg.Battles,
		history:       cfg.History,
		skills:        cfg.Skills,
		notifier:      cfg.Notifier,
		mirror:        &healthMirror{setter: cfg.Nicknames},
		uuid:          cfg.UUID,
		clock:         cfg.Clock,
		locks:         newChannelLocks(),
		after:         afterFunc,
		targetTimeout: cfg.TargetTimeout,
		pace:          cfg.Pace,
		idleTimeout:   cfg.IdleTimeout,
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.clock == nil {
		svc.clock = battlehistory.NewTimeProvider()
	}
	if svc.targetTimeout <= 0 {
		svc.targetTimeout = defaultTargetTimeout
	}
	if svc.idleTimeout <= 0 {
		svc.idleTimeout = defaultIdleTimeout
	}
	return svc
}

func afterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Get returns the live battle of a channel
func (s *service) Get(ctx context.Context, channelID string) (*entities.Battle, error) {
	if channelID == "" {
		return nil, apperr.InvalidArgument("channel id is required")
	}
	return s.battles.Get(ctx, channelID)
}

// live loads the battle of a channel that can still take actions
func (s *service) live(ctx context.Context, channelID string) (*entities.Battle, error) {
	b, err := s.battles.Get(ctx, channelID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("진행 중인 전투가 없습니다")
		}
		return nil, err
	}
	if b.Phase == entities.BattlePhaseFinished {
		return nil, apperr.NotFound("진행 중인 전투가 없습니다")
	}
	return b, nil
}

// say posts narration. Send failures never stop the battle.
func (s *service) say(ctx context.Context, channelID, text string) {
	if text == "" {
		return
	}
	if err := s.notifier.Send(ctx, channelID, text); err != nil {
		log.Printf("Failed to send battle message to %s: %v", channelID, err)
	}
}

func (s *service) sayAll(ctx context.Context, channelID string, texts []string) {
	for _, text := range texts {
		s.say(ctx, channelID, text)
	}
}

func (s *service) pause() {
	if s.pace > 0 {
		time.Sleep(s.pace)
	}
}

// ActivateSkill casts a skill under the channel lock so its effects land
// between roll resolutions.
func (s *service) ActivateSkill(ctx context.Context, input *skill.ActivateInput) (*skill.Activation, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	unlock := s.locks.lock(input.ChannelID)
	defer unlock()

	b, err := s.live(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}
	input.CasterIsAdmin = b.IsAdmin(input.CasterID)

	activation, err := s.skills.Activate(ctx, input)
	if err != nil {
		return nil, err
	}

	// activation effects may have decided the battle
	if s.settle(ctx, b) {
		return activation, nil
	}
	s.refreshStatus(ctx, b)
	return activation, nil
}

// CancelSkill ends a skill early
func (s *service) CancelSkill(ctx context.Context, input *skill.CancelInput) ([]string, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	unlock := s.locks.lock(input.ChannelID)
	defer unlock()

	messages, err := s.skills.Cancel(ctx, input)
	if err != nil {
		return nil, err
	}
	if b, err := s.live(ctx, input.ChannelID); err == nil {
		if !s.settle(ctx, b) {
			s.refreshStatus(ctx, b)
		}
	}
	return messages, nil
}
