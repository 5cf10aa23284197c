package battle

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/KirkDiggler/arena-bot-discord/internal/dice"
	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
)

// HandleDiceMessage routes a dice bot announcement to the battle of the channel
func (s *service) HandleDiceMessage(ctx context.Context, channelID, content string) error {
	msg, ok := dice.ParseRollMessage(content)
	if !ok {
		return nil
	}

	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}

	userID := rollerID(b, msg.PlayerName)
	if userID == "" {
		return nil
	}
	s.roll(ctx, b, userID, msg.Value)
	return nil
}

// rollerID resolves the name a dice bot printed to a participant
func rollerID(b *entities.Battle, printed string) string {
	name := nickname.ExtractRealName(printed)
	if b.Admin != nil && (name == b.MonsterName || nickname.IsSystemName(name)) {
		return b.Admin.UserID
	}
	for _, p := range b.Players {
		if p.Name == name {
			return p.UserID
		}
	}
	return ""
}

// HandleRoll records a roll by a known participant
func (s *service) HandleRoll(ctx context.Context, channelID, userID string, value int) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}
	if b.Find(userID) == nil {
		return apperr.PermissionDenied("전투에 참여 중이지 않습니다")
	}
	s.roll(ctx, b, userID, value)
	return nil
}

// roll feeds one die value into the battle. A roll may count for the pending
// exchange and for an open skill duel at the same time. Rolls nobody waits
// for are dropped.
func (s *service) roll(ctx context.Context, b *entities.Battle, userID string, value int) {
	if b.Phase != entities.BattlePhaseInitRoll && b.Phase != entities.BattlePhaseCombat {
		return
	}
	b.Touch(s.clock.Now())

	awaited := b.Pending != nil && b.Pending.Awaits(userID)
	final := value
	recorded := false
	if awaited {
		var messages []string
		final, messages = s.skills.ProcessRoll(ctx, b.ChannelID, userID, value)
		s.sayAll(ctx, b.ChannelID, messages)
		if final != value {
			s.say(ctx, b.ChannelID, fmt.Sprintf("🎲 **%s**님의 주사위 결과: %d → **%d**", displayName(b, userID), value, final))
		}
		recorded = b.Pending.Record(userID, final)
	}

	// the duel settles after the exchange took the roll, so an exile it
	// starts applies from the next roll on
	dueled := false
	if s.skills.AwaitsDuelRoll(ctx, b.ChannelID, userID) {
		var messages []string
		dueled, messages = s.skills.HandleDuelRoll(ctx, b.ChannelID, userID, final)
		s.sayAll(ctx, b.ChannelID, messages)
	}

	switch {
	case recorded && b.Pending.Done():
		s.resolve(ctx, b)
	case dueled:
		s.settle(ctx, b)
	}
}

// RollResult routes a bare dice value a player posted. Only an open skill
// duel takes these, since they carry no roller name for the exchange.
func (s *service) RollResult(ctx context.Context, channelID, userID string, value int) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}
	if b.Find(userID) == nil || !s.skills.AwaitsDuelRoll(ctx, channelID, userID) {
		return nil
	}
	b.Touch(s.clock.Now())
	_, messages := s.skills.HandleDuelRoll(ctx, channelID, userID, value)
	s.sayAll(ctx, channelID, messages)
	s.settle(ctx, b)
	return nil
}

// SkipTurn gives up the caller's pending roll as a zero
func (s *service) SkipTurn(ctx context.Context, channelID, userID string) error {
	unlock := s.locks.lock(channelID)
	defer unlock()

	b, err := s.live(ctx, channelID)
	if err != nil {
		return err
	}

	if b.TargetWait != "" {
		if current := b.CurrentPlayer(); current != nil && current.UserID == userID {
			b.TargetWait = ""
			s.say(ctx, channelID, fmt.Sprintf("⏭️ %s님이 턴을 넘겼습니다.", current.Name))
			b.TurnIndex++
			s.nextTurn(ctx, b)
			return nil
		}
	}

	if b.Pending == nil || !b.Pending.Awaits(userID) {
		return apperr.PermissionDenied("지금은 주사위를 기다리고 있지 않습니다")
	}

	b.Touch(s.clock.Now())
	b.Pending.Record(userID, 0)
	s.say(ctx, channelID, fmt.Sprintf("⏭️ %s님이 턴을 넘겼습니다.", displayName(b, userID)))
	if b.Pending.Done() {
		s.resolve(ctx, b)
	}
	return nil
}

// resolve runs once every awaited roll is in
func (s *service) resolve(ctx context.Context, b *entities.Battle) {
	pending := b.Pending
	b.Pending = nil

	switch pending.Phase {
	case entities.PendingPhaseInit:
		s.resolveInit(ctx, b, pending)
	case entities.PendingPhaseUserAttack:
		s.resolveUserAttack(ctx, b, pending)
	case entities.PendingPhaseAdminAttack:
		s.resolveAdminAttack(ctx, b, pending)
	case entities.PendingPhaseTeamAttack:
		s.resolveTeamAttack(ctx, b, pending)
	case entities.PendingPhaseFocusedSingle:
		s.resolveFocusedSingle(ctx, b, pending)
	case entities.PendingPhaseFocusedEach:
		s.resolveFocusedEach(ctx, b, pending)
	default:
		log.Printf("Battle %s resolved unknown phase %q", b.ID, pending.Phase)
	}
}

// resolveInit fixes the turn order by initiative, highest first
func (s *service) resolveInit(ctx context.Context, b *entities.Battle, pending *entities.PendingDice) {
	best := 0
	for _, p := range b.Players {
		p.InitRoll = pending.Rolls[p.UserID]
		if p.InitRoll > best {
			best = p.InitRoll
		}
	}
	sort.SliceStable(b.Players, func(i, j int) bool {
		return b.Players[i].InitRoll > b.Players[j].InitRoll
	})

	adminFirst := false
	if b.Admin != nil {
		b.Admin.InitRoll = pending.Rolls[b.Admin.UserID]
		adminFirst = b.Admin.InitRoll > best
	}

	if err := b.AdvancePhase(entities.BattlePhaseCombat); err != nil {
		log.Printf("Battle %s could not enter combat: %v", b.ID, err)
		return
	}
	b.Round = 1
	b.TurnIndex = 0

	order := make([]string, len(b.Players))
	for i, p := range b.Players {
		order[i] = fmt.Sprintf("%d. %s (%d)", i+1, p.Name, p.InitRoll)
	}
	s.say(ctx, b.ChannelID, "📜 **턴 순서**\n"+joinLines(order))

	switch {
	case b.IsTeamBattle:
		b.TurnPhase = entities.TurnPhaseTeamAttack
	case adminFirst:
		s.say(ctx, b.ChannelID, fmt.Sprintf("⚔️ %s이(가) 선공을 가져갑니다!", b.MonsterName))
		b.TurnPhase = entities.TurnPhaseAdminAttack
	case b.Admin != nil && b.Admin.InitRoll == best:
		s.say(ctx, b.ChannelID, "🎲 동점! 플레이어들이 선공을 가져갑니다!")
		b.TurnPhase = entities.TurnPhaseUserAttack
	default:
		s.say(ctx, b.ChannelID, "⚔️ 플레이어들이 선공을 가져갑니다!")
		b.TurnPhase = entities.TurnPhaseUserAttack
	}

	s.pause()
	s.nextTurn(ctx, b)
}

func displayName(b *entities.Battle, userID string) string {
	if b.IsAdmin(userID) {
		return b.MonsterName
	}
	if p := b.Find(userID); p != nil {
		return p.Name
	}
	return userID
}
