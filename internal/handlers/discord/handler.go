package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/dice"
	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/nickname"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/battle"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
	"github.com/bwmarrin/discordgo"
)

const historyLimit = 10

// Handler handles all Discord events of the arena bot
type Handler struct {
	battles battle.Service
	skills  skill.Service
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	BattleService battle.Service
	SkillService  skill.Service
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.BattleService == nil {
		panic("battle service is required")
	}
	if cfg.SkillService == nil {
		panic("skill service is required")
	}
	return &Handler{
		battles: cfg.BattleService,
		skills:  cfg.SkillService,
	}
}

// HandleMessage routes prefix commands and dice bot announcements
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || (s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}
	h.handleMessage(context.Background(), s, m.Message)
}

// HandleInteraction routes slash commands and buttons
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, s, i.Interaction)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(ctx, s, i.Interaction)
	}
}

// HandleMemberUpdate feeds nickname health increases into running battles
func (h *Handler) HandleMemberUpdate(s *discordgo.Session, u *discordgo.GuildMemberUpdate) {
	h.handleMemberUpdate(context.Background(), u.BeforeUpdate, u.Member)
}

func (h *Handler) handleMessage(ctx context.Context, s Session, m *discordgo.Message) {
	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	if m.Author.Bot {
		if _, ok := dice.ParseRollMessage(content); !ok {
			return
		}
		if err := h.battles.HandleDiceMessage(ctx, m.ChannelID, content); err != nil {
			log.Printf("Failed to handle dice message in %s: %v", m.ChannelID, err)
		}
		return
	}

	args := splitArgs(content)
	if len(args) == 0 || !strings.HasPrefix(args[0], "!") {
		if value, ok := dice.ParseResultValue(content); ok {
			if err := h.battles.RollResult(ctx, m.ChannelID, m.Author.ID, value); err != nil {
				log.Printf("Failed to handle roll result in %s: %v", m.ChannelID, err)
			}
		}
		return
	}

	var err error
	switch args[0] {
	case cmdBattle:
		err = h.startBattle(ctx, s, m, args[1:])
	case cmdSkipTurn:
		err = h.battles.SkipTurn(ctx, m.ChannelID, m.Author.ID)
	case cmdTarget:
		err = h.setTarget(ctx, m, args[1:])
	case cmdFocused:
		err = h.focusedAttack(ctx, m, args[1:])
	case cmdSurrender:
		err = h.battles.Surrender(ctx, m.ChannelID, m.Author.ID)
	case cmdStatus:
		err = h.status(ctx, s, m.ChannelID)
	case cmdStats:
		err = h.statistics(ctx, s, m.ChannelID)
	case cmdHistory:
		err = h.history(ctx, s, m.ChannelID)
	case cmdForceEnd:
		err = h.battles.ForceEnd(ctx, m.ChannelID, m.Author.ID, displayName(m.Member, m.Author))
	default:
		return
	}

	if err != nil {
		if !apperr.IsPlayerFacing(err) {
			log.Printf("Command %s in %s failed: %v", args[0], m.ChannelID, err)
		}
		reply(s, m.ChannelID, errorReply(err))
	}
}

// combatant resolves a mentioned member's display name, falling back to the
// user attached to the message
func (h *Handler) combatant(s Session, m *discordgo.Message, userID string) *battle.Combatant {
	var fallback *discordgo.User
	for _, u := range m.Mentions {
		if u.ID == userID {
			fallback = u
			break
		}
	}
	if m.GuildID != "" {
		member, err := s.GuildMember(m.GuildID, userID)
		if err == nil {
			return &battle.Combatant{UserID: userID, DisplayName: displayName(member, fallback)}
		}
		log.Printf("Failed to load member %s: %v", userID, err)
	}
	return &battle.Combatant{UserID: userID, DisplayName: displayName(nil, fallback)}
}

func (h *Handler) startBattle(ctx context.Context, s Session, m *discordgo.Message, args []string) error {
	author := displayName(m.Member, m.Author)
	if !h.skills.IsAdmin(m.Author.ID, author) {
		return apperr.PermissionDenied("!전투 명령어는 Admin만 사용할 수 있습니다.")
	}

	if isTeamCommand(args) {
		parsed, err := parseTeamArgs(args)
		if err != nil {
			return err
		}
		input := &battle.StartTeamBattleInput{
			ChannelID:   m.ChannelID,
			GuildID:     m.GuildID,
			RequesterID: m.Author.ID,
			Health:      parsed.Health,
		}
		for _, id := range parsed.TeamA {
			input.TeamA = append(input.TeamA, h.combatant(s, m, id))
		}
		for _, id := range parsed.TeamB {
			input.TeamB = append(input.TeamB, h.combatant(s, m, id))
		}
		_, err = h.battles.StartTeamBattle(ctx, input)
		return err
	}

	parsed, err := parseBattleArgs(args)
	if err != nil {
		return err
	}
	input := &battle.StartBattleInput{
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		Admin:       &battle.Combatant{UserID: m.Author.ID, DisplayName: author},
		Health:      parsed.Health,
		MonsterName: parsed.MonsterName,
	}
	for _, id := range parsed.Players {
		input.Players = append(input.Players, h.combatant(s, m, id))
	}
	_, err = h.battles.StartBattle(ctx, input)
	return err
}

func (h *Handler) setTarget(ctx context.Context, m *discordgo.Message, args []string) error {
	if len(args) == 0 {
		return apperr.InvalidArgument(targetUsage)
	}
	target, ok := parseMention(args[0])
	if !ok {
		return apperr.InvalidArgument(targetUsage)
	}
	return h.battles.SetTarget(ctx, m.ChannelID, m.Author.ID, target)
}

func (h *Handler) focusedAttack(ctx context.Context, m *discordgo.Message, args []string) error {
	parsed, err := parseFocusedArgs(args)
	if err != nil {
		return err
	}
	return h.battles.FocusedAttack(ctx, &battle.FocusedAttackInput{
		ChannelID:   m.ChannelID,
		RequesterID: m.Author.ID,
		TargetID:    parsed.TargetID,
		Count:       parsed.Count,
		Mode:        parsed.Mode,
		FollowUp:    parsed.FollowUp,
	})
}

func (h *Handler) status(ctx context.Context, s Session, channelID string) error {
	board, err := h.battles.Status(ctx, channelID)
	if err != nil {
		return err
	}
	return sendEmbed(s, channelID, board)
}

func (h *Handler) statistics(ctx context.Context, s Session, channelID string) error {
	stats, err := h.battles.Statistics(ctx)
	if err != nil {
		return err
	}
	return sendEmbed(s, channelID, statisticsBoard(stats))
}

func (h *Handler) history(ctx context.Context, s Session, channelID string) error {
	records, err := h.battles.History(ctx, historyLimit)
	if err != nil {
		return err
	}
	reply(s, channelID, historyText(records))
	return nil
}

func sendEmbed(s Session, channelID string, board *entities.Board) error {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{boardEmbed(board)},
	})
	if err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}
	return nil
}

func (h *Handler) handleComponent(ctx context.Context, s Session, i *discordgo.Interaction) {
	id, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok || id.Domain != domainBattle || id.Action != actionSync {
		return
	}

	user := interactionUser(i)
	if user == nil {
		return
	}
	if err := h.battles.Accept(ctx, i.ChannelID, user.ID, id.Target == syncYes); err != nil {
		respondEphemeral(s, i, errorReply(err))
		return
	}

	// the board itself is edited by the battle service
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Failed to acknowledge sync button: %v", err)
	}
}

func (h *Handler) handleMemberUpdate(ctx context.Context, before, after *discordgo.Member) {
	if before == nil || after == nil || after.User == nil {
		return
	}
	oldHealth, ok := nickname.ExtractHealth(displayName(before, before.User))
	if !ok {
		return
	}
	newHealth, ok := nickname.ExtractHealth(displayName(after, after.User))
	if !ok || newHealth <= oldHealth {
		return
	}
	if err := h.battles.UpdateRecovery(ctx, after.User.ID, oldHealth, newHealth); err != nil {
		log.Printf("Failed to apply recovery of %s: %v", after.User.ID, err)
	}
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func respondEphemeral(s Session, i *discordgo.Interaction, content string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

func respondPublic(s Session, i *discordgo.Interaction, content string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
