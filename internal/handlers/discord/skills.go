package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/handlers/discord/utils"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
	"github.com/bwmarrin/discordgo"
)

// Slash commands and their options
const (
	commandSkill       = "스킬"
	commandCancelSkill = "스킬취소"
	commandListSkills  = "스킬목록"

	optionHero   = "영웅"
	optionRounds = "라운드"
	optionTarget = "대상"

	maxSkillRounds = 10
)

func skillChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(skill.Catalogue))
	for _, info := range skill.Catalogue {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s %s", info.Emoji, info.Name),
			Value: string(info.Name),
		})
	}
	return choices
}

func slashCommands() []*discordgo.ApplicationCommand {
	minRounds := 1.0
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandSkill,
			Description: "전투 중 영웅 스킬을 사용합니다",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optionHero,
					Description: "사용할 영웅",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     skillChoices(),
				},
				{
					Name:        optionRounds,
					Description: "지속 라운드 (1-10)",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
					MinValue:    &minRounds,
					MaxValue:    maxSkillRounds,
				},
				{
					Name:        optionTarget,
					Description: "스킬 대상",
					Type:        discordgo.ApplicationCommandOptionUser,
				},
			},
		},
		{
			Name:        commandCancelSkill,
			Description: "활성 스킬을 취소합니다 (Admin 전용)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optionHero,
					Description: "취소할 영웅",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     skillChoices(),
				},
			},
		},
		{
			Name:        commandListSkills,
			Description: "사용할 수 있는 스킬을 확인합니다",
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, slashCommands()); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

func (h *Handler) handleCommand(ctx context.Context, s Session, i *discordgo.Interaction) {
	switch i.ApplicationCommandData().Name {
	case commandSkill:
		h.activateSkill(ctx, s, i)
	case commandCancelSkill:
		h.cancelSkill(ctx, s, i)
	case commandListSkills:
		h.listSkills(s, i)
	}
}

func (h *Handler) activateSkill(ctx context.Context, s Session, i *discordgo.Interaction) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	caster := displayName(i.Member, user)
	targetID, targetName := utils.GetUserOption(i, optionTarget)

	activation, err := h.battles.ActivateSkill(ctx, &skill.ActivateInput{
		ChannelID:  i.ChannelID,
		Skill:      entities.SkillName(utils.GetStringOption(i, optionHero)),
		CasterID:   user.ID,
		CasterName: caster,
		TargetID:   targetID,
		TargetName: targetName,
		Rounds:     int(utils.GetIntOption(i, optionRounds)),
	})
	if err != nil {
		if !apperr.IsPlayerFacing(err) {
			log.Printf("Skill activation by %s failed: %v", user.ID, err)
		}
		respondEphemeral(s, i, errorReply(err))
		return
	}

	respondPublic(s, i, activationText(activation))
}

func activationText(a *skill.Activation) string {
	line := fmt.Sprintf("%s **%s**님이 **%s** 스킬을 %d라운드 동안 사용합니다!",
		skill.Emoji(a.Skill), a.CasterName, a.Skill, a.Rounds)
	if a.TargetName != "" && a.TargetName != a.CasterName {
		line += fmt.Sprintf(" (대상: %s)", a.TargetName)
	}
	return strings.Join(append([]string{line}, a.Messages...), "\n")
}

func (h *Handler) cancelSkill(ctx context.Context, s Session, i *discordgo.Interaction) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	name := entities.SkillName(utils.GetStringOption(i, optionHero))

	messages, err := h.battles.CancelSkill(ctx, &skill.CancelInput{
		ChannelID:     i.ChannelID,
		Skill:         name,
		RequesterID:   user.ID,
		RequesterName: displayName(i.Member, user),
	})
	if err != nil {
		respondEphemeral(s, i, errorReply(err))
		return
	}

	lines := append([]string{fmt.Sprintf("🚫 **%s** 스킬이 취소되었습니다.", name)}, messages...)
	respondPublic(s, i, strings.Join(lines, "\n"))
}

func (h *Handler) listSkills(s Session, i *discordgo.Interaction) {
	user := interactionUser(i)
	if user == nil {
		return
	}
	respondEphemeral(s, i, skillListText(h.skills.UsableSkills(user.ID, displayName(i.Member, user))))
}
