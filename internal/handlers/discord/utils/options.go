package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption retrieves a top-level slash command option by name
func GetCommandOption(i *discordgo.Interaction, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// GetStringOption retrieves a string option value by name
func GetStringOption(i *discordgo.Interaction, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption retrieves an integer option value by name
func GetIntOption(i *discordgo.Interaction, name string) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return opt.IntValue()
}

// GetUserOption returns the id of a user option and the display name
// Discord resolved for it
func GetUserOption(i *discordgo.Interaction, name string) (string, string) {
	opt := GetCommandOption(i, name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionUser {
		return "", ""
	}
	id, ok := opt.Value.(string)
	if !ok || id == "" {
		return "", ""
	}

	resolved := i.ApplicationCommandData().Resolved
	if resolved == nil {
		return id, ""
	}
	if member, ok := resolved.Members[id]; ok && member.Nick != "" {
		return id, member.Nick
	}
	if user, ok := resolved.Users[id]; ok {
		if user.GlobalName != "" {
			return id, user.GlobalName
		}
		return id, user.Username
	}
	return id, ""
}
