package discord

import "github.com/bwmarrin/discordgo"

// Session is the part of *discordgo.Session the handlers and notifier use
type Session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberNickname(guildID, userID, nickname string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ Session = (*discordgo.Session)(nil)

// displayName is what the guild shows for a member: nickname, then global name, then username
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if user == nil {
			user = member.User
		}
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
