package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeSession records what the handlers post
type fakeSession struct {
	mu        sync.Mutex
	messages  []string
	embeds    []*discordgo.MessageSend
	edits     []*discordgo.MessageEdit
	responses []*discordgo.InteractionResponse
	nicknames map[string]string
	members   map[string]*discordgo.Member

	editErr error
	nextID  int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		nicknames: make(map[string]string),
		members:   make(map[string]*discordgo.Member),
	}
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, content)
	f.nextID++
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextID), ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, data)
	f.nextID++
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextID), ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeSession) GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[userID]
	if !ok {
		return nil, fmt.Errorf("unknown member %s", userID)
	}
	return member, nil
}

func (f *fakeSession) GuildMemberNickname(guildID, userID, nickname string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nicknames[userID] = nickname
	return nil
}

func (f *fakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) lastMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

func (f *fakeSession) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}
