package discord

import (
	"context"
	"net/http"
	"testing"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func challenge() *entities.Board {
	board := &entities.Board{
		Title:      "⚔️ 전투 도전!",
		Color:      0xff0000,
		Footer:     "체력 동기화 여부를 선택하면 선공 다이스를 굴립니다.",
		SyncChoice: true,
	}
	board.AddField("상대", "• 유진석 (체력 10)", false)
	return board
}

func TestSendBoardAttachesSyncButtons(t *testing.T) {
	session := newFakeSession()
	n := NewNotifier(session)

	id, err := n.SendBoard(context.Background(), testChannel, challenge())
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)

	require.Len(t, session.embeds, 1)
	sent := session.embeds[0]
	embed := sent.Embeds[0]
	assert.Equal(t, "⚔️ 전투 도전!", embed.Title)
	assert.Equal(t, 0xff0000, embed.Color)
	require.NotNil(t, embed.Footer)
	assert.Len(t, embed.Fields, 1)

	require.Len(t, sent.Components, 1)
	row, ok := sent.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)
	assert.Equal(t, "battle:sync:yes", row.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, "battle:sync:no", row.Components[1].(discordgo.Button).CustomID)
}

func TestEditBoardClearsButtons(t *testing.T) {
	session := newFakeSession()
	n := NewNotifier(session)

	board := &entities.Board{Title: "⚔️ 전투 시작!"}
	require.NoError(t, n.EditBoard(context.Background(), testChannel, "msg-7", board))

	require.Len(t, session.edits, 1)
	edit := session.edits[0]
	assert.Equal(t, "msg-7", edit.ID)
	assert.Equal(t, testChannel, edit.Channel)
	require.NotNil(t, edit.Components)
	assert.Empty(t, *edit.Components)
	assert.Nil(t, (*edit.Embeds)[0].Footer)
}

func TestEditBoardDeletedMessageIsNotFound(t *testing.T) {
	session := newFakeSession()
	session.editErr = &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMessage, Message: "Unknown Message"},
	}
	n := NewNotifier(session)

	err := n.EditBoard(context.Background(), testChannel, "gone", challenge())
	assert.True(t, apperr.IsNotFound(err))

	session.editErr = assert.AnError
	err = n.EditBoard(context.Background(), testChannel, "msg-1", challenge())
	assert.Error(t, err)
	assert.False(t, apperr.IsNotFound(err))
}

func TestSetNickname(t *testing.T) {
	session := newFakeSession()
	n := NewNotifier(session)

	require.NoError(t, n.SetNickname(context.Background(), testGuild, "111", "아카시 하지메 / 40"))
	assert.Equal(t, "아카시 하지메 / 40", session.nicknames["111"])

	err := n.SetNickname(context.Background(), "", "111", "x")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestDisplayName(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "hajime", GlobalName: "Hajime"}
	assert.Equal(t, "아카시 하지메", displayName(&discordgo.Member{Nick: "아카시 하지메"}, user))
	assert.Equal(t, "Hajime", displayName(&discordgo.Member{User: user}, nil))
	assert.Equal(t, "jinseok", displayName(nil, &discordgo.User{Username: "jinseok"}))
	assert.Equal(t, "", displayName(nil, nil))
}
