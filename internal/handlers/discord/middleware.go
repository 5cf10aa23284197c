package discord

import (
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps interaction handlers to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
				respondEphemeral(s, i.Interaction, genericFailure)
			}
		}()

		handler(s, i)
	}
}

// RecoverMessages wraps message handlers so one bad message cannot take
// the gateway loop down
func RecoverMessages(handlerName string, handler func(*discordgo.Session, *discordgo.MessageCreate)) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
			}
		}()

		handler(s, m)
	}
}
