package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/command"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

type DiscordHandler struct {
	commandHandler *CommandHandler
	messenger      contract.Messenger
	prefix         string
}

func NewDiscord(commandHandler *CommandHandler, messenger contract.Messenger, prefix string) *DiscordHandler {
	return &DiscordHandler{
		commandHandler: commandHandler,
		messenger:      messenger,
		prefix:         prefix,
	}
}

// HandleMessageCreate is registered with session.AddHandler.
func (h *DiscordHandler) HandleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	cmd, err := command.ParseMessage(h.prefix, m.Content)
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			log.Printf("Ignoring %v from %s", err, m.Author.Username)
		}
		return
	}

	req := Request{
		Scope:  entity.NewScope(m.GuildID, m.ChannelID),
		Prefix: h.prefix,
	}

	reply := h.commandHandler.Handle(context.Background(), cmd, req)

	if err := h.messenger.SendMessage(m.ChannelID, reply); err != nil {
		log.Printf("Failed to reply to %s in channel %s: %v", cmd.Type, m.ChannelID, err)
	}
}
