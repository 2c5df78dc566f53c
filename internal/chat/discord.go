package chat

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
)

// discordMessageLimit is the maximum content length of a Discord message.
const discordMessageLimit = 2000

type Discord struct {
	session *discordgo.Session
}

func NewDiscord(session *discordgo.Session) contract.Messenger {
	return &Discord{session: session}
}

// HasChannelAccess looks the channel up in the session cache first and
// falls back to the REST API.
func (d *Discord) HasChannelAccess(channelID string) bool {
	if d.session.State != nil {
		if _, err := d.session.State.Channel(channelID); err == nil {
			return true
		}
	}

	_, err := d.session.Channel(channelID)
	return err == nil
}

func (d *Discord) SendMessage(channelID, text string) error {
	for _, chunk := range splitMessage(text, discordMessageLimit) {
		if _, err := d.session.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("failed to send Discord message: %w", err)
		}
	}
	return nil
}
