package entity

import (
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain"
)

// Subscription asks for reminders about a course unit in a channel,
// DaysBefore days ahead of each evaluation.
type Subscription struct {
	ID         int64
	GuildID    string
	ChannelID  string
	Slug       string
	DaysBefore int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Scope identifies the channel a command was issued from.
type Scope struct {
	GuildID   string
	ChannelID string
}

// NewScope builds the scope of a command. Commands issued outside a guild
// are scoped to the direct message sentinel guild.
func NewScope(guildID, channelID string) Scope {
	if guildID == "" {
		guildID = domain.DirectMessageGuildID
	}
	return Scope{GuildID: guildID, ChannelID: channelID}
}
