package contract

// Messenger defines the outbound side of a chat platform
type Messenger interface {
	// HasChannelAccess reports whether the bot can reach the channel
	HasChannelAccess(channelID string) bool

	// SendMessage posts plain text to a channel
	SendMessage(channelID, text string) error
}
