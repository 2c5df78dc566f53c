package chat

import (
	"fmt"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// slackMessageLimit keeps messages below the point where Slack truncates text.
const slackMessageLimit = 4000

// SlackClient defines the Slack operations used by the bot
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetConversationInfo retrieves channel information from Slack
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client SlackClient
}

func NewSlack(client SlackClient) contract.Messenger {
	return &Slack{client: client}
}

func (s *Slack) HasChannelAccess(channelID string) bool {
	_, err := s.client.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: channelID})
	return err == nil
}

func (s *Slack) SendMessage(channelID, text string) error {
	for _, chunk := range splitMessage(SlackMarkdown(text), slackMessageLimit) {
		_, _, err := s.client.PostMessage(
			channelID,
			slack.MsgOptionText(chunk, false),
			slack.MsgOptionAsUser(false),
		)
		if err != nil {
			return fmt.Errorf("failed to send Slack message: %w", err)
		}
	}
	return nil
}
