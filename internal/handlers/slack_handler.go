package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/chat"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/command"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// slackDirectMessageChannel is the channel_name Slack sends for slash
// commands issued in a direct message.
const slackDirectMessageChannel = "directmessage"

type SlackHandler struct {
	commandHandler *CommandHandler
	signingSecret  string
}

func NewSlack(commandHandler *CommandHandler, signingSecret string) *SlackHandler {
	return &SlackHandler{
		commandHandler: commandHandler,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	prefix := s.Command + " "

	cmd, err := command.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, slack.ResponseTypeEphemeral, "❌ Comando não reconhecido.\n\n"+command.GetHelpText(prefix))
		return
	}

	req := Request{
		Scope:  entity.NewScope(slackGuildID(&s), s.ChannelID),
		Prefix: prefix,
	}

	h.respond(w, slack.ResponseTypeInChannel, h.commandHandler.Handle(r.Context(), cmd, req))
}

// slackGuildID returns the workspace of the command, or "" for direct messages.
func slackGuildID(s *slack.SlashCommand) string {
	if s.ChannelName == slackDirectMessageChannel || strings.HasPrefix(s.ChannelID, "D") {
		return ""
	}
	return s.TeamID
}

func (h *SlackHandler) respond(w http.ResponseWriter, responseType, text string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&slack.Msg{
		ResponseType: responseType,
		Text:         chat.SlackMarkdown(text),
	})
}
