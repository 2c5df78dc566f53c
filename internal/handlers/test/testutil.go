package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/handlers"
	"github.com/pedrofp4444/infoloom-discord-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// SigningSecret is the secret the Slack handler under test verifies against.
const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	EvaluationServiceMock   *mocks.MockEvaluationService
	SubscriptionServiceMock *mocks.MockSubscriptionService
	MessengerMock           *mocks.MockMessenger
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.CommandHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		EvaluationServiceMock:   mocks.NewMockEvaluationService(ctrl),
		SubscriptionServiceMock: mocks.NewMockSubscriptionService(ctrl),
		MessengerMock:           mocks.NewMockMessenger(ctrl),
	}

	handler = handlers.NewCommandHandler(m.EvaluationServiceMock, m.SubscriptionServiceMock)

	return
}

func GetSlackHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, commandHandler, ctrl := GetHandlerTest(t)
	handler = handlers.NewSlack(commandHandler, SigningSecret)

	return
}

func GetDiscordHandlerTest(t *testing.T, prefix string) (m ServiceMocks, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, commandHandler, ctrl := GetHandlerTest(t)
	handler = handlers.NewDiscord(commandHandler, m.MessengerMock, prefix)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}