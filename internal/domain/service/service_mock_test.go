package service

import (
	"testing"
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockSubscriptionRepo *mocks.MockSubscriptionRepo
	mockUCClient         *mocks.MockUCClient
	mockMessenger        *mocks.MockMessenger
}

// fixedNow is "today" in every service test.
var fixedNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	subscriptionRepo := mocks.NewMockSubscriptionRepo(ctrl)
	dm.EXPECT().Subscription().Return(subscriptionRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockSubscriptionRepo: subscriptionRepo,
		mockUCClient:         mocks.NewMockUCClient(ctrl),
		mockMessenger:        mocks.NewMockMessenger(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockUCClient, m.mockMessenger, WithClock(fixedClock), WithSendDelay(0))
	require.NotNil(t, instance.Evaluation)
	require.NotNil(t, instance.Subscription)
	require.NotNil(t, instance.Notifier)

	return
}
