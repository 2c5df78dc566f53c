package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/matching"
)

type notifier struct {
	dm        contract.DataManager
	ucClient  contract.UCClient
	messenger contract.Messenger
	now       func() time.Time
	sendDelay time.Duration
}

func newNotifier(dm contract.DataManager, ucClient contract.UCClient, messenger contract.Messenger, now func() time.Time, sendDelay time.Duration) *notifier {
	return &notifier{
		dm:        dm,
		ucClient:  ucClient,
		messenger: messenger,
		now:       now,
		sendDelay: sendDelay,
	}
}

// CheckUpcoming sends one reminder per subscription that has evaluations
// inside its lead time and returns how many were delivered. Nothing is
// remembered between runs, so a reminder repeats on every run while the
// evaluation stays inside the window.
func (n *notifier) CheckUpcoming(ctx context.Context) int {
	runID := uuid.NewString()
	log.Printf("[%s] Periodic check: fetching subscriptions and UCs", runID)

	units := n.ucClient.FetchAll(ctx)

	subscriptions, err := n.dm.Subscription().ListAll()
	if err != nil {
		log.Printf("[%s] Failed to load subscriptions: %v", runID, err)
		return 0
	}

	if len(subscriptions) == 0 {
		return 0
	}

	today := n.now()
	attempts, sent := 0, 0

	for _, subscription := range subscriptions {
		unit, ok := matching.FindByKey(units, subscription.Slug)
		if !ok {
			continue
		}

		upcoming := matching.Upcoming(unit, subscription.DaysBefore, today)
		if len(upcoming) == 0 {
			continue
		}

		if !n.messenger.HasChannelAccess(subscription.ChannelID) {
			log.Printf("[%s] Channel %s not found (no access)", runID, subscription.ChannelID)
			continue
		}

		if attempts > 0 && n.sendDelay > 0 {
			time.Sleep(n.sendDelay)
		}
		attempts++

		if err := n.messenger.SendMessage(subscription.ChannelID, formatNotification(unit, upcoming)); err != nil {
			log.Printf("[%s] Failed to send notification to %s: %v", runID, subscription.ChannelID, err)
			continue
		}
		sent++
	}

	log.Printf("[%s] Periodic check finished: %d of %d notifications sent", runID, sent, attempts)
	return sent
}

func formatNotification(unit *entity.CourseUnit, upcoming []entity.Evaluation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 **Notificação - %s**\n", unit.Sigla))

	lines := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		lines = append(lines, fmt.Sprintf("- %s (%s)", e.Description, e.Date))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}
