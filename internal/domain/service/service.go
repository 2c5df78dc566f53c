package service

import (
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
)

type Instance struct {
	Evaluation   contract.EvaluationService
	Subscription contract.SubscriptionService
	Notifier     contract.NotifierService
}

type options struct {
	now       func() time.Time
	sendDelay time.Duration
}

type Option func(*options)

// WithClock replaces the clock used to compute "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithSendDelay sets the pause between consecutive notification messages.
func WithSendDelay(d time.Duration) Option {
	return func(o *options) {
		o.sendDelay = d
	}
}

func NewInstance(dm contract.DataManager, ucClient contract.UCClient, messenger contract.Messenger, opts ...Option) *Instance {
	o := options{
		now:       time.Now,
		sendDelay: domain.NotificationSendDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Instance{
		Evaluation:   newEvaluation(ucClient, o.now),
		Subscription: newSubscription(dm),
		Notifier:     newNotifier(dm, ucClient, messenger, o.now, o.sendDelay),
	}
}
