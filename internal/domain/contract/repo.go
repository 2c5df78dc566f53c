package contract

import (
	"context"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Subscription() SubscriptionRepo
}

// SubscriptionRepo defines the contract for subscription repository
type SubscriptionRepo interface {
	Get(guildID, channelID, slug string) (*entity.Subscription, error)
	Upsert(subscription *entity.Subscription) error
	Delete(guildID, channelID, slug string) error
	ListByChannel(guildID, channelID string) ([]*entity.Subscription, error)
	ListAll() ([]*entity.Subscription, error)
}
