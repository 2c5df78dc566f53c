package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

type subscriptionService struct {
	dm contract.DataManager
}

func newSubscription(dm contract.DataManager) *subscriptionService {
	return &subscriptionService{dm: dm}
}

// normalizeSlug makes "P1" and "p1" address the same subscription.
func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// Subscribe creates the subscription or replaces the lead time of an
// existing one. created is false when a subscription was updated.
func (s *subscriptionService) Subscribe(ctx context.Context, scope entity.Scope, slug string, daysBefore int) (created bool, err error) {
	slug = normalizeSlug(slug)

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Subscription().Get(scope.GuildID, scope.ChannelID, slug)
		if err != nil {
			return err
		}
		created = existing == nil

		return tx.Subscription().Upsert(&entity.Subscription{
			GuildID:    scope.GuildID,
			ChannelID:  scope.ChannelID,
			Slug:       slug,
			DaysBefore: daysBefore,
		})
	})
	if err != nil {
		return false, fmt.Errorf("failed to subscribe %s in channel %s: %w", slug, scope.ChannelID, err)
	}

	return created, nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, scope entity.Scope, slug string) error {
	slug = normalizeSlug(slug)

	if err := s.dm.Subscription().Delete(scope.GuildID, scope.ChannelID, slug); err != nil {
		return fmt.Errorf("failed to unsubscribe %s in channel %s: %w", slug, scope.ChannelID, err)
	}
	return nil
}

func (s *subscriptionService) List(ctx context.Context, scope entity.Scope) ([]*entity.Subscription, error) {
	subscriptions, err := s.dm.Subscription().ListByChannel(scope.GuildID, scope.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of channel %s: %w", scope.ChannelID, err)
	}
	return subscriptions, nil
}
