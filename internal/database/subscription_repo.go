package database

import (
	"database/sql"
	"fmt"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

type subscriptionRepo struct {
	db dbConn
}

func newSubscriptionRepo(db dbConn) contract.SubscriptionRepo {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Get(guildID, channelID, slug string) (*entity.Subscription, error) {
	subscription := &entity.Subscription{}
	query := `
		SELECT id, guild_id, channel_id, uc_slug, days_before, created_at, updated_at
		FROM subscriptions
		WHERE guild_id = ? AND channel_id = ? AND uc_slug = ?
	`

	err := r.db.QueryRow(query, guildID, channelID, slug).Scan(
		&subscription.ID,
		&subscription.GuildID,
		&subscription.ChannelID,
		&subscription.Slug,
		&subscription.DaysBefore,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return subscription, nil
}

// Upsert inserts the subscription or, when the guild, channel and slug
// already exist, replaces its lead time.
func (r *subscriptionRepo) Upsert(subscription *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (guild_id, channel_id, uc_slug, days_before)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (guild_id, channel_id, uc_slug) DO UPDATE SET
			days_before = excluded.days_before,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	err := r.db.QueryRow(query,
		subscription.GuildID,
		subscription.ChannelID,
		subscription.Slug,
		subscription.DaysBefore,
	).Scan(&subscription.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepo) Delete(guildID, channelID, slug string) error {
	query := `DELETE FROM subscriptions WHERE guild_id = ? AND channel_id = ? AND uc_slug = ?`

	_, err := r.db.Exec(query, guildID, channelID, slug)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepo) ListByChannel(guildID, channelID string) ([]*entity.Subscription, error) {
	query := `
		SELECT id, guild_id, channel_id, uc_slug, days_before, created_at, updated_at
		FROM subscriptions
		WHERE guild_id = ? AND channel_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, guildID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel subscriptions: %w", err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

func (r *subscriptionRepo) ListAll() ([]*entity.Subscription, error) {
	query := `
		SELECT id, guild_id, channel_id, uc_slug, days_before, created_at, updated_at
		FROM subscriptions
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

func scanSubscriptions(rows *sql.Rows) ([]*entity.Subscription, error) {
	var subscriptions []*entity.Subscription
	for rows.Next() {
		subscription := &entity.Subscription{}
		err := rows.Scan(
			&subscription.ID,
			&subscription.GuildID,
			&subscription.ChannelID,
			&subscription.Slug,
			&subscription.DaysBefore,
			&subscription.CreatedAt,
			&subscription.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	return subscriptions, nil
}
