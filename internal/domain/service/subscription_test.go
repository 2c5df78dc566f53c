package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/database"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_subscriptionService_Subscribe(t *testing.T) {
	scope := entity.Scope{GuildID: "G1", ChannelID: "C1"}

	type args struct {
		slug       string
		daysBefore int
	}
	tests := []struct {
		name        string
		args        args
		buildMock   func(m allMocks, args args)
		wantCreated bool
		wantErr     bool
	}{
		{
			name: "Should create a new subscription",
			args: args{slug: "p1", daysBefore: 3},
			buildMock: func(m allMocks, args args) {
				m.mockSubscriptionRepo.EXPECT().Get("G1", "C1", "p1").Return(nil, nil).Times(1)
				m.mockSubscriptionRepo.EXPECT().
					Upsert(&entity.Subscription{GuildID: "G1", ChannelID: "C1", Slug: "p1", DaysBefore: 3}).
					Return(nil).Times(1)
			},
			wantCreated: true,
		},
		{
			name: "Should update an existing subscription with normalized slug",
			args: args{slug: " P1 ", daysBefore: 5},
			buildMock: func(m allMocks, args args) {
				m.mockSubscriptionRepo.EXPECT().
					Get("G1", "C1", "p1").
					Return(&entity.Subscription{ID: 9, GuildID: "G1", ChannelID: "C1", Slug: "p1", DaysBefore: 7}, nil).Times(1)
				m.mockSubscriptionRepo.EXPECT().
					Upsert(&entity.Subscription{GuildID: "G1", ChannelID: "C1", Slug: "p1", DaysBefore: 5}).
					Return(nil).Times(1)
			},
			wantCreated: false,
		},
		{
			name: "Should return error when upsert fails",
			args: args{slug: "p1", daysBefore: 7},
			buildMock: func(m allMocks, args args) {
				m.mockSubscriptionRepo.EXPECT().Get("G1", "C1", "p1").Return(nil, nil).Times(1)
				m.mockSubscriptionRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("disk full")).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should return error when lookup fails",
			args: args{slug: "p1", daysBefore: 7},
			buildMock: func(m allMocks, args args) {
				m.mockSubscriptionRepo.EXPECT().Get("G1", "C1", "p1").Return(nil, errors.New("locked")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockDataManager.EXPECT().
				WithTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
					return fn(m.mockDataManager)
				}).Times(1)

			tt.buildMock(m, tt.args)

			s := newSubscription(m.mockDataManager)
			created, err := s.Subscribe(context.Background(), scope, tt.args.slug, tt.args.daysBefore)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func Test_subscriptionService_Unsubscribe(t *testing.T) {
	scope := entity.Scope{GuildID: "dm", ChannelID: "C1"}

	t.Run("Should delete normalized slug", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSubscriptionRepo.EXPECT().Delete("dm", "C1", "p1").Return(nil).Times(1)

		s := newSubscription(m.mockDataManager)
		require.NoError(t, s.Unsubscribe(context.Background(), scope, "P1"))
	})

	t.Run("Should wrap storage errors", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		storageErr := errors.New("readonly database")
		m.mockSubscriptionRepo.EXPECT().Delete("dm", "C1", "p1").Return(storageErr).Times(1)

		s := newSubscription(m.mockDataManager)
		err := s.Unsubscribe(context.Background(), scope, "p1")
		require.ErrorIs(t, err, storageErr)
	})
}

func Test_subscriptionService_List(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	want := []*entity.Subscription{{ID: 1, GuildID: "G1", ChannelID: "C1", Slug: "p1", DaysBefore: 3}}
	m.mockSubscriptionRepo.EXPECT().ListByChannel("G1", "C1").Return(want, nil).Times(1)

	s := newSubscription(m.mockDataManager)
	got, err := s.List(context.Background(), entity.Scope{GuildID: "G1", ChannelID: "C1"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_subscriptionService_WithDatabase(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	s := newSubscription(database.NewInstance(db))
	ctx := context.Background()
	scope := entity.Scope{GuildID: "G1", ChannelID: "C1"}

	created, err := s.Subscribe(ctx, scope, "p1", 7)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Subscribe(ctx, scope, "P1", 3)
	require.NoError(t, err)
	assert.False(t, created, "Re-subscribing the same triple updates the row")

	list, err := s.List(ctx, scope)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].Slug)
	assert.Equal(t, 3, list[0].DaysBefore)

	require.NoError(t, s.Unsubscribe(ctx, scope, "missing"))
	list, err = s.List(ctx, scope)
	require.NoError(t, err)
	assert.Len(t, list, 1, "Unsubscribing a missing slug leaves the table unchanged")

	require.NoError(t, s.Unsubscribe(ctx, scope, "p1"))
	list, err = s.List(ctx, scope)
	require.NoError(t, err)
	assert.Empty(t, list)
}
