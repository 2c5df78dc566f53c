package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestScheduler_StartRunsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifierService(ctrl)

	done := make(chan struct{})
	notifier.EXPECT().CheckUpcoming(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
		close(done)
		return 2
	}).Times(1)

	s := New(notifier, time.Hour)
	s.Start()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first check did not run on start")
	}

	s.Stop()
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifierService(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	notifier.EXPECT().CheckUpcoming(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
		close(started)
		<-release
		return 0
	}).Times(1)

	s := New(notifier, time.Hour)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.job.Run()
	}()
	<-started

	// returns at once because a check is in progress
	s.job.Run()

	close(release)
	wg.Wait()
}

func TestScheduler_StopWaitsForRunningCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifierService(ctrl)

	started := make(chan struct{})
	var finished bool
	notifier.EXPECT().CheckUpcoming(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished = true
		return 0
	}).Times(1)

	s := New(notifier, time.Hour)
	s.Start()
	<-started

	s.Stop()
	assert.True(t, finished)
}
