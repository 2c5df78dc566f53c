package scheduler

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic notification check. Runs never overlap: a
// tick arriving while a check is still in progress is skipped.
type Scheduler struct {
	notifier contract.NotifierService
	interval time.Duration
	cron     *cron.Cron
	job      cron.Job
	entryID  cron.EntryID
	initial  sync.WaitGroup
}

func New(notifier contract.NotifierService, interval time.Duration) *Scheduler {
	logger := cron.VerbosePrintfLogger(log.New(os.Stderr, "scheduler: ", log.LstdFlags))

	s := &Scheduler{
		notifier: notifier,
		interval: interval,
		cron:     cron.New(cron.WithLogger(logger)),
	}

	// The same wrapped job serves the first run and every tick, so they
	// share one in-progress guard.
	s.job = cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).
		Then(cron.FuncJob(s.check))
	s.entryID = s.cron.Schedule(cron.Every(interval), s.job)

	return s
}

// Start begins ticking and triggers a first check right away.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("Scheduler started: checking upcoming evaluations every %s", s.interval)

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.job.Run()
	}()
}

// Stop halts the ticks and waits for a running check to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
	log.Println("Scheduler stopped")
}

func (s *Scheduler) check() {
	sent := s.notifier.CheckUpcoming(context.Background())

	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		log.Printf("Periodic check finished: %d notification(s) sent", sent)
		return
	}
	log.Printf("Periodic check finished: %d notification(s) sent, next check %s", sent, humanize.Time(next))
}
