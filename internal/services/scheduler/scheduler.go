package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/killallgit/podcast-sync/internal/services/ingest"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs a sweep every hour
const DefaultSchedule = "@every 1h"

// Sweeper runs one pass over every podcast
type Sweeper interface {
	SyncAll(ctx context.Context) (*ingest.SweepReport, error)
}

// Scheduler triggers sweeps on a cron schedule. A tick that fires while the
// previous sweep is still running is skipped.
type Scheduler struct {
	cron       *cron.Cron
	sweeper    Sweeper
	schedule   string
	runOnStart bool
	logger     *zap.Logger

	mu      sync.Mutex
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	entry   cron.EntryID
	started bool
}

// Option is a functional option for configuring the scheduler
type Option func(*Scheduler)

// WithRunOnStart starts a sweep as soon as the scheduler starts
func WithRunOnStart(enabled bool) Option {
	return func(s *Scheduler) {
		s.runOnStart = enabled
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a scheduler for schedule, a standard cron expression or a
// descriptor such as "@every 30m". An empty schedule means DefaultSchedule.
func New(sweeper Sweeper, schedule string, opts ...Option) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &Scheduler{
		sweeper:  sweeper,
		schedule: schedule,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	cronLogger := newCronLogger(s.logger)
	s.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	entry, err := s.cron.AddFunc(schedule, s.tick)
	if err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}
	s.entry = entry
	return s, nil
}

// Start begins firing sweeps. ctx bounds every sweep the scheduler starts.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run("startup")
		}()
	}

	s.cron.Start()
	s.logger.Info("sync scheduler started",
		zap.String("schedule", s.schedule),
		zap.Bool("run_on_start", s.runOnStart))
	return nil
}

// Stop cancels running sweeps and waits for them to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.cancel()
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Info("sync scheduler stopped")
}

// Next returns when the next scheduled sweep fires, zero if not started
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

func (s *Scheduler) tick() {
	s.run("schedule")
}

func (s *Scheduler) run(trigger string) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	report, err := s.sweeper.SyncAll(ctx)
	if err != nil {
		if errors.Is(err, ingest.ErrSweepInProgress) {
			s.logger.Info("sweep skipped, another is running", zap.String("trigger", trigger))
			return
		}
		s.logger.Error("sweep failed", zap.String("trigger", trigger), zap.Error(err))
		return
	}

	s.logger.Debug("scheduled sweep done",
		zap.String("trigger", trigger),
		zap.String("run_id", report.RunID),
		zap.Int("podcasts", report.Podcasts))
}
