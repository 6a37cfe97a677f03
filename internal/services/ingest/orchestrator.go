package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/podcast-sync/internal/metrics"
	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/episodes"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/killallgit/podcast-sync/internal/services/podcasts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Defaults used when an option is zero or negative
const (
	DefaultBatchSize   = 100
	DefaultConcurrency = 1
)

// Orchestrator reconciles podcast feeds against stored episodes
type Orchestrator struct {
	fetcher  feeds.FeedFetcher
	matcher  episodes.EpisodeMatcher
	writer   episodes.EpisodeWriter
	podcasts podcasts.PodcastRepository
	logger   *zap.Logger

	itemLimit   int
	batchSize   int
	concurrency int

	running   atomic.Bool
	mu        sync.RWMutex
	lastSweep *SweepReport
}

// Option is a functional option for configuring the orchestrator
type Option func(*Orchestrator)

// WithItemLimit caps the items read from each feed
func WithItemLimit(limit int) Option {
	return func(o *Orchestrator) {
		if limit > 0 {
			o.itemLimit = limit
		}
	}
}

// WithBatchSize sets how many podcasts are loaded per batch during a sweep
func WithBatchSize(size int) Option {
	return func(o *Orchestrator) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithConcurrency sets how many podcasts a sweep syncs at once
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewOrchestrator(
	fetcher feeds.FeedFetcher,
	matcher episodes.EpisodeMatcher,
	writer episodes.EpisodeWriter,
	podcastRepo podcasts.PodcastRepository,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		fetcher:     fetcher,
		matcher:     matcher,
		writer:      writer,
		podcasts:    podcastRepo,
		logger:      zap.NewNop(),
		itemLimit:   feeds.DefaultItemLimit,
		batchSize:   DefaultBatchSize,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SyncOne syncs a single podcast and returns the number of items its feed
// published, including any beyond limit
func (o *Orchestrator) SyncOne(ctx context.Context, podcast *models.Podcast, limit int) (int, error) {
	report := o.Sync(ctx, podcast, limit)
	return report.ItemsSeen, report.Err
}

// Sync fetches the podcast's feed and creates or heals one episode per item,
// in feed order. A failing item is counted and skipped; a feed that cannot be
// fetched yields an empty report carrying the error. Sync never panics.
func (o *Orchestrator) Sync(ctx context.Context, podcast *models.Podcast, limit int) (report SyncReport) {
	start := time.Now()
	report = SyncReport{PodcastID: podcast.ID, FeedURL: podcast.FeedURL}
	if limit <= 0 {
		limit = o.itemLimit
	}

	log := o.logger.With(zap.Uint("podcast_id", podcast.ID), zap.String("feed_url", podcast.FeedURL))

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while syncing podcast", zap.Any("panic", r), zap.Stack("stack"))
			report.fail(fmt.Errorf("panic syncing podcast %d: %v", podcast.ID, r))
		}
		report.Duration = time.Since(start)
		o.finish(ctx, podcast, &report, log)
	}()

	result, err := o.fetcher.Fetch(ctx, podcast.FeedURL, limit)
	if err != nil {
		log.Warn("feed unavailable", zap.String("kind", feeds.Kind(err)), zap.Error(err))
		report.fail(err)
		return report
	}
	report.ItemsSeen = result.Total
	report.ItemsProcessed = len(result.Items)

	for _, item := range result.Items {
		if err := ctx.Err(); err != nil {
			report.fail(err)
			break
		}

		outcome, err := o.processItem(ctx, item, podcast)
		report.count(outcome)
		metrics.RecordItem(outcome)
		if err != nil {
			log.Warn("feed item failed",
				zap.String("title", item.Title),
				zap.String("guid", item.GUID),
				zap.Error(err))
		}
	}

	return report
}

func (o *Orchestrator) processItem(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) (string, error) {
	if strings.TrimSpace(item.EnclosureURL) == "" {
		o.logger.Debug("feed item has no enclosure",
			zap.Uint("podcast_id", podcast.ID),
			zap.String("title", item.Title))
		return OutcomeSkipped, nil
	}

	matches, err := o.matcher.FindMatches(ctx, item, podcast)
	if err != nil {
		return OutcomeFailed, err
	}

	if len(matches) == 0 {
		if _, err := o.writer.CreateFrom(ctx, item, podcast); err != nil {
			return OutcomeFailed, err
		}
		return OutcomeCreated, nil
	}

	if err := o.writer.UpdateFrom(ctx, &matches[0], item, podcast); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeUpdated, nil
}

// finish records bookkeeping and metrics for a finished sync
func (o *Orchestrator) finish(ctx context.Context, podcast *models.Podcast, report *SyncReport, log *zap.Logger) {
	result := "ok"
	switch {
	case report.Err == nil:
	case errors.Is(report.Err, context.Canceled), errors.Is(report.Err, context.DeadlineExceeded):
		result = "cancelled"
	default:
		result = feeds.Kind(report.Err)
	}
	metrics.RecordPodcastSync(result, report.Duration.Seconds())

	// bookkeeping survives a cancelled sweep
	if err := o.podcasts.RecordSync(context.WithoutCancel(ctx), podcast.ID, time.Now().UTC(), report.ItemsSeen, report.Err); err != nil {
		log.Warn("failed to record sync", zap.Error(err))
	}

	log.Info("podcast synced",
		zap.String("result", result),
		zap.Int("items", report.ItemsSeen),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration))
}

// SyncPodcastByID loads a podcast and syncs it
func (o *Orchestrator) SyncPodcastByID(ctx context.Context, podcastID uint, limit int) (SyncReport, error) {
	podcast, err := o.podcasts.GetPodcastByID(ctx, podcastID)
	if err != nil {
		return SyncReport{}, err
	}
	return o.Sync(ctx, podcast, limit), nil
}

// Running reports whether a sweep is in progress
func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

// LastSweep returns the report of the most recent finished sweep, or nil
func (o *Orchestrator) LastSweep() *SweepReport {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastSweep
}

// SyncAll syncs every podcast, batch by batch. Cancelling ctx stops the sweep
// between podcasts; the next sweep picks up whatever was missed.
func (o *Orchestrator) SyncAll(ctx context.Context) (*SweepReport, error) {
	if !o.running.CompareAndSwap(false, true) {
		return nil, ErrSweepInProgress
	}
	defer o.running.Store(false)

	return o.sweep(ctx, uuid.NewString()), nil
}

// SyncAllAsync starts a sweep in the background and returns its run ID
func (o *Orchestrator) SyncAllAsync(ctx context.Context) (string, error) {
	if !o.running.CompareAndSwap(false, true) {
		return "", ErrSweepInProgress
	}

	runID := uuid.NewString()
	go func() {
		defer o.running.Store(false)
		o.sweep(ctx, runID)
	}()
	return runID, nil
}

func (o *Orchestrator) sweep(ctx context.Context, runID string) *SweepReport {
	report := &SweepReport{RunID: runID, StartedAt: time.Now().UTC()}
	log := o.logger.With(zap.String("run_id", runID))
	log.Info("sweep started", zap.Int("batch_size", o.batchSize), zap.Int("concurrency", o.concurrency))
	metrics.SweepStarted()

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(o.concurrency)

	err := o.podcasts.FindInBatches(ctx, o.batchSize, func(batch []models.Podcast) error {
		for i := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			podcast := &batch[i]
			g.Go(func() error {
				// cancelled while waiting for a free slot
				if ctx.Err() != nil {
					return nil
				}
				r := o.Sync(ctx, podcast, 0)
				mu.Lock()
				report.add(r)
				mu.Unlock()
				return nil
			})
		}
		return nil
	})
	_ = g.Wait()

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			report.Cancelled = true
		} else {
			report.Error = err.Error()
			log.Error("sweep aborted", zap.Error(err))
		}
	}

	report.Duration = time.Since(report.StartedAt)
	metrics.SweepFinished(report.Duration.Seconds())

	log.Info("sweep finished",
		zap.Int("podcasts", report.Podcasts),
		zap.Int("failed_podcasts", report.FailedPodcasts),
		zap.Int("items", report.Items),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("failed_items", report.FailedItems),
		zap.Bool("cancelled", report.Cancelled),
		zap.Duration("duration", report.Duration))

	o.mu.Lock()
	o.lastSweep = report
	o.mu.Unlock()
	return report
}
