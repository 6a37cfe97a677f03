package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/killallgit/podcast-sync/internal/database"
	"github.com/killallgit/podcast-sync/internal/services/episodes"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/killallgit/podcast-sync/internal/services/ingest"
	"github.com/killallgit/podcast-sync/internal/services/media"
	"github.com/killallgit/podcast-sync/internal/services/podcasts"
	"github.com/killallgit/podcast-sync/pkg/config"
)

// pipeline is the wired ingest stack shared by serve and sync
type pipeline struct {
	db           *database.DB
	podcasts     *podcasts.Repository
	episodes     *episodes.Repository
	orchestrator *ingest.Orchestrator
}

// openDatabase connects and migrates the configured database
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// buildPipeline wires fetcher, matcher, writer and resolver over db
func buildPipeline(cfg *config.Config, db *database.DB, log *zap.Logger) *pipeline {
	podcastRepo := podcasts.NewRepository(db.DB)
	episodeRepo := episodes.NewRepository(db.DB)

	fetcher := feeds.NewFetcher(cfg.Ingest.FeedTimeout,
		feeds.WithUserAgent(cfg.Ingest.UserAgent),
		feeds.WithHostThrottle(feeds.NewHostThrottle(cfg.Ingest.HostInterval)),
		feeds.WithLogger(log.Named("feeds")),
	)

	prober := media.NewHTTPProber(cfg.Media.ProbeTimeout,
		media.WithProbeUserAgent(cfg.Ingest.UserAgent),
	)
	resolver := media.NewResolver(prober, episodeRepo, podcastRepo,
		media.WithProbing(cfg.Media.ProbeEnabled),
		media.WithLogger(log.Named("media")),
	)

	orchestrator := ingest.NewOrchestrator(
		fetcher,
		episodes.NewMatcher(episodeRepo, log.Named("matcher")),
		episodes.NewWriter(episodeRepo, resolver, log.Named("writer")),
		podcastRepo,
		ingest.WithItemLimit(cfg.Ingest.ItemLimit),
		ingest.WithBatchSize(cfg.Ingest.BatchSize),
		ingest.WithConcurrency(cfg.Ingest.Concurrency),
		ingest.WithLogger(log.Named("ingest")),
	)

	return &pipeline{
		db:           db,
		podcasts:     podcastRepo,
		episodes:     episodeRepo,
		orchestrator: orchestrator,
	}
}
