package types

import (
	"context"

	"github.com/killallgit/podcast-sync/internal/database"
	"github.com/killallgit/podcast-sync/internal/services/episodes"
	"github.com/killallgit/podcast-sync/internal/services/ingest"
	"github.com/killallgit/podcast-sync/internal/services/podcasts"
	"go.uber.org/zap"
)

// SyncService is the part of the ingest orchestrator the handlers use
type SyncService interface {
	SyncPodcastByID(ctx context.Context, podcastID uint, limit int) (ingest.SyncReport, error)
	SyncAllAsync(ctx context.Context) (string, error)
	Running() bool
	LastSweep() *ingest.SweepReport
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB          *database.DB
	Podcasts    podcasts.PodcastRepository
	Episodes    episodes.EpisodeRepository
	SyncService SyncService
	Logger      *zap.Logger

	// BaseContext outlives single requests; background sweeps run under it
	BaseContext context.Context
}

// Log returns the configured logger or a no-op one
func (d *Dependencies) Log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Background returns the context for work that outlives a request
func (d *Dependencies) Background() context.Context {
	if d == nil || d.BaseContext == nil {
		return context.Background()
	}
	return d.BaseContext
}
