package podcasts

import (
	"context"
	"time"

	"github.com/killallgit/podcast-sync/internal/models"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	// Create/Update
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error

	// Read
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetPodcastByFeedURL(ctx context.Context, feedURL string) (*models.Podcast, error)

	// List
	ListPodcasts(ctx context.Context, page, limit int) ([]models.Podcast, int64, error)
	FindInBatches(ctx context.Context, batchSize int, fn func(batch []models.Podcast) error) error

	// Sync bookkeeping
	SetStatusNoticeIfEmpty(ctx context.Context, podcast *models.Podcast, notice string) (bool, error)
	RecordSync(ctx context.Context, podcastID uint, syncedAt time.Time, itemCount int, syncErr error) error
}
