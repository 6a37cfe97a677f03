package episodes

import (
	"context"

	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
)

// EpisodeRepository defines the interface for episode data persistence
type EpisodeRepository interface {
	// Create/Update
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	UpdatePublishedAt(ctx context.Context, episode *models.Episode) error
	UpdateMediaURL(ctx context.Context, episode *models.Episode, mediaURL string) error

	// Identity lookups, scoped to one podcast
	FindBy(ctx context.Context, podcastID uint, field LookupField, value string) ([]models.Episode, error)

	// Read
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error)
}

// MediaResolver picks the playable media URL for an episode
type MediaResolver interface {
	// ResolveForCreate returns the media URL for a new episode; it never fails
	ResolveForCreate(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) string
	// UpgradeTransport switches an existing episode to the item's https enclosure when possible
	UpgradeTransport(ctx context.Context, episode *models.Episode, item feeds.RawFeedItem) error
}

// EpisodeMatcher finds stored episodes that represent a feed item
type EpisodeMatcher interface {
	FindMatches(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) ([]models.Episode, error)
}

// EpisodeWriter creates and heals episodes from feed items
type EpisodeWriter interface {
	CreateFrom(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) (*models.Episode, error)
	UpdateFrom(ctx context.Context, episode *models.Episode, item feeds.RawFeedItem, podcast *models.Podcast) error
}
