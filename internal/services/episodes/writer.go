package episodes

import (
	"context"
	"errors"
	"strings"

	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

var errMissingMediaURL = errors.New("no media URL for episode")

// Writer turns feed items into stored episodes
type Writer struct {
	repo     EpisodeRepository
	media    MediaResolver
	sanitize *bluemonday.Policy
	logger   *zap.Logger
}

// Ensure Writer implements EpisodeWriter interface
var _ EpisodeWriter = (*Writer)(nil)

func NewWriter(repo EpisodeRepository, media MediaResolver, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		repo:     repo,
		media:    media,
		sanitize: bluemonday.UGCPolicy(),
		logger:   logger,
	}
}

// CreateFrom stores a new episode for item. An unreadable publish date only
// leaves PublishedAt nil; the returned error is always a *PersistenceError.
func (w *Writer) CreateFrom(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) (*models.Episode, error) {
	episode := &models.Episode{
		PodcastID:  podcast.ID,
		Title:      item.Title,
		Slug:       Slugify(item.Title),
		Subtitle:   item.Subtitle,
		Summary:    item.Summary,
		WebsiteURL: item.Link,
		GUID:       item.GUID,
		Body:       w.body(item),
	}

	episode.MediaURL = w.media.ResolveForCreate(ctx, item, podcast)
	if episode.MediaURL == "" {
		return nil, newPersistenceError("create", item.Title, errMissingMediaURL)
	}

	if published, err := ParsePublishedDate(item.PublishedDate, item.PublishedParsed); err != nil {
		w.logger.Warn("not a valid publish date",
			zap.Uint("podcast_id", podcast.ID),
			zap.String("title", item.Title),
			zap.Error(err))
	} else {
		episode.PublishedAt = &published
	}

	if err := w.repo.CreateEpisode(ctx, episode); err != nil {
		return nil, newPersistenceError("create", item.Title, err)
	}
	return episode, nil
}

// UpdateFrom heals an existing episode: it fills a missing publish date and
// upgrades the media URL to https. No other field is touched.
func (w *Writer) UpdateFrom(ctx context.Context, episode *models.Episode, item feeds.RawFeedItem, podcast *models.Podcast) error {
	var persistErr error

	if episode.PublishedAt == nil {
		published, err := ParsePublishedDate(item.PublishedDate, item.PublishedParsed)
		if err != nil {
			w.logger.Warn("not a valid publish date",
				zap.Uint("podcast_id", podcast.ID),
				zap.Uint("episode_id", episode.ID),
				zap.Error(err))
		} else {
			episode.PublishedAt = &published
			if err := w.repo.UpdatePublishedAt(ctx, episode); err != nil {
				episode.PublishedAt = nil
				persistErr = newPersistenceError("update", episode.Title, err)
			}
		}
	}

	if err := w.media.UpgradeTransport(ctx, episode, item); err != nil {
		w.logger.Warn("media URL upgrade failed",
			zap.Uint("podcast_id", podcast.ID),
			zap.Uint("episode_id", episode.ID),
			zap.String("media_url", episode.MediaURL),
			zap.Error(err))
	}

	return persistErr
}

// body picks rich content, then the iTunes summary, then the description
func (w *Writer) body(item feeds.RawFeedItem) string {
	for _, candidate := range []string{item.RichContent, item.Summary, item.Description} {
		if strings.TrimSpace(candidate) != "" {
			return w.sanitize.Sanitize(candidate)
		}
	}
	return ""
}
