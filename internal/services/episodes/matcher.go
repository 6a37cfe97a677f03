package episodes

import (
	"context"

	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"go.uber.org/zap"
)

// Strategy is one identity rule for recognising a feed item among stored episodes
type Strategy struct {
	Name    string
	Field   LookupField
	Value   func(item feeds.RawFeedItem) string
	Applies func(podcast *models.Podcast) bool // nil means always
}

// DefaultStrategies returns the identity rules in priority order:
// media URL, title, GUID, then website URL for podcasts that flag it as unique.
//
// An item without a GUID is looked up with "" and so matches stored episodes
// that also lack one. Existing data depends on this, so it is kept as is.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:  "media_url",
			Field: FieldMediaURL,
			Value: func(item feeds.RawFeedItem) string { return item.EnclosureURL },
		},
		{
			Name:  "title",
			Field: FieldTitle,
			Value: func(item feeds.RawFeedItem) string { return item.Title },
		},
		{
			Name:  "guid",
			Field: FieldGUID,
			Value: func(item feeds.RawFeedItem) string { return item.GUID },
		},
		{
			Name:  "website_url",
			Field: FieldWebsiteURL,
			Value: func(item feeds.RawFeedItem) string { return item.Link },
			Applies: func(podcast *models.Podcast) bool {
				return podcast.UniqueWebsiteURL
			},
		},
	}
}

// Matcher evaluates strategies in order and stops at the first that finds episodes
type Matcher struct {
	repo       EpisodeRepository
	strategies []Strategy
	logger     *zap.Logger
}

// Ensure Matcher implements EpisodeMatcher interface
var _ EpisodeMatcher = (*Matcher)(nil)

func NewMatcher(repo EpisodeRepository, logger *zap.Logger, strategies ...Strategy) *Matcher {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{repo: repo, strategies: strategies, logger: logger}
}

// FindMatches returns the episodes found by the first strategy with a non-empty
// result, or nil when the item is new to the podcast
func (m *Matcher) FindMatches(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) ([]models.Episode, error) {
	for _, s := range m.strategies {
		if s.Applies != nil && !s.Applies(podcast) {
			continue
		}

		found, err := m.repo.FindBy(ctx, podcast.ID, s.Field, s.Value(item))
		if err != nil {
			return nil, newPersistenceError("lookup", item.Title, err)
		}
		if len(found) > 0 {
			m.logger.Debug("feed item matched",
				zap.Uint("podcast_id", podcast.ID),
				zap.String("title", item.Title),
				zap.String("strategy", s.Name),
				zap.Int("matches", len(found)))
			return found, nil
		}
	}
	return nil, nil
}
