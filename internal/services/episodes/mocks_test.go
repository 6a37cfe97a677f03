package episodes

import (
	"context"

	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of EpisodeRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockRepository) UpdatePublishedAt(ctx context.Context, episode *models.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockRepository) UpdateMediaURL(ctx context.Context, episode *models.Episode, mediaURL string) error {
	args := m.Called(ctx, episode, mediaURL)
	return args.Error(0)
}

func (m *MockRepository) FindBy(ctx context.Context, podcastID uint, field LookupField, value string) ([]models.Episode, error) {
	args := m.Called(ctx, podcastID, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockRepository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockRepository) GetEpisodesByPodcastID(ctx context.Context, podcastID uint, page, limit int) ([]models.Episode, int64, error) {
	args := m.Called(ctx, podcastID, page, limit)
	return args.Get(0).([]models.Episode), args.Get(1).(int64), args.Error(2)
}

// MockMediaResolver is a mock implementation of MediaResolver
type MockMediaResolver struct {
	mock.Mock
}

func (m *MockMediaResolver) ResolveForCreate(ctx context.Context, item feeds.RawFeedItem, podcast *models.Podcast) string {
	args := m.Called(ctx, item, podcast)
	return args.String(0)
}

func (m *MockMediaResolver) UpgradeTransport(ctx context.Context, episode *models.Episode, item feeds.RawFeedItem) error {
	args := m.Called(ctx, episode, item)
	return args.Error(0)
}
