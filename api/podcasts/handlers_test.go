package podcasts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	"github.com/killallgit/podcast-sync/internal/database"
	"github.com/killallgit/podcast-sync/internal/models"
	"github.com/killallgit/podcast-sync/internal/services/episodes"
	"github.com/killallgit/podcast-sync/internal/services/feeds"
	"github.com/killallgit/podcast-sync/internal/services/ingest"
	podcastsService "github.com/killallgit/podcast-sync/internal/services/podcasts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSyncService is a mock implementation of types.SyncService
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) SyncPodcastByID(ctx context.Context, podcastID uint, limit int) (ingest.SyncReport, error) {
	args := m.Called(ctx, podcastID, limit)
	return args.Get(0).(ingest.SyncReport), args.Error(1)
}

func (m *MockSyncService) SyncAllAsync(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSyncService) Running() bool {
	return m.Called().Bool(0)
}

func (m *MockSyncService) LastSweep() *ingest.SweepReport {
	return nil
}

type testServer struct {
	router  *gin.Engine
	deps    *types.Dependencies
	sync    *MockSyncService
	podcast *models.Podcast
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "api.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	podcastRepo := podcastsService.NewRepository(db.DB)
	episodeRepo := episodes.NewRepository(db.DB)

	ctx := context.Background()
	podcast := &models.Podcast{Title: "Show", FeedURL: "https://feeds.example.com/show.xml"}
	require.NoError(t, podcastRepo.CreatePodcast(ctx, podcast))

	for i := 1; i <= 3; i++ {
		episode := &models.Episode{
			PodcastID: podcast.ID,
			Title:     fmt.Sprintf("Episode %d", i),
			Slug:      fmt.Sprintf("episode-%d", i),
			MediaURL:  fmt.Sprintf("https://m/%d.mp3", i),
		}
		if i < 3 {
			published := time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC)
			episode.PublishedAt = &published
		}
		require.NoError(t, episodeRepo.CreateEpisode(ctx, episode))
	}

	svc := new(MockSyncService)
	deps := &types.Dependencies{
		DB:          db,
		Podcasts:    podcastRepo,
		Episodes:    episodeRepo,
		SyncService: svc,
	}

	router := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router.Group("/api/v1/podcasts"), deps, noop, noop)

	return &testServer{router: router, deps: deps, sync: svc, podcast: podcast}
}

func (s *testServer) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestGetPodcast(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d", s.podcast.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var body types.SinglePodcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Podcast)
	assert.Equal(t, "Show", body.Podcast.Title)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/podcasts/999").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/podcasts/abc").Code)
}

func TestGetEpisodesForPodcast(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d/episodes", s.podcast.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var body types.EpisodesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, int64(3), body.Total)
	require.Len(t, body.Episodes, 3)
	assert.Equal(t, "Episode 2", body.Episodes[0].Title)
	assert.Equal(t, "2024-01-02", body.Episodes[0].PublishedAt)
	assert.Equal(t, "Episode 1", body.Episodes[1].Title)
	assert.Equal(t, "Episode 3", body.Episodes[2].Title)
	assert.Empty(t, body.Episodes[2].PublishedAt)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d/episodes?max=2&page=2", s.podcast.ID))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, 2, body.Page)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/podcasts/999/episodes").Code)
}

func TestPostSync(t *testing.T) {
	t.Run("returns the report", func(t *testing.T) {
		s := setupServer(t)
		s.sync.On("SyncPodcastByID", mock.Anything, s.podcast.ID, 50).
			Return(ingest.SyncReport{PodcastID: s.podcast.ID, ItemsSeen: 5, ItemsProcessed: 3, Created: 2, Updated: 1}, nil)

		w := s.do(http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/sync?max=50", s.podcast.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var body types.SyncResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, types.StatusOK, body.Status)
		assert.Equal(t, "Synced 3 of 5 feed items", body.Message)
		assert.Equal(t, 5, body.Report.ItemsSeen)
		assert.Equal(t, 2, body.Report.Created)
		s.sync.AssertExpectations(t)
	})

	t.Run("default limit", func(t *testing.T) {
		s := setupServer(t)
		s.sync.On("SyncPodcastByID", mock.Anything, s.podcast.ID, feeds.DefaultItemLimit).
			Return(ingest.SyncReport{PodcastID: s.podcast.ID}, nil)

		w := s.do(http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/sync?max=0", s.podcast.ID))
		assert.Equal(t, http.StatusOK, w.Code)
		s.sync.AssertExpectations(t)
	})

	t.Run("feed failure is reported, not an HTTP error", func(t *testing.T) {
		s := setupServer(t)
		report := ingest.SyncReport{PodcastID: s.podcast.ID, Err: feeds.ErrParse, Error: feeds.ErrParse.Error()}
		s.sync.On("SyncPodcastByID", mock.Anything, s.podcast.ID, mock.Anything).Return(report, nil)

		w := s.do(http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/sync", s.podcast.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var body types.SyncResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, types.StatusError, body.Status)
		assert.Equal(t, feeds.ErrParse.Error(), body.Report.Error)
	})

	t.Run("unknown podcast", func(t *testing.T) {
		s := setupServer(t)
		s.sync.On("SyncPodcastByID", mock.Anything, uint(999), mock.Anything).
			Return(ingest.SyncReport{}, podcastsService.NotFoundError{ID: uint(999)})

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/podcasts/999/sync").Code)
	})

	t.Run("storage error", func(t *testing.T) {
		s := setupServer(t)
		s.sync.On("SyncPodcastByID", mock.Anything, s.podcast.ID, mock.Anything).
			Return(ingest.SyncReport{}, errors.New("database is locked"))

		assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/sync", s.podcast.ID)).Code)
	})
}
