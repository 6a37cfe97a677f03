package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	"github.com/killallgit/podcast-sync/internal/services/ingest"
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
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*ingest.SweepReport)
}

func setupRouter(svc types.SyncService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router.Group("/api/v1/sync"), &types.Dependencies{SyncService: svc}, noop, noop)
	return router
}

func TestPostSweep(t *testing.T) {
	tests := []struct {
		name       string
		runID      string
		err        error
		wantStatus int
	}{
		{name: "accepted", runID: "run-1", wantStatus: http.StatusAccepted},
		{name: "already running", err: ingest.ErrSweepInProgress, wantStatus: http.StatusConflict},
		{name: "unexpected error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSyncService)
			svc.On("SyncAllAsync", mock.Anything).Return(tt.runID, tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
			setupRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusAccepted {
				var body types.SweepAcceptedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "run-1", body.RunID)
				assert.Equal(t, types.StatusAccepted, body.Status)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestGetStatus(t *testing.T) {
	t.Run("idle with last sweep", func(t *testing.T) {
		svc := new(MockSyncService)
		svc.On("Running").Return(false)
		svc.On("LastSweep").Return(&ingest.SweepReport{RunID: "run-0", Podcasts: 4})

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sync", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body types.SweepStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Running)
		assert.Equal(t, types.StatusIdle, body.Status)
		require.NotNil(t, body.LastSweep)
		assert.Equal(t, 4, body.LastSweep.Podcasts)
	})

	t.Run("running", func(t *testing.T) {
		svc := new(MockSyncService)
		svc.On("Running").Return(true)
		svc.On("LastSweep").Return(nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sync", nil))

		var body types.SweepStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Running)
		assert.Nil(t, body.LastSweep)
	})
}
