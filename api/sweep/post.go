package sweep

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
	"github.com/killallgit/podcast-sync/internal/services/ingest"
	"go.uber.org/zap"
)

// PostSweep starts a sweep over every podcast in the background
// @Summary      Start a sweep
// @Description  Sync every podcast in the background. Only one sweep runs at a time.
// @Tags         sync
// @Produce      json
// @Success      202 {object} types.SweepAcceptedResponse "Sweep started"
// @Failure      409 {object} types.ErrorResponse "A sweep is already running"
// @Failure      500 {object} types.ErrorResponse "Failed to start sweep"
// @Router       /api/v1/sync [post]
func PostSweep(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID, err := deps.SyncService.SyncAllAsync(deps.Background())
		if err != nil {
			if errors.Is(err, ingest.ErrSweepInProgress) {
				types.SendConflict(c, "A sweep is already running")
				return
			}
			deps.Log().Error("failed to start sweep", zap.Error(err))
			types.SendInternalError(c, "Failed to start sweep")
			return
		}

		deps.Log().Info("sweep requested over HTTP", zap.String("run_id", runID), zap.String("client_ip", c.ClientIP()))
		types.SendAccepted(c, types.SweepAcceptedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusAccepted,
				Message: "Sweep started",
			},
			RunID: runID,
		})
	}
}
