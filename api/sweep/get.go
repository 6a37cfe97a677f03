package sweep

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
)

// GetStatus reports whether a sweep is running and how the last one ended
// @Summary      Sweep status
// @Tags         sync
// @Produce      json
// @Success      200 {object} types.SweepStatusResponse "Sweep status"
// @Router       /api/v1/sync [get]
func GetStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		running := deps.SyncService.Running()

		status, message := types.StatusIdle, "No sweep is running"
		if running {
			status, message = types.StatusRunning, "A sweep is running"
		}

		types.SendSuccess(c, types.SweepStatusResponse{
			BaseResponse: types.BaseResponse{Status: status, Message: message},
			Running:      running,
			LastSweep:    deps.SyncService.LastSweep(),
		})
	}
}
