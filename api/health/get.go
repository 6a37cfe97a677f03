package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service liveness, database health and whether a sweep is running.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service is healthy"
// @Failure      503 {object} map[string]interface{} "Database is unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		code := http.StatusOK

		// Add database status
		if deps != nil && deps.DB != nil {
			dbStatus := getDatabaseStatus(deps)
			response["database"] = dbStatus
			if dbStatus["status"] == "unhealthy" {
				response["status"] = "unhealthy"
				code = http.StatusServiceUnavailable
			}
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.SyncService != nil {
			response["sweep_running"] = deps.SyncService.Running()
		}

		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
