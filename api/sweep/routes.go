package sweep

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
)

// RegisterRoutes registers sweep routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, readMiddleware, sweepMiddleware gin.HandlerFunc) {
	// GET /api/v1/sync - Sweep status
	router.GET("", readMiddleware, GetStatus(deps))

	// POST /api/v1/sync - Start a background sweep
	router.POST("", sweepMiddleware, PostSweep(deps))
}
