package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-sync/api/types"
)

// RegisterRoutes registers podcast routes
// Rate limiting is applied at the route registration level
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, readMiddleware, syncMiddleware gin.HandlerFunc) {
	// GET /api/v1/podcasts/:id - Podcast with its sync state
	router.GET("/:id", readMiddleware, GetPodcast(deps))

	// GET /api/v1/podcasts/:id/episodes - Stored episodes
	router.GET("/:id/episodes", readMiddleware, GetEpisodesForPodcast(deps))

	// POST /api/v1/podcasts/:id/sync - Sync one podcast now
	router.POST("/:id/sync", syncMiddleware, PostSync(deps))
}
