package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	buildinfo "github.com/killallgit/podcast-sync/pkg/version"
)

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version information"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		info := buildinfo.Get()
		c.JSON(http.StatusOK, gin.H{
			"name":        info.Name,
			"version":     info.Version,
			"git_commit":  info.GitCommit,
			"description": "Keeps stored podcast episodes in step with their RSS feeds",
			"status":      "running",
		})
	}
}
