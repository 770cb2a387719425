package api

import (
	"net/http"

	"sitecast/orchestrator"

	"github.com/gin-gonic/gin"
)

// ExtractRequest is the payload for a standalone extraction call.
type ExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

// RegisterExtractRoutes registers content extraction routes.
func RegisterExtractRoutes(r *gin.Engine, pipeline *orchestrator.Pipeline) {
	r.POST("/api/extract", handleExtract(pipeline))
}

// handleExtract runs extraction and branding for a single URL and
// returns the enriched site record.
func handleExtract(pipeline *orchestrator.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		site, err := pipeline.ExtractURLContent(c.Request.Context(), req.URL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, site)
	}
}
