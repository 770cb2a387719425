package api

import (
	"net/http"

	"sitecast/orchestrator"

	"github.com/gin-gonic/gin"
)

// AudioRequest is the payload for a standalone audio generation call.
type AudioRequest struct {
	Script     string  `json:"script" binding:"required"`
	MusicStyle string  `json:"musicStyle"`
	Duration   float64 `json:"duration"`
}

// RegisterAudioRoutes registers audio generation routes.
func RegisterAudioRoutes(r *gin.Engine, pipeline *orchestrator.Pipeline) {
	r.POST("/api/audio", handleGenerateAudio(pipeline))
}

// handleGenerateAudio produces music, narration, and beat markers for
// a script without running extraction.
func handleGenerateAudio(pipeline *orchestrator.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AudioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bundle := pipeline.GenerateAudio(c.Request.Context(), req.MusicStyle, req.Script, req.Duration)
		c.JSON(http.StatusOK, bundle)
	}
}
