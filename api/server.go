package api

import (
	"net/http"

	"sitecast/orchestrator"
	"sitecast/queue"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes. The queue
// producer is optional; when nil, async job submission is disabled.
func NewRouter(pipeline *orchestrator.Pipeline, producer *queue.Producer) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterExtractRoutes(r, pipeline)
	RegisterAudioRoutes(r, pipeline)
	RegisterPipelineRoutes(r, pipeline, producer)
	RegisterHealthRoutes(r)
	return r
}

// RegisterHealthRoutes registers liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
