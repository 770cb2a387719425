package api

import (
	"net/http"

	"sitecast/orchestrator"
	"sitecast/queue"

	"github.com/gin-gonic/gin"
)

// PipelineRequest is the payload for a full pipeline run.
type PipelineRequest struct {
	URL        string  `json:"url" binding:"required"`
	MusicStyle string  `json:"musicStyle"`
	Duration   float64 `json:"duration"`
	Async      bool    `json:"async"`
}

// RegisterPipelineRoutes registers full pipeline routes.
func RegisterPipelineRoutes(r *gin.Engine, pipeline *orchestrator.Pipeline, producer *queue.Producer) {
	r.POST("/api/pipeline", handleRunPipeline(pipeline, producer))
}

// handleRunPipeline runs the full URL-to-render-props pipeline. When
// async is requested and a queue producer is configured, the job is
// enqueued instead and the handler returns immediately.
func handleRunPipeline(pipeline *orchestrator.Pipeline, producer *queue.Producer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PipelineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Async {
			if producer == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job queue is not configured"})
				return
			}
			job, err := producer.Submit(queue.Job{URL: req.URL, MusicStyle: req.MusicStyle, Duration: req.Duration})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusAccepted, gin.H{"status": "queued", "jobId": job.ID})
			return
		}

		result, err := pipeline.Run(c.Request.Context(), req.URL, req.MusicStyle, req.Duration)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
