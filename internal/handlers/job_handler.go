package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

type JobHandler struct {
	Matcher *services.MatcherService
}

func NewJobHandler(matcher *services.MatcherService) *JobHandler {
	return &JobHandler{Matcher: matcher}
}

// Recommendations is the GET /jobs/recommendations endpoint: the job
// catalog ranked against the caller's skills, top ten only.
func (h *JobHandler) Recommendations(c *gin.Context) {
	matches, err := h.Matcher.RecommendJobs(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to match jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": matches})
}
