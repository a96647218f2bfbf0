package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/dtos"
	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

type CourseHandler struct {
	Courses *services.CourseService
}

func NewCourseHandler(courses *services.CourseService) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

// List is the GET /courses endpoint: the whole catalog merged with the
// caller's progress.
func (h *CourseHandler) List(c *gin.Context) {
	views, err := h.Courses.ListWithProgress(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": views})
}

// UpdateProgress is the POST /progress/update endpoint.
func (h *CourseHandler) UpdateProgress(c *gin.Context) {
	var req dtos.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	progress, err := h.Courses.UpdateProgress(middleware.UserID(c), req.CourseID, req.ProgressPercentage)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown course"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": progress.ProgressPercentage})
}
