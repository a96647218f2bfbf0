package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/assessment"
	"github.com/careernav/backend/internal/dtos"
	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

type AssessmentHandler struct {
	Assessments *services.AssessmentService
}

func NewAssessmentHandler(assessments *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Assessments: assessments}
}

// Questions is the GET /assessment/questions endpoint.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.Assessments.Questions()})
}

// Submit is the POST /assessment/submit endpoint.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req dtos.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	answers := make([]assessment.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, assessment.Answer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		})
	}

	result, err := h.Assessments.Submit(c.Request.Context(), middleware.UserID(c), answers)
	if err != nil {
		if errors.Is(err, assessment.ErrUnknownQuestion) || errors.Is(err, assessment.ErrInvalidOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit assessment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": result})
}
