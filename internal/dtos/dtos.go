package dtos

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AnswerInput struct {
	QuestionID int `json:"question_id" binding:"required"`
	// Zero-based index into the question's option list.
	SelectedOption int `json:"selected_option" binding:"gte=0"`
}

// An empty answer list is valid: it scores to the enumeration defaults
// (Visual, Beginner).
type SubmitAssessmentRequest struct {
	Answers []AnswerInput `json:"answers" binding:"dive"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdateProgressRequest struct {
	CourseID           uint    `json:"course_id" binding:"required"`
	ProgressPercentage float64 `json:"progress_percentage" binding:"gte=0,lte=100"`
}
