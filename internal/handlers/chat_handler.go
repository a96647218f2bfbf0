package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/dtos"
	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

type ChatHandler struct {
	LLM   *services.LLMService
	Users *services.UserService
}

func NewChatHandler(llm *services.LLMService, users *services.UserService) *ChatHandler {
	return &ChatHandler{LLM: llm, Users: users}
}

// Chat is the POST /chat endpoint. Unlike every other route it never
// surfaces an internal failure as an error status: whatever goes wrong
// past input validation, the client always gets a response string,
// apologetic if need be.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Get(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"response": apology(err)})
		return
	}

	reply, err := h.LLM.CareerChat(c.Request.Context(), user.LearningStyle, user.SkillLevel, req.Message)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"response": apology(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func apology(err error) string {
	return fmt.Sprintf("I apologize, but I encountered an error: %s. Please try again.", err)
}
