package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// Profile is the GET /user/profile endpoint.
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.Users.Profile(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// Leaderboard is the GET /leaderboard endpoint: top users by points.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	entries, err := h.Users.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
