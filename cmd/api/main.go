package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/careernav/backend/internal/assessment"
	"github.com/careernav/backend/internal/auth"
	"github.com/careernav/backend/internal/config"
	"github.com/careernav/backend/internal/database"
	"github.com/careernav/backend/internal/handlers"
	"github.com/careernav/backend/internal/logger"
	"github.com/careernav/backend/internal/middleware"
	"github.com/careernav/backend/internal/services"
)

func main() {
	// 1. Configuration & Logging
	cfg := config.Load()

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logg.Sync()
	for _, w := range cfg.Warnings {
		logg.Warn(w)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logg.Fatal("database connection failed", "error", err)
	}
	if err := database.Seed(db); err != nil {
		logg.Fatal("seeding failed", "error", err)
	}
	logg.Info("database ready")

	// 3. Core Services
	llmService, err := services.NewLLMService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
	if err != nil {
		logg.Fatal("gemini client init failed", "error", err)
	}
	if !llmService.Available() {
		logg.Warn("no GEMINI_API_KEY set, AI features run on deterministic fallbacks")
	}

	bank := assessment.NewBank(assessment.DefaultQuestions())
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	gamification := services.NewGamificationService(db)
	userService := services.NewUserService(db, gamification)
	recommendationService := services.NewRecommendationService(llmService, logg)
	assessmentService := services.NewAssessmentService(db, bank, gamification, recommendationService, logg)
	courseService := services.NewCourseService(db, gamification)
	matcherService := services.NewMatcherService(db)

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	courseHandler := handlers.NewCourseHandler(courseService)
	jobHandler := handlers.NewJobHandler(matcherService)
	chatHandler := handlers.NewChatHandler(llmService, userService)
	userHandler := handlers.NewUserHandler(userService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		protected := api.Group("", middleware.RequireAuth(tokens))
		{
			protected.GET("/assessment/questions", assessmentHandler.Questions)
			protected.POST("/assessment/submit", assessmentHandler.Submit)
			protected.GET("/courses", courseHandler.List)
			protected.POST("/progress/update", courseHandler.UpdateProgress)
			protected.GET("/jobs/recommendations", jobHandler.Recommendations)
			protected.POST("/chat", chatHandler.Chat)
			protected.GET("/user/profile", userHandler.Profile)
			protected.GET("/leaderboard", userHandler.Leaderboard)
		}
	}

	logg.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatal("server failed", "error", err)
	}
}
