package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/careernav/backend/internal/assessment"
	"github.com/careernav/backend/internal/logger"
	"github.com/careernav/backend/internal/models"
)

// AssessmentService orchestrates a submission: score the answers,
// persist the snapshot, fold the classification into the profile,
// award the submission points and build the recommendation payload.
type AssessmentService struct {
	DB              *gorm.DB
	Bank            *assessment.Bank
	Gamification    *GamificationService
	Recommendations *RecommendationService
	log             *logger.Logger
}

func NewAssessmentService(db *gorm.DB, bank *assessment.Bank, gamification *GamificationService, recommendations *RecommendationService, log *logger.Logger) *AssessmentService {
	return &AssessmentService{
		DB:              db,
		Bank:            bank,
		Gamification:    gamification,
		Recommendations: recommendations,
		log:             log.With("service", "assessment"),
	}
}

func (s *AssessmentService) Questions() []assessment.Question {
	return s.Bank.Questions()
}

type SubmissionResult struct {
	LearningStyle   string                `json:"learning_style"`
	SkillLevel      string                `json:"skill_level"`
	StyleScores     map[string]int        `json:"style_scores"`
	LevelScores     map[string]int        `json:"level_scores"`
	Recommendations RecommendationPayload `json:"recommendations"`
}

// Submit scores and persists one assessment. The database work runs in
// a single transaction; the recommendation call happens after commit
// so an AI hiccup can never roll back a scored assessment.
func (s *AssessmentService) Submit(ctx context.Context, userID uint, answers []assessment.Answer) (*SubmissionResult, error) {
	result, err := assessment.Score(s.Bank, answers)
	if err != nil {
		return nil, err
	}

	questionJSON, err := json.Marshal(s.Bank.Questions())
	if err != nil {
		return nil, fmt.Errorf("encode question snapshot: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		record := &models.Assessment{
			UserID:       userID,
			QuestionData: questionJSON,
			Answers:      answersJSON,
			Results:      resultsJSON,
			CompletedAt:  time.Now().UTC(),
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		// Latest result overwrites the profile classification.
		err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"learning_style": result.LearningStyle,
			"skill_level":    result.SkillLevel,
		}).Error
		if err != nil {
			return err
		}

		if err := s.Gamification.AwardPoints(tx, userID, PointsAssessmentCompleted); err != nil {
			return err
		}
		return s.Gamification.AddBadge(tx, userID, BadgeFirstAssessment)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("assessment scored",
		"user_id", userID,
		"learning_style", result.LearningStyle,
		"skill_level", result.SkillLevel,
	)

	recommendations := s.Recommendations.GenerateLearningPath(ctx, result.LearningStyle, result.SkillLevel)

	return &SubmissionResult{
		LearningStyle:   result.LearningStyle,
		SkillLevel:      result.SkillLevel,
		StyleScores:     result.StyleScores,
		LevelScores:     result.LevelScores,
		Recommendations: recommendations,
	}, nil
}
