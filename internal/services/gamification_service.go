package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/careernav/backend/internal/models"
)

// Point awards for the defined gamification events.
const (
	PointsAssessmentCompleted = 100
	PointsCourseCompleted     = 200
)

// Badge identifiers, in no particular order of prestige.
const (
	BadgeFirstAssessment = "first_assessment"
	BadgeCourseGraduate  = "course_graduate"
)

// GamificationService owns the points counter and badge set on the
// user record. Points only ever go up; there is no cap and no decay.
type GamificationService struct {
	DB *gorm.DB
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{DB: db}
}

// AwardPoints adds to the user's counter. It runs on whatever handle
// the caller passes, so it can join an enclosing transaction.
func (s *GamificationService) AwardPoints(tx *gorm.DB, userID uint, amount int) error {
	err := tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", amount)).Error
	if err != nil {
		return fmt.Errorf("award %d points to user %d: %w", amount, userID, err)
	}
	return nil
}

// AddBadge appends a badge id to the user's ordered badge set.
// Re-adding an existing badge is a no-op.
func (s *GamificationService) AddBadge(tx *gorm.DB, userID uint, badge string) error {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}
	badges, err := decodeBadges(user.Badges)
	if err != nil {
		return err
	}
	for _, b := range badges {
		if b == badge {
			return nil
		}
	}
	badges = append(badges, badge)
	raw, err := json.Marshal(badges)
	if err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("badges", datatypes.JSON(raw)).Error
}

// Badges returns the user's badge ids in award order.
func (s *GamificationService) Badges(userID uint) ([]string, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return decodeBadges(user.Badges)
}

func decodeBadges(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var badges []string
	if err := json.Unmarshal(raw, &badges); err != nil {
		return nil, fmt.Errorf("decode badges: %w", err)
	}
	return badges, nil
}
