package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/careernav/backend/internal/models"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseService struct {
	DB           *gorm.DB
	Gamification *GamificationService
}

func NewCourseService(db *gorm.DB, gamification *GamificationService) *CourseService {
	return &CourseService{DB: db, Gamification: gamification}
}

// CourseView is a catalog entry merged with the caller's progress.
type CourseView struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
	Duration     string   `json:"duration"`
	SkillsTaught []string `json:"skills_taught"`
	Progress     float64  `json:"progress"`
}

// ListWithProgress returns the full catalog with the user's per-course
// completion percentage, zero where the user never started.
func (s *CourseService) ListWithProgress(userID uint) ([]CourseView, error) {
	var courses []models.Course
	if err := s.DB.Find(&courses).Error; err != nil {
		return nil, err
	}

	var progress []models.UserProgress
	if err := s.DB.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	progressByCourse := make(map[uint]float64, len(progress))
	for _, p := range progress {
		progressByCourse[p.CourseID] = p.ProgressPercentage
	}

	views := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		var skills []string
		if len(c.SkillsTaught) > 0 {
			if err := json.Unmarshal(c.SkillsTaught, &skills); err != nil {
				return nil, err
			}
		}
		views = append(views, CourseView{
			ID:           c.ID,
			Title:        c.Title,
			Description:  c.Description,
			Difficulty:   c.Difficulty,
			Category:     c.Category,
			Duration:     c.Duration,
			SkillsTaught: skills,
			Progress:     progressByCourse[c.ID],
		})
	}
	return views, nil
}

// UpdateProgress upserts the (user, course) progress row. The whole
// read-modify-write runs in one transaction with the row locked, so
// concurrent updates cannot double-award the completion bonus: the
// bonus fires only on the nil-to-set transition of CompletedAt.
func (s *CourseService) UpdateProgress(userID, courseID uint, percentage float64) (*models.UserProgress, error) {
	var out models.UserProgress
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		query := tx.Where("user_id = ? AND course_id = ?", userID, courseID)
		// sqlite (tests) has no row locks; its writes are serialized
		// by the engine itself.
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var progress models.UserProgress
		err := query.First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserProgress{
				UserID:    userID,
				CourseID:  courseID,
				StartedAt: time.Now().UTC(),
			}
		} else if err != nil {
			return err
		}

		progress.ProgressPercentage = percentage

		if percentage >= 100 && progress.CompletedAt == nil {
			now := time.Now().UTC()
			progress.CompletedAt = &now
			if err := s.Gamification.AwardPoints(tx, userID, PointsCourseCompleted); err != nil {
				return err
			}
			if err := s.Gamification.AddBadge(tx, userID, BadgeCourseGraduate); err != nil {
				return err
			}
		}

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}
		out = progress
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
