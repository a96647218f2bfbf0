package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/careernav/backend/internal/dtos"
	"github.com/careernav/backend/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	DB           *gorm.DB
	Gamification *GamificationService
}

func NewUserService(db *gorm.DB, gamification *GamificationService) *UserService {
	return &UserService{DB: db, Gamification: gamification}
}

// Register creates a user with a bcrypt-hashed credential. Duplicate
// emails are a validation error, not an internal one.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Badges:       datatypes.JSON([]byte("[]")),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email+password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type SkillView struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Verified bool   `json:"verified"`
}

type ProfileView struct {
	ID               uint        `json:"id"`
	Email            string      `json:"email"`
	FullName         string      `json:"full_name"`
	LearningStyle    string      `json:"learning_style"`
	SkillLevel       string      `json:"skill_level"`
	CareerGoals      string      `json:"career_goals"`
	Points           int         `json:"points"`
	Badges           []string    `json:"badges"`
	CompletedCourses int         `json:"completed_courses"`
	Skills           []SkillView `json:"skills"`
}

// Profile assembles the full profile: identity, classification,
// gamification state, declared skills and the completed-course count.
func (s *UserService) Profile(userID uint) (*ProfileView, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var skills []models.UserSkill
	if err := s.DB.Where("user_id = ?", userID).Find(&skills).Error; err != nil {
		return nil, err
	}

	var completed int64
	err := s.DB.Model(&models.UserProgress{}).
		Where("user_id = ? AND progress_percentage >= ?", userID, 100).
		Count(&completed).Error
	if err != nil {
		return nil, err
	}

	badges, err := decodeBadges(user.Badges)
	if err != nil {
		return nil, err
	}

	skillViews := make([]SkillView, 0, len(skills))
	for _, sk := range skills {
		skillViews = append(skillViews, SkillView{
			Name:     sk.SkillName,
			Level:    sk.ProficiencyLevel,
			Verified: sk.Verified,
		})
	}

	return &ProfileView{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		LearningStyle:    user.LearningStyle,
		SkillLevel:       user.SkillLevel,
		CareerGoals:      user.CareerGoals,
		Points:           user.Points,
		Badges:           badges,
		CompletedCourses: int(completed),
		Skills:           skillViews,
	}, nil
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	LearningStyle string `json:"learning_style"`
}

const leaderboardSize = 10

// Leaderboard returns the top users by points, descending, with
// 1-based ranks.
func (s *UserService) Leaderboard() ([]LeaderboardEntry, error) {
	var users []models.User
	if err := s.DB.Order("points DESC").Limit(leaderboardSize).Find(&users).Error; err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			Name:          u.FullName,
			Points:        u.Points,
			LearningStyle: u.LearningStyle,
		})
	}
	return entries, nil
}
