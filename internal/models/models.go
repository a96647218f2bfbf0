package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`

	// Empty until the first assessment completes; the latest
	// assessment result overwrites both fields.
	LearningStyle string `json:"learning_style"`
	SkillLevel    string `json:"skill_level"`
	CareerGoals   string `gorm:"type:text" json:"career_goals"`

	Points int            `gorm:"default:0" json:"points"`
	Badges datatypes.JSON `json:"badges"` // ordered array of badge ids
}

// Assessment is an append-only log entry: a user may submit any number
// of assessments, each keeping the question snapshot it was scored against.
type Assessment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID       uint           `gorm:"index;not null" json:"user_id"`
	QuestionData datatypes.JSON `json:"question_data"`
	Answers      datatypes.JSON `json:"answers"`
	Results      datatypes.JSON `json:"results"`
	CompletedAt  time.Time      `json:"completed_at"`
}

type Course struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Difficulty   string         `json:"difficulty"`
	Category     string         `json:"category"`
	Duration     string         `json:"duration"`
	SkillsTaught datatypes.JSON `json:"skills_taught"`
	Content      string         `gorm:"type:text" json:"-"`
}

type UserProgress struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null" json:"user_id"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null" json:"course_id"`

	ProgressPercentage float64   `gorm:"default:0" json:"progress_percentage"`
	StartedAt          time.Time `json:"started_at"`
	// Set exactly once, when progress first reaches 100.
	CompletedAt *time.Time `json:"completed_at"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title        string    `gorm:"not null" json:"title"`
	Company      string    `json:"company"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	SalaryRange  string    `json:"salary_range"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	PostedAt     time.Time `json:"posted_at"`
}

type UserSkill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID           uint   `gorm:"index;not null" json:"user_id"`
	SkillName        string `gorm:"not null" json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"` // 1-5 scale
	Verified         bool   `gorm:"default:false" json:"verified"`
}
