package services

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/careernav/backend/internal/models"
)

// JobMatch is a catalog job annotated with how well it fits the user's
// declared skills.
type JobMatch struct {
	models.Job
	MatchScore float64 `json:"match_score"`
}

type MatcherService struct {
	DB *gorm.DB
}

func NewMatcherService(db *gorm.DB) *MatcherService {
	return &MatcherService{DB: db}
}

// RecommendJobs ranks the whole job catalog against the user's skill
// set and returns the top matches.
func (s *MatcherService) RecommendJobs(userID uint) ([]JobMatch, error) {
	var skills []models.UserSkill
	if err := s.DB.Where("user_id = ?", userID).Find(&skills).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(skills))
	for _, sk := range skills {
		names = append(names, sk.SkillName)
	}

	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return RankJobs(names, jobs), nil
}

const maxJobMatches = 10

// RankJobs scores every job, sorts by score descending and truncates
// to the top ten. The sort is stable, so equal scores keep their
// catalog order.
func RankJobs(userSkills []string, jobs []models.Job) []JobMatch {
	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, JobMatch{
			Job:        job,
			MatchScore: MatchScore(userSkills, job.Requirements),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > maxJobMatches {
		matches = matches[:maxJobMatches]
	}
	return matches
}

// MatchScore is the percentage of the user's skills found in the job's
// requirements text. Matching is raw case-insensitive substring
// containment, not word-boundary matching: a one-letter skill like "R"
// matches any requirements text containing that letter. Tests pin this
// behavior; do not tighten it silently.
func MatchScore(userSkills []string, requirements string) float64 {
	if requirements == "" || len(userSkills) == 0 {
		return 0
	}
	req := strings.ToLower(requirements)
	matched := 0
	for _, skill := range userSkills {
		if strings.Contains(req, strings.ToLower(skill)) {
			matched++
		}
	}
	score := float64(matched) / float64(len(userSkills)) * 100
	if score > 100 {
		score = 100
	}
	return score
}
