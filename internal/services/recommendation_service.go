package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careernav/backend/internal/assessment"
	"github.com/careernav/backend/internal/logger"
)

type CourseRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
}

// RecommendationPayload is advisory content shown after an assessment.
// Recommended titles are not validated against the course catalog.
type RecommendationPayload struct {
	AIGenerated         bool                   `json:"ai_generated"`
	LearningStyle       string                 `json:"learning_style"`
	RecommendedApproach string                 `json:"recommended_approach"`
	Courses             []CourseRecommendation `json:"courses"`
}

const learningPathPrompt = `Generate a personalized learning pathway for a student with:
- Learning Style: %s
- Skill Level: %s

Provide 5 recommended courses with:
1. Course title
2. Description
3. Difficulty level
4. Estimated duration
5. Key skills to be learned

Format as a JSON array with these fields for each course:
- title, description, difficulty, duration, skills

Return the JSON array only. Do not wrap the output in markdown code blocks.`

type RecommendationService struct {
	llm *LLMService
	log *logger.Logger
}

func NewRecommendationService(llm *LLMService, log *logger.Logger) *RecommendationService {
	return &RecommendationService{llm: llm, log: log.With("service", "recommendation")}
}

// GenerateLearningPath asks the model for a five-course pathway. It
// never fails: any error on the AI path (missing client, timeout,
// unparseable reply) downgrades to the deterministic fallback payload.
func (s *RecommendationService) GenerateLearningPath(ctx context.Context, learningStyle, skillLevel string) RecommendationPayload {
	reply, err := s.llm.Generate(ctx, fmt.Sprintf(learningPathPrompt, learningStyle, skillLevel))
	if err != nil {
		s.log.Warn("learning path generation failed, using fallback", "error", err)
		return FallbackRecommendations(learningStyle, skillLevel)
	}
	courses, err := parseCourseRecommendations(reply)
	if err != nil {
		s.log.Warn("unparseable model reply, using fallback", "error", err)
		return FallbackRecommendations(learningStyle, skillLevel)
	}
	return RecommendationPayload{
		AIGenerated:         true,
		LearningStyle:       learningStyle,
		RecommendedApproach: LearningApproach(learningStyle),
		Courses:             courses,
	}
}

// LearningApproach maps a learning style to its study-approach text.
func LearningApproach(learningStyle string) string {
	switch learningStyle {
	case assessment.StyleVisual:
		return "Focus on diagrams, charts, videos, and visual programming tools"
	case assessment.StyleAuditory:
		return "Emphasize lectures, discussions, podcasts, and verbal explanations"
	case assessment.StyleKinesthetic:
		return "Prioritize hands-on projects, interactive coding, and practical exercises"
	default:
		return "Mixed approach combining multiple learning methods"
	}
}

// FallbackRecommendations is the deterministic payload used whenever
// the AI path is unavailable. Identical inputs produce identical output.
func FallbackRecommendations(learningStyle, skillLevel string) RecommendationPayload {
	return RecommendationPayload{
		AIGenerated:         false,
		LearningStyle:       learningStyle,
		RecommendedApproach: LearningApproach(learningStyle),
		Courses: []CourseRecommendation{
			{
				Title:       fmt.Sprintf("%s Programming Track", skillLevel),
				Description: fmt.Sprintf("Tailored for %s learners at %s level", strings.ToLower(learningStyle), strings.ToLower(skillLevel)),
				Difficulty:  skillLevel,
				Duration:    "8 weeks",
				Skills:      []string{"Programming fundamentals", "Problem solving", "Best practices"},
			},
		},
	}
}

// parseCourseRecommendations decodes the model reply, tolerating the
// markdown code fences models add despite being told not to.
func parseCourseRecommendations(reply string) ([]CourseRecommendation, error) {
	text := strings.TrimSpace(reply)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var courses []CourseRecommendation
	if err := json.Unmarshal([]byte(text), &courses); err != nil {
		return nil, fmt.Errorf("decode course recommendations: %w", err)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("model returned no courses")
	}
	return courses, nil
}
