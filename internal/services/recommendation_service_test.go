package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/careernav/backend/internal/logger"
)

// fakeModel is a canned llms.Model for exercising both branches of the
// AI path without network access.
type fakeModel struct {
	reply string
	err   error
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newRecommendationService(m llms.Model) *RecommendationService {
	return NewRecommendationService(NewLLMServiceWithModel(m, time.Second), logger.NewNop())
}

const sampleCourseJSON = `[
  {"title": "Go Fundamentals", "description": "Learn Go", "difficulty": "Beginner", "duration": "4 weeks", "skills": ["Go", "Testing"]}
]`

func TestGenerateLearningPathAISuccess(t *testing.T) {
	svc := newRecommendationService(&fakeModel{reply: sampleCourseJSON})

	payload := svc.GenerateLearningPath(context.Background(), "Visual", "Beginner")

	assert.True(t, payload.AIGenerated)
	assert.Equal(t, "Visual", payload.LearningStyle)
	assert.Equal(t, "Focus on diagrams, charts, videos, and visual programming tools", payload.RecommendedApproach)
	require.Len(t, payload.Courses, 1)
	assert.Equal(t, "Go Fundamentals", payload.Courses[0].Title)
	assert.Equal(t, []string{"Go", "Testing"}, payload.Courses[0].Skills)
}

func TestGenerateLearningPathStripsCodeFences(t *testing.T) {
	svc := newRecommendationService(&fakeModel{reply: "```json\n" + sampleCourseJSON + "\n```"})

	payload := svc.GenerateLearningPath(context.Background(), "Auditory", "Intermediate")

	assert.True(t, payload.AIGenerated)
	require.Len(t, payload.Courses, 1)
	assert.Equal(t, "Go Fundamentals", payload.Courses[0].Title)
}

func TestGenerateLearningPathFallsBackOnError(t *testing.T) {
	svc := newRecommendationService(&fakeModel{err: errors.New("quota exceeded")})

	payload := svc.GenerateLearningPath(context.Background(), "Kinesthetic", "Advanced")

	assert.False(t, payload.AIGenerated)
	require.Len(t, payload.Courses, 1)
	assert.Equal(t, "Advanced Programming Track", payload.Courses[0].Title)
}

func TestGenerateLearningPathFallsBackOnGarbageReply(t *testing.T) {
	svc := newRecommendationService(&fakeModel{reply: "Sure! Here are some great courses for you..."})

	payload := svc.GenerateLearningPath(context.Background(), "Visual", "Beginner")

	assert.False(t, payload.AIGenerated)
}

func TestGenerateLearningPathWithoutClient(t *testing.T) {
	svc := NewRecommendationService(NewLLMServiceWithModel(nil, time.Second), logger.NewNop())

	payload := svc.GenerateLearningPath(context.Background(), "Visual", "Beginner")

	assert.False(t, payload.AIGenerated)
}

func TestFallbackRecommendationsDeterministic(t *testing.T) {
	a := FallbackRecommendations("Kinesthetic", "Intermediate")
	b := FallbackRecommendations("Kinesthetic", "Intermediate")
	assert.Equal(t, a, b)

	require.Len(t, a.Courses, 1)
	course := a.Courses[0]
	assert.Equal(t, "Intermediate Programming Track", course.Title)
	assert.Equal(t, "Tailored for kinesthetic learners at intermediate level", course.Description)
	assert.Equal(t, "Intermediate", course.Difficulty)
	assert.Equal(t, "8 weeks", course.Duration)
	assert.Equal(t, []string{"Programming fundamentals", "Problem solving", "Best practices"}, course.Skills)
}

func TestLearningApproachTable(t *testing.T) {
	assert.Equal(t, "Focus on diagrams, charts, videos, and visual programming tools", LearningApproach("Visual"))
	assert.Equal(t, "Emphasize lectures, discussions, podcasts, and verbal explanations", LearningApproach("Auditory"))
	assert.Equal(t, "Prioritize hands-on projects, interactive coding, and practical exercises", LearningApproach("Kinesthetic"))
	assert.Equal(t, "Mixed approach combining multiple learning methods", LearningApproach(""))
	assert.Equal(t, "Mixed approach combining multiple learning methods", LearningApproach("Olfactory"))
}
