package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var ErrAIUnavailable = errors.New("ai client not configured")

// LLMService wraps the generative model behind the llms.Model
// interface so handlers and tests can inject their own.
type LLMService struct {
	client  llms.Model
	timeout time.Duration
}

// NewLLMService initializes the Gemini-backed client. An empty API key
// is not fatal: the service stays up and every generation attempt
// returns ErrAIUnavailable, which sends callers down their
// deterministic fallback paths.
func NewLLMService(ctx context.Context, apiKey, model string, timeout time.Duration) (*LLMService, error) {
	if apiKey == "" {
		return &LLMService{timeout: timeout}, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{client: llm, timeout: timeout}, nil
}

// NewLLMServiceWithModel wraps an already-constructed model. Tests use
// this to substitute a fake.
func NewLLMServiceWithModel(m llms.Model, timeout time.Duration) *LLMService {
	return &LLMService{client: m, timeout: timeout}
}

func (s *LLMService) Available() bool {
	return s.client != nil
}

// Generate runs a single-shot prompt with the service timeout applied.
// Every call is one attempt; there are no retries.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}

const careerChatPrompt = `You are CareerNav, an AI assistant helping with career development and learning.
User's learning style: %s
User's skill level: %s

User message: %s

Provide helpful, personalized advice for career development, learning resources, or job search guidance. Be encouraging and specific.`

// CareerChat answers a free-text message with the user's classification
// injected as context.
func (s *LLMService) CareerChat(ctx context.Context, learningStyle, skillLevel, message string) (string, error) {
	if learningStyle == "" {
		learningStyle = "Not specified"
	}
	if skillLevel == "" {
		skillLevel = "Not specified"
	}
	prompt := fmt.Sprintf(careerChatPrompt, learningStyle, skillLevel, message)
	return s.Generate(ctx, prompt)
}
