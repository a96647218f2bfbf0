package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// promptCapturingModel records the prompt it was asked to answer.
type promptCapturingModel struct {
	fakeModel
	prompt string
}

func (p *promptCapturingModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, opts ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				p.prompt += text.Text
			}
		}
	}
	return p.fakeModel.GenerateContent(ctx, messages, opts...)
}

func TestGenerateWithoutClient(t *testing.T) {
	svc := NewLLMServiceWithModel(nil, time.Second)
	assert.False(t, svc.Available())

	_, err := svc.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrAIUnavailable)
}

func TestCareerChatInjectsProfileContext(t *testing.T) {
	model := &promptCapturingModel{fakeModel: fakeModel{reply: "Keep going, you are doing great."}}
	svc := NewLLMServiceWithModel(model, time.Second)

	reply, err := svc.CareerChat(context.Background(), "Visual", "Intermediate", "How do I learn Go?")
	require.NoError(t, err)
	assert.Equal(t, "Keep going, you are doing great.", reply)

	assert.Contains(t, model.prompt, "User's learning style: Visual")
	assert.Contains(t, model.prompt, "User's skill level: Intermediate")
	assert.Contains(t, model.prompt, "How do I learn Go?")
}

func TestCareerChatDefaultsUnsetProfile(t *testing.T) {
	model := &promptCapturingModel{fakeModel: fakeModel{reply: "ok"}}
	svc := NewLLMServiceWithModel(model, time.Second)

	_, err := svc.CareerChat(context.Background(), "", "", "hi")
	require.NoError(t, err)

	assert.Contains(t, model.prompt, "User's learning style: Not specified")
	assert.Contains(t, model.prompt, "User's skill level: Not specified")
}
