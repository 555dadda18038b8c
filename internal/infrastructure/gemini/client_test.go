package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModel struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (m *stubModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if txt, ok := parts[0].(genai.Text); ok {
			m.prompt = string(txt)
		}
	}
	return m.resp, m.err
}

func textResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

var (
	marc  = &domain.Profile{ID: "1", Name: "Marc Demo"}
	sarah = &domain.Profile{ID: "4", Name: "Sarah Chen"}
)

func TestDraftUsesModelOutput(t *testing.T) {
	m := &stubModel{resp: textResponse(genai.Text(`  "Hi Sarah! `), genai.Text(`Want to swap?"`))}
	c := &GeminiClient{model: m, logger: zap.NewNop()}

	msg, err := c.DraftRequestMessage(context.Background(), marc, sarah, "JavaScript", "Design")
	require.NoError(t, err)
	assert.Equal(t, "Hi Sarah! Want to swap?", msg)
	assert.Contains(t, m.prompt, "Sarah Chen")
	assert.Contains(t, m.prompt, "JavaScript")
}

func TestDraftFallsBack(t *testing.T) {
	want := domain.DefaultRequestMessage("Sarah Chen", "JavaScript", "Design")
	for name, m := range map[string]*stubModel{
		"error":         {err: errors.New("quota exceeded")},
		"no candidates": {resp: &genai.GenerateContentResponse{}},
		"blank":         {resp: textResponse(genai.Text("   "))},
	} {
		t.Run(name, func(t *testing.T) {
			c := &GeminiClient{model: m, logger: zap.NewNop()}
			msg, err := c.DraftRequestMessage(context.Background(), marc, sarah, "JavaScript", "Design")
			require.NoError(t, err)
			assert.Equal(t, want, msg)
		})
	}
}

func TestDraftIsTruncated(t *testing.T) {
	m := &stubModel{resp: textResponse(genai.Text(strings.Repeat("a", 1500)))}
	c := &GeminiClient{model: m, logger: zap.NewNop()}
	msg, err := c.DraftRequestMessage(context.Background(), marc, sarah, "x", "y")
	require.NoError(t, err)
	assert.Len(t, msg, domain.MaxMessageLength)
}

func TestNewGeminiClientNeedsKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", zap.NewNop())
	assert.Error(t, err)
}
