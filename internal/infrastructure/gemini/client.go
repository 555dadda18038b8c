package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const modelName = "gemini-1.5-flash"

// generator is the part of *genai.GenerativeModel the client uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient drafts swap request messages. When the API fails or
// returns nothing it falls back to domain.DefaultRequestMessage.
type GeminiClient struct {
	client *genai.Client
	model  generator
	logger *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(256)

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// DraftRequestMessage writes a short, friendly note from one profile to
// another proposing the trade. It never returns an error.
func (c *GeminiClient) DraftRequestMessage(ctx context.Context, from, to *domain.Profile, skillOffered, skillWanted string) (string, error) {
	fallback := domain.DefaultRequestMessage(to.Name, skillOffered, skillWanted)

	prompt := fmt.Sprintf(`
		Write a short message for a skill-swap app.
		Sender: %s
		Recipient: %s
		The sender will teach: %s
		The sender wants to learn: %s

		Task: 1-2 friendly sentences from the sender to the recipient proposing this trade.
		Address the recipient by first name. Language: English.
		Output: Just the message text.
	`, from.Name, to.Name, skillOffered, skillWanted)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Warn("gemini unavailable, using fallback message", zap.Error(err))
		return fallback, nil
	}

	text := responseText(resp)
	if text == "" {
		return fallback, nil
	}
	if len([]rune(text)) > domain.MaxMessageLength {
		text = string([]rune(text)[:domain.MaxMessageLength])
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.Trim(strings.TrimSpace(sb.String()), `"`)
}
