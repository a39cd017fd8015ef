package planning

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/nutritrack/models"
	"google.golang.org/api/option"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiTitler asks a Gemini model for short meal names.
type GeminiTitler struct {
	client *genai.Client
	model  contentGenerator
}

// NewGeminiTitler opens a Gemini client. Close releases it.
func NewGeminiTitler(ctx context.Context, apiKey, model string) (*GeminiTitler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiTitler{client: client, model: client.GenerativeModel(model)}, nil
}

func (t *GeminiTitler) Close() error {
	if t.client == nil {
		return nil
	}
	return t.client.Close()
}

func (t *GeminiTitler) Title(ctx context.Context, day models.Day, mealType models.MealType, calories int) (string, error) {
	prompt := fmt.Sprintf(`Suggest one short, appetizing name for a %s on %s of about %d kcal.
Answer with the name only, no quotes, no punctuation at the end.`, mealType, day, calories)

	resp, err := t.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			title := strings.Trim(strings.TrimSpace(string(text)), `"'.`)
			if title != "" {
				return title, nil
			}
		}
	}
	return "", fmt.Errorf("unexpected response format (no text part)")
}
