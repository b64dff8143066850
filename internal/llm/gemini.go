package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"pmoreport/internal/config"
)

// GeminiFormatter implements Formatter on the Gemini API. Availability is
// decided once at construction; callers hold a nil Formatter when the polish
// step is off.
type GeminiFormatter struct {
	client *genai.Client
	model  string
}

// NewGeminiFormatter builds the client, or returns an error when the API key
// is missing or the SDK rejects the configuration.
func NewGeminiFormatter(ctx context.Context, cfg config.Config) (*GeminiFormatter, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiFormatter{client: client, model: cfg.GeminiModel}, nil
}

func (g *GeminiFormatter) Format(ctx context.Context, text, fieldContext string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt(text, fieldContext)), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return result.Text(), nil
}
