package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/monologue/domain/repositories"
)

const (
	defaultModel     = "gemini-1.5-flash"
	defaultMaxTokens = 1024
)

// GeminiConfig holds configuration for the Gemini adapter
// Required fields:
// - APIKey: Google AI API key
// Optional fields with defaults:
// - Model: model name (default: "gemini-1.5-flash")
// - Temperature: sampling temperature between 0 and 2 (default: provider default)
// - MaxOutputTokens: response token cap (default: 1024)
// - BaseURL: API endpoint override, used for proxies and tests
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int
	BaseURL         string
}

// GeminiLLM implements the LargeLanguageModel interface using Google's Gemini API
type GeminiLLM struct {
	client          *genai.Client
	logger          *zap.Logger
	model           string
	temperature     float32
	maxOutputTokens int
}

// Ensure GeminiLLM implements the LargeLanguageModel interface
var _ repositories.LargeLanguageModel = (*GeminiLLM)(nil)

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("Google AI API key is required")
	}

	if config.Temperature < 0 || config.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %f", config.Temperature)
	}

	if config.MaxOutputTokens < 0 {
		return fmt.Errorf("max output tokens must be positive, got %d", config.MaxOutputTokens)
	}

	return nil
}

// NewGeminiLLM creates a new Gemini LLM instance
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	maxOutputTokens := config.MaxOutputTokens
	if maxOutputTokens == 0 {
		maxOutputTokens = defaultMaxTokens
		logger.Info("Using default maxOutputTokens", zap.Int("maxOutputTokens", maxOutputTokens))
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiLLM{
		client:          client,
		logger:          logger,
		model:           model,
		temperature:     config.Temperature,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

// Generate sends a single prompt and returns the text of the first candidate.
// There is no retry; provider errors are returned to the caller.
func (g *GeminiLLM) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.maxOutputTokens),
	}
	if g.temperature > 0 {
		config.Temperature = genai.Ptr(g.temperature)
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	g.logger.Debug("Sending prompt to Gemini",
		zap.String("model", g.model),
		zap.Int("promptLength", len(prompt)))

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	g.logger.Debug("Gemini response received",
		zap.String("model", g.model),
		zap.Int("responseLength", text.Len()))

	return text.String(), nil
}

// Model returns the model name requests are sent to
func (g *GeminiLLM) Model() string {
	return g.model
}
