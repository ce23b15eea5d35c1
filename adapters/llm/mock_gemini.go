package llm

import (
	"context"

	"github.com/satriahrh/monologue/domain/repositories"
)

const mockMonologue = `You know, there's something special about taking a big idea and just talking it through, the way you would with a friend over a warm cup of something. So let's do exactly that today. Picture where it all began, a small spark of curiosity that grew into something bigger than anyone expected. Isn't it funny how the most ordinary things usually hide the most surprising stories? Stick with me, because by the end of this you might never look at it the same way again.`

// MockGeminiClient is an offline stand-in for the Gemini LLM
type MockGeminiClient struct{}

// NewMockGeminiClient creates a new mock Gemini client
func NewMockGeminiClient() repositories.LargeLanguageModel {
	return &MockGeminiClient{}
}

// Generate implements repositories.LargeLanguageModel
func (g *MockGeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return mockMonologue, nil
}
