package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient uses the Gemini Developer API with an API key.
type GeminiClient struct {
	apiKey    string
	modelName string
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (c *GeminiClient) ModelName() string {
	return c.modelName
}

func (c *GeminiClient) Analyze(ctx context.Context, image []byte) (*AnalysisResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(analysisPrompt), genai.ImageData(imageFormat, image))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response from gemini")
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}

	return ParseAnalysis(content.String())
}
