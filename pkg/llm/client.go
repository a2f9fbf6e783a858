package llm

import (
	"context"
	"fmt"
)

const (
	BackendVertex    = "vertex"
	BackendGemini    = "gemini"
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
)

// Images are always submitted as JPEG, whatever the upload actually is.
const (
	imageFormat   = "jpeg"
	imageMIMEType = "image/jpeg"
)

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type AnalysisResult struct {
	LandmarkName                string   `json:"landmarkName"`
	Description                 string   `json:"description"`
	Location                    Location `json:"location"`
	PersonalizedRecommendations []string `json:"personalizedRecommendations"`
	PhotoTips                   string   `json:"photoTips"`
}

type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (*AnalysisResult, error)
	ModelName() string
}

type Config struct {
	Backend         string
	Model           string
	ProjectID       string
	Location        string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// NewAnalyzer picks the model backend named by cfg.Backend. An empty
// backend means Vertex AI.
func NewAnalyzer(cfg Config) (Analyzer, error) {
	switch cfg.Backend {
	case "", BackendVertex:
		return NewVertexClient(cfg.ProjectID, cfg.Location, cfg.Model), nil
	case BackendGemini:
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.Model), nil
	case BackendOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model), nil
	case BackendAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Backend)
	}
}
