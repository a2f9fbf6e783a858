package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const (
	DefaultProjectID   = "travel-lens-ai"
	DefaultLocation    = "us-central1"
	DefaultGeminiModel = "gemini-1.5-flash-001"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// VertexClient talks to Gemini on Vertex AI. Credentials and the underlying
// client are resolved on every call so that a bad project or missing ADC
// surfaces as an analysis error instead of a startup failure.
type VertexClient struct {
	projectID string
	location  string
	modelName string
}

func NewVertexClient(projectID, location, modelName string) *VertexClient {
	if location == "" {
		location = DefaultLocation
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &VertexClient{
		projectID: projectID,
		location:  location,
		modelName: modelName,
	}
}

func (c *VertexClient) ModelName() string {
	return c.modelName
}

func (c *VertexClient) Analyze(ctx context.Context, image []byte) (*AnalysisResult, error) {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("finding default credentials: %w", err)
	}

	projectID := c.resolveProjectID(creds)

	client, err := genai.NewClient(ctx, projectID, c.location, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("creating vertex client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(analysisPrompt), genai.ImageData(imageFormat, image))
	if err != nil {
		return nil, fmt.Errorf("vertex API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response from vertex")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return ParseAnalysis(sb.String())
}

func (c *VertexClient) resolveProjectID(creds *google.Credentials) string {
	if c.projectID != "" {
		return c.projectID
	}
	if creds.ProjectID != "" {
		return creds.ProjectID
	}
	// User credentials without a quota project carry no project id.
	slog.Warn("no project id in credentials, using fallback", "project_id", DefaultProjectID)
	return DefaultProjectID
}
