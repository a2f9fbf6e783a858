package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrMissingLandmark = errors.New("model response has no landmarkName")
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// ParseAnalysis treats content as untrusted model output: fences and
// surrounding prose are stripped before decoding, and anything that does not
// decode to an analysis with a landmark name is an error.
func ParseAnalysis(content string) (*AnalysisResult, error) {
	content = cleanJSONResponse(content)
	if content == "" {
		return nil, ErrEmptyResponse
	}

	var result AnalysisResult
	err := json.Unmarshal([]byte(content), &result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	if result.LandmarkName == "" {
		return nil, ErrMissingLandmark
	}

	if result.PersonalizedRecommendations == nil {
		result.PersonalizedRecommendations = []string{}
	}

	return &result, nil
}
