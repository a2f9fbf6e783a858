package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
)

func TestOpenAIClient_Analyze(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"landmarkName":"Golden Gate Bridge","location":{"city":"San Francisco","country":"USA"},"personalizedRecommendations":["Walk it","Bike it","Visit at dawn"]}`,
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "", option.WithBaseURL(srv.URL))

	got, err := client.Analyze(context.Background(), []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LandmarkName != "Golden Gate Bridge" {
		t.Errorf("got landmark %q", got.LandmarkName)
	}
	if len(got.PersonalizedRecommendations) != 3 {
		t.Errorf("got %d recommendations, want 3", len(got.PersonalizedRecommendations))
	}
	if !strings.Contains(body, "data:image/jpeg;base64,") {
		t.Errorf("request did not carry a JPEG data URL: %s", body)
	}
	if client.ModelName() != "gpt-4o-mini" {
		t.Errorf("got model %q, want gpt-4o-mini", client.ModelName())
	}
}

func TestOpenAIClient_NonJSONReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","created":0,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"I am not sure what this is."}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "", option.WithBaseURL(srv.URL))

	got, err := client.Analyze(context.Background(), []byte("jpeg-bytes"))
	if err == nil {
		t.Fatalf("expected error, got %+v", got)
	}
}
