package llm

import (
	"testing"

	"golang.org/x/oauth2/google"
)

func TestNewAnalyzer(t *testing.T) {
	tests := []struct {
		backend   string
		wantModel string
	}{
		{backend: "", wantModel: DefaultGeminiModel},
		{backend: BackendVertex, wantModel: DefaultGeminiModel},
		{backend: BackendGemini, wantModel: DefaultGeminiModel},
		{backend: BackendOpenAI, wantModel: "gpt-4o-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			analyzer, err := NewAnalyzer(Config{Backend: tt.backend})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if analyzer.ModelName() != tt.wantModel {
				t.Errorf("got model %q, want %q", analyzer.ModelName(), tt.wantModel)
			}
		})
	}
}

func TestNewAnalyzer_ModelOverride(t *testing.T) {
	analyzer, err := NewAnalyzer(Config{Backend: BackendAnthropic, Model: "claude-sonnet-4-5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analyzer.ModelName() != "claude-sonnet-4-5" {
		t.Errorf("got model %q", analyzer.ModelName())
	}
}

func TestNewAnalyzer_UnknownBackend(t *testing.T) {
	_, err := NewAnalyzer(Config{Backend: "llama"})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestGeminiClient_MissingKey(t *testing.T) {
	client := NewGeminiClient("", "")
	_, err := client.Analyze(t.Context(), []byte("jpeg-bytes"))
	if err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestVertexClient_ResolveProjectID(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		adc        string
		want       string
	}{
		{name: "configured wins", configured: "my-project", adc: "adc-project", want: "my-project"},
		{name: "from credentials", adc: "adc-project", want: "adc-project"},
		{name: "fallback", want: DefaultProjectID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewVertexClient(tt.configured, "", "")
			got := client.resolveProjectID(&google.Credentials{ProjectID: tt.adc})
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if client.location != DefaultLocation {
				t.Errorf("got location %q, want %q", client.location, DefaultLocation)
			}
		})
	}
}
