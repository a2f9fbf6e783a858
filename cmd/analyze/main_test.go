package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"travellens/pkg/llm"

	"github.com/go-playground/assert/v2"
)

type fakeAnalyzer struct {
	replies map[string]string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, image []byte) (*llm.AnalysisResult, error) {
	reply, ok := f.replies[string(image)]
	if !ok {
		return nil, errors.New("model unavailable")
	}
	return llm.ParseAnalysis(reply)
}

func (f *fakeAnalyzer) ModelName() string {
	return "fake-model"
}

func writeImage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeImage(t, dir, "tower.jpg", "tower")
	bad := writeImage(t, dir, "blurry.jpg", "blurry")

	analyzer := &fakeAnalyzer{replies: map[string]string{
		"tower": "```json\n{\"landmarkName\":\"Eiffel Tower\",\"location\":{\"city\":\"Paris\",\"country\":\"France\"}}\n```",
	}}

	var out bytes.Buffer
	err := analyzeFiles(context.Background(), analyzer, []string{good, bad}, 1024, &out, false)

	assert.NotEqual(t, nil, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 2, len(lines))

	var first, second fileResult
	json.Unmarshal([]byte(lines[0]), &first)
	json.Unmarshal([]byte(lines[1]), &second)

	assert.Equal(t, "tower.jpg", first.File)
	assert.Equal(t, "Eiffel Tower", first.Analysis.LandmarkName)
	assert.Equal(t, "", first.Error)

	assert.Equal(t, "blurry.jpg", second.File)
	assert.Equal(t, true, second.Analysis == nil)
	assert.Equal(t, "model unavailable", second.Error)
}

func TestAnalyzeFiles_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeImage(t, dir, "huge.jpg", strings.Repeat("x", 64))

	var out bytes.Buffer
	err := analyzeFiles(context.Background(), &fakeAnalyzer{}, []string{path}, 16, &out, true)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(out.String(), "limit is 16"))
}

func TestAnalyzeFiles_AllSucceed(t *testing.T) {
	dir := t.TempDir()
	path := writeImage(t, dir, "bridge.jpg", "bridge")

	analyzer := &fakeAnalyzer{replies: map[string]string{
		"bridge": `{"landmarkName":"Golden Gate Bridge"}`,
	}}

	var out bytes.Buffer
	err := analyzeFiles(context.Background(), analyzer, []string{path}, 1024, &out, false)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(out.String(), "Golden Gate Bridge"))
}

func TestRootCmd_RequiresArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.NotEqual(t, nil, err)
}
