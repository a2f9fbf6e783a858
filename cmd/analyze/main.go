package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"travellens/internal/config"
	"travellens/pkg/llm"

	"github.com/spf13/cobra"
)

var Version = "dev"

type fileResult struct {
	File     string              `json:"file"`
	Analysis *llm.AnalysisResult `json:"analysis,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		backend   string
		modelName string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:     "analyze IMAGE...",
		Short:   "identify the place in each photo and print travel tips as JSON",
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if backend != "" {
				cfg.Model.Backend = backend
			}
			if modelName != "" {
				cfg.Model.Model = modelName
			}

			analyzer, err := llm.NewAnalyzer(cfg.Model)
			if err != nil {
				return err
			}

			return analyzeFiles(cmd.Context(), analyzer, args, cfg.Limits.MaxUploadBytes, cmd.OutOrStdout(), pretty)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "model backend: vertex, gemini, openai or anthropic (default from MODEL_BACKEND)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name (default from MODEL_NAME)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}

// analyzeFiles writes one JSON document per path and keeps going after a
// failure, returning an error at the end if any image failed.
func analyzeFiles(ctx context.Context, analyzer llm.Analyzer, paths []string, maxBytes int64, out io.Writer, pretty bool) error {
	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}

	failed := 0
	for _, path := range paths {
		res := fileResult{File: filepath.Base(path)}

		analysis, err := analyzeFile(ctx, analyzer, path, maxBytes)
		if err != nil {
			slog.Error("error analyzing image", "file", path, "model", analyzer.ModelName(), "error", err)
			res.Error = err.Error()
			failed++
		} else {
			res.Analysis = analysis
		}

		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(paths))
	}
	return nil
}

func analyzeFile(ctx context.Context, analyzer llm.Analyzer, path string, maxBytes int64) (*llm.AnalysisResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", info.Size(), maxBytes)
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return analyzer.Analyze(ctx, image)
}
