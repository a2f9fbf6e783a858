package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"travellens/pkg/llm"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultMaxUploadBytes = 16 << 20
	DefaultCacheTTL       = 24 * time.Hour
)

type Config struct {
	Server ServerConfig

	// Model backend selection and credentials.
	Model llm.Config

	Limits LimitsConfig

	// Optional integrations. Empty URLs disable them.
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// LimitsConfig holds request size limits.
type LimitsConfig struct {
	MaxUploadBytes int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:           getEnv("PORT", DefaultPort),
		AllowedOrigins: allowedOrigins(os.Getenv("FRONTEND_URL")),
	}

	cfg.Model = llm.Config{
		Backend:         strings.ToLower(getEnv("MODEL_BACKEND", llm.BackendVertex)),
		Model:           os.Getenv("MODEL_NAME"),
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:        getEnv("GOOGLE_CLOUD_LOCATION", llm.DefaultLocation),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
	}

	maxUpload, err := getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}
	if maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", maxUpload)
	}
	cfg.Limits = LimitsConfig{MaxUploadBytes: maxUpload}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisURL = os.Getenv("REDIS_URL")

	cfg.CacheTTL, err = getEnvDuration("CACHE_TTL", DefaultCacheTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func allowedOrigins(frontendURL string) []string {
	origins := []string{"http://localhost:3000", "http://localhost:" + DefaultPort}
	for _, origin := range strings.Split(frontendURL, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
