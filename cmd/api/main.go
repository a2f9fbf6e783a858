package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"travellens/db"
	"travellens/internal/config"
	"travellens/internal/handler"
	"travellens/internal/repository"
	"travellens/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	analyzer, err := llm.NewAnalyzer(cfg.Model)
	if err != nil {
		log.Fatalf("error creating analyzer: %v", err)
	}

	slog.Info("model backend configured", "backend", cfg.Model.Backend, "model", analyzer.ModelName())

	analyzeHandler := handler.NewAnalyzeHandler(analyzer, cfg.Limits.MaxUploadBytes)
	checks := map[string]handler.Pinger{
		"database": nil,
		"cache":    nil,
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Limits.MaxUploadBytes
	r.Use(handler.RequestID(), handler.RequestLogger(), handler.Recovery())

	slog.Info("AllowOrigins URL:", "urls", cfg.Server.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		err = db.Migrate(db.DB)
		if err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}

		analysisRepo := repository.NewAnalysisRepository(db.DB)
		analyzeHandler.WithRecorder(analysisRepo)
		checks["database"] = analysisRepo

		historyHandler := handler.NewHistoryHandler(analysisRepo)
		r.GET("/analyses", historyHandler.GetAnalyses)
	} else {
		slog.Info("DATABASE_URL not set, analysis history disabled")
	}

	if cfg.RedisURL != "" {
		err = db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		analysisCache := repository.NewAnalysisCache(db.Redis, cfg.CacheTTL)
		analyzeHandler.WithCache(analysisCache)
		checks["cache"] = analysisCache
	} else {
		slog.Info("REDIS_URL not set, analysis cache disabled")
	}

	healthHandler := handler.NewHealthHandler(checks)

	r.GET("/", handler.ServeIndex)
	r.POST("/analyze", analyzeHandler.Analyze)
	r.GET("/health", healthHandler.GetHealth)

	err = r.Run(":" + cfg.Server.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
