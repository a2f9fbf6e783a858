package handler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"travellens/internal/model"
	"travellens/pkg/llm"

	"github.com/gin-gonic/gin"
)

const (
	imageField = "image"

	msgNoImageProvided = "No image file provided"
	msgNoImageSelected = "No image file selected"
	msgImageTooLarge   = "Image exceeds the maximum upload size"
	msgAnalysisFailed  = "Failed to analyze the image with the AI model."
	msgInternalError   = "An internal server error occurred."
)

type ResultCache interface {
	GetAnalysis(ctx context.Context, modelName, imageSHA256 string) (*llm.AnalysisResult, error)
	SetAnalysis(ctx context.Context, modelName, imageSHA256 string, result *llm.AnalysisResult) error
}

type AnalysisRecorder interface {
	SaveAnalysis(analysis *model.Analysis) error
}

type AnalyzeHandler struct {
	analyzer       llm.Analyzer
	maxUploadBytes int64
	cache          ResultCache
	recorder       AnalysisRecorder
}

func NewAnalyzeHandler(analyzer llm.Analyzer, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, maxUploadBytes: maxUploadBytes}
}

func (h *AnalyzeHandler) WithCache(cache ResultCache) *AnalyzeHandler {
	h.cache = cache
	return h
}

func (h *AnalyzeHandler) WithRecorder(recorder AnalysisRecorder) *AnalyzeHandler {
	h.recorder = recorder
	return h
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgImageTooLarge})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile(imageField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": msgImageTooLarge})
			return
		}

		// A part with an empty filename is parsed as a plain form value.
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value[imageField]; ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": msgNoImageSelected})
				return
			}
		}

		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoImageProvided})
		return
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoImageSelected})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("error opening uploaded image", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		slog.Error("error reading uploaded image", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	ctx := c.Request.Context()
	digest := sha256.Sum256(image)
	imageSHA256 := hex.EncodeToString(digest[:])
	modelName := h.analyzer.ModelName()

	if h.cache != nil {
		cached, err := h.cache.GetAnalysis(ctx, modelName, imageSHA256)
		if err != nil {
			slog.Warn("error reading analysis cache", "error", err, "request_id", requestID(c))
		}
		if cached != nil {
			slog.Info("analysis served from cache", "request_id", requestID(c), "image_sha256", imageSHA256)
			c.JSON(http.StatusOK, toAnalysisResponse(*cached))
			return
		}
	}

	result, err := h.analyzer.Analyze(ctx, image)
	if err != nil {
		slog.Error("error analyzing image", "error", err, "model", modelName, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAnalysisFailed})
		return
	}

	slog.Info("analyzed image", "landmark", result.LandmarkName, "model", modelName, "bytes", len(image), "request_id", requestID(c))

	if h.cache != nil {
		if err := h.cache.SetAnalysis(ctx, modelName, imageSHA256, result); err != nil {
			slog.Warn("error writing analysis cache", "error", err, "request_id", requestID(c))
		}
	}

	if h.recorder != nil {
		record := toAnalysisModel(*result)
		record.RequestID = requestID(c)
		record.ImageSHA256 = imageSHA256
		record.ModelUsed = modelName
		if err := h.recorder.SaveAnalysis(&record); err != nil {
			slog.Error("error saving analysis", "error", err, "request_id", requestID(c))
		}
	}

	c.JSON(http.StatusOK, toAnalysisResponse(*result))
}

func toAnalysisResponse(r llm.AnalysisResult) AnalysisResponse {
	recommendations := r.PersonalizedRecommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return AnalysisResponse{
		LandmarkName: r.LandmarkName,
		Description:  r.Description,
		Location: LocationResponse{
			City:    r.Location.City,
			Country: r.Location.Country,
		},
		PersonalizedRecommendations: recommendations,
		PhotoTips:                   r.PhotoTips,
	}
}

func toAnalysisModel(r llm.AnalysisResult) model.Analysis {
	return model.Analysis{
		LandmarkName:    r.LandmarkName,
		Description:     r.Description,
		City:            r.Location.City,
		Country:         r.Location.Country,
		Recommendations: r.PersonalizedRecommendations,
		PhotoTips:       r.PhotoTips,
	}
}
