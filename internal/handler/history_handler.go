package handler

import (
	"log/slog"
	"net/http"
	"time"
	"travellens/internal/model"

	"github.com/gin-gonic/gin"
)

type AnalysisStore interface {
	GetAnalyses(limit, offset int) ([]model.Analysis, error)
	GetAnalysisTotal() (int, error)
}

type HistoryHandler struct {
	repository AnalysisStore
}

func NewHistoryHandler(repository AnalysisStore) *HistoryHandler {
	return &HistoryHandler{repository: repository}
}

func (h *HistoryHandler) GetAnalyses(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	analyses, err := h.repository.GetAnalyses(limit, offset)
	if err != nil {
		slog.Error("error fetching analyses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetAnalysisTotal()
	if err != nil {
		slog.Error("error fetching analysis total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AnalysesResponse{
		Analyses: make([]AnalysisRecordResponse, 0, len(analyses)),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}

	for _, a := range analyses {
		res.Analyses = append(res.Analyses, toAnalysisRecordResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func toAnalysisRecordResponse(a model.Analysis) AnalysisRecordResponse {
	recommendations := a.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return AnalysisRecordResponse{
		ID:          a.ID,
		RequestID:   a.RequestID,
		ImageSHA256: a.ImageSHA256,
		ModelUsed:   a.ModelUsed,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		Analysis: AnalysisResponse{
			LandmarkName: a.LandmarkName,
			Description:  a.Description,
			Location: LocationResponse{
				City:    a.City,
				Country: a.Country,
			},
			PersonalizedRecommendations: recommendations,
			PhotoTips:                   a.PhotoTips,
		},
	}
}
