package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"travellens/internal/model"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) SaveAnalysis(analysis *model.Analysis) error {
	recommendations, err := json.Marshal(analysis.Recommendations)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO landmark_analysis(request_id, image_sha256, model_used, landmark_name, description, city, country, recommendations, photo_tips)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, analysis.RequestID, analysis.ImageSHA256, analysis.ModelUsed, analysis.LandmarkName, analysis.Description,
		analysis.City, analysis.Country, recommendations, analysis.PhotoTips).Scan(&analysis.ID, &analysis.CreatedAt)
}

func (r *AnalysisRepository) GetAnalyses(limit, offset int) ([]model.Analysis, error) {
	rows, err := r.db.Query(`
		SELECT id, request_id, image_sha256, model_used, landmark_name, description, city, country, recommendations, photo_tips, created_at
		FROM landmark_analysis
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []model.Analysis
	for rows.Next() {
		var a model.Analysis
		var recommendationsJSON []byte
		err := rows.Scan(&a.ID, &a.RequestID, &a.ImageSHA256, &a.ModelUsed, &a.LandmarkName, &a.Description,
			&a.City, &a.Country, &recommendationsJSON, &a.PhotoTips, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(recommendationsJSON, &a.Recommendations); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return analyses, nil
}

func (r *AnalysisRepository) GetAnalysisTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM landmark_analysis`).Scan(&total)
	return total, err
}

func (r *AnalysisRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
