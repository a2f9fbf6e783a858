package handler

type LocationResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type AnalysisResponse struct {
	LandmarkName                string           `json:"landmarkName"`
	Description                 string           `json:"description"`
	Location                    LocationResponse `json:"location"`
	PersonalizedRecommendations []string         `json:"personalizedRecommendations"`
	PhotoTips                   string           `json:"photoTips"`
}

type AnalysisRecordResponse struct {
	ID          int64            `json:"id"`
	RequestID   string           `json:"request_id"`
	ImageSHA256 string           `json:"image_sha256"`
	ModelUsed   string           `json:"model_used"`
	CreatedAt   string           `json:"created_at"`
	Analysis    AnalysisResponse `json:"analysis"`
}

type AnalysesResponse struct {
	Analyses []AnalysisRecordResponse `json:"analyses"`
	Total    int                      `json:"total"`
	Limit    int                      `json:"limit"`
	Offset   int                      `json:"offset"`
}
