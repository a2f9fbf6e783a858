package model

import "time"

type Analysis struct {
	ID              int64
	RequestID       string
	ImageSHA256     string
	ModelUsed       string
	LandmarkName    string
	Description     string
	City            string
	Country         string
	Recommendations []string
	PhotoTips       string
	CreatedAt       time.Time
}
