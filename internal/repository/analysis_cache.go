package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"travellens/pkg/llm"

	"github.com/redis/go-redis/v9"
)

const analysisKeyPrefix = "travellens:analysis:"

// AnalysisCache keeps decoded model results keyed by model and image digest.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(client *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{client: client, ttl: ttl}
}

func analysisKey(modelName, imageSHA256 string) string {
	return analysisKeyPrefix + modelName + ":" + imageSHA256
}

// GetAnalysis returns nil without an error on a cache miss.
func (c *AnalysisCache) GetAnalysis(ctx context.Context, modelName, imageSHA256 string) (*llm.AnalysisResult, error) {
	data, err := c.client.Get(ctx, analysisKey(modelName, imageSHA256)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result llm.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AnalysisCache) SetAnalysis(ctx context.Context, modelName, imageSHA256 string, result *llm.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, analysisKey(modelName, imageSHA256), data, c.ttl).Err()
}

func (c *AnalysisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
