package logic

import (
	"context"
	"time"

	"github.com/cricpredict/winprob-api/internal/models"
)

// PredictionService turns a validated match state into a win-probability split.
type PredictionService interface {
	Predict(ctx context.Context, m models.Match) (*models.PredictionResult, error)
}

// Classifier is the loaded model. It returns (P(loss), P(win)) for the
// batting side and must be safe for concurrent use.
type Classifier interface {
	PredictProba(ctx context.Context, rec models.FeatureRecord) ([2]float64, error)
}

// CacheStore defines the key/value operations the inference cache needs
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}
