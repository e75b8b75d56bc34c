package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cricpredict/winprob-api/internal/models"
)

type predictionService struct {
	model  Classifier
	logger *zap.SugaredLogger
}

// NewPredictionService wires the loaded model into the prediction flow. The
// model is shared read-only by every request.
func NewPredictionService(model Classifier, logger *zap.SugaredLogger) PredictionService {
	return &predictionService{model: model, logger: logger}
}

// Predict resolves boundary states by rule and sends everything else to the model.
func (s *predictionService) Predict(ctx context.Context, m models.Match) (*models.PredictionResult, error) {
	if rule, ok := ApplyRules(m); ok {
		predictionsTotal.WithLabelValues(rule.Name).Inc()
		s.logger.Debugw("Special case applied", "rule", rule.Name, "batting", m.BattingTeam, "bowling", m.BowlingTeam)
		return newResult(m, rule.Batting, rule.Bowling()), nil
	}

	rec := DeriveFeatures(m)
	s.logger.Debugw("Model input", "features", rec)

	start := time.Now()
	proba, err := s.model.PredictProba(ctx, rec)
	inferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		inferenceFailures.Inc()
		return nil, fmt.Errorf("model inference: %w", err)
	}
	predictionsTotal.WithLabelValues("model").Inc()

	// Index 1 is the batting side's win, index 0 its loss
	return newResult(m, round2(proba[1]*100), round2(proba[0]*100)), nil
}

func newResult(m models.Match, batting, bowling float64) *models.PredictionResult {
	return &models.PredictionResult{
		BattingTeam: models.TeamProbability{TeamName: m.BattingTeam, WinningProbability: batting},
		BowlingTeam: models.TeamProbability{TeamName: m.BowlingTeam, WinningProbability: bowling},
	}
}
