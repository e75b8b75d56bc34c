package handlers

import (
	"context"

	"github.com/cricpredict/winprob-api/internal/models"
)

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, m models.Match) (*models.PredictionResult, error)
	Calls       int
}

func (m *MockPredictionService) Predict(ctx context.Context, match models.Match) (*models.PredictionResult, error) {
	m.Calls++
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, match)
	}
	return &models.PredictionResult{
		BattingTeam: models.TeamProbability{TeamName: match.BattingTeam, WinningProbability: 50},
		BowlingTeam: models.TeamProbability{TeamName: match.BowlingTeam, WinningProbability: 50},
	}, nil
}

// MockPinger
type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
