package logic

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/cricpredict/winprob-api/internal/models"
)

func TestPredict_SpecialCasesSkipModel(t *testing.T) {
	tests := []struct {
		name        string
		m           models.Match
		wantBatting float64
		wantBowling float64
	}{
		{"Target reached", match(0, 10, 5, 150), 100, 0},
		{"All out overrides everything", match(20, 30, 0, 150), 0, 100},
		{"Innings over short of target", match(12, 0, 2, 150), 0, 100},
		{"Tie", match(1, 0, 2, 150), 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &MockClassifier{}
			svc := NewPredictionService(model, zap.NewNop().Sugar())

			res, err := svc.Predict(context.Background(), tt.m)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if model.Calls() != 0 {
				t.Errorf("model called %d times, want 0", model.Calls())
			}
			if res.BattingTeam.WinningProbability != tt.wantBatting || res.BowlingTeam.WinningProbability != tt.wantBowling {
				t.Errorf("Predict() = %v/%v, want %v/%v",
					res.BattingTeam.WinningProbability, res.BowlingTeam.WinningProbability, tt.wantBatting, tt.wantBowling)
			}
			if res.BattingTeam.TeamName != "A" || res.BowlingTeam.TeamName != "B" {
				t.Errorf("team names = %q/%q, want A/B", res.BattingTeam.TeamName, res.BowlingTeam.TeamName)
			}
		})
	}
}

func TestPredict_ModelPath(t *testing.T) {
	model := &MockClassifier{
		PredictProbaFunc: func(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
			return [2]float64{0.265437, 0.734563}, nil
		},
	}
	svc := NewPredictionService(model, zap.NewNop().Sugar())

	res, err := svc.Predict(context.Background(), match(45, 30, 6, 170))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	if model.Calls() != 1 {
		t.Fatalf("model called %d times, want 1", model.Calls())
	}
	if res.BattingTeam.WinningProbability != 73.46 {
		t.Errorf("batting = %v, want 73.46 (index 1)", res.BattingTeam.WinningProbability)
	}
	if res.BowlingTeam.WinningProbability != 26.54 {
		t.Errorf("bowling = %v, want 26.54 (index 0)", res.BowlingTeam.WinningProbability)
	}

	rec := model.Last()
	if rec.RRR != 9 {
		t.Errorf("model saw RRR = %v, want 9", rec.RRR)
	}
	if math.Abs(rec.CRR-125.0/15.0) > 1e-9 {
		t.Errorf("model saw CRR = %v, want %v", rec.CRR, 125.0/15.0)
	}
}

func TestPredict_ModelPathSumsToHundred(t *testing.T) {
	for _, p := range []float64{0, 0.00001, 0.123456, 0.5, 0.33335, 0.87654321, 0.99999, 1} {
		model := &MockClassifier{
			PredictProbaFunc: func(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
				return [2]float64{1 - p, p}, nil
			},
		}
		svc := NewPredictionService(model, zap.NewNop().Sugar())

		res, err := svc.Predict(context.Background(), match(60, 48, 7, 180))
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}
		sum := res.BattingTeam.WinningProbability + res.BowlingTeam.WinningProbability
		if math.Abs(sum-100) > 0.01+1e-9 {
			t.Errorf("p=%v: batting + bowling = %v, want 100 ± 0.01", p, sum)
		}
	}
}

func TestPredict_ModelError(t *testing.T) {
	boom := errors.New("shape mismatch")
	model := &MockClassifier{
		PredictProbaFunc: func(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
			return [2]float64{}, boom
		},
	}
	svc := NewPredictionService(model, zap.NewNop().Sugar())

	res, err := svc.Predict(context.Background(), match(45, 30, 6, 170))
	if !errors.Is(err, boom) {
		t.Fatalf("Predict() error = %v, want wrapped %v", err, boom)
	}
	if res != nil {
		t.Errorf("Predict() result = %+v, want nil", res)
	}
}
