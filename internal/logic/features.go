package logic

import (
	"math"

	"github.com/cricpredict/winprob-api/internal/models"
)

// CurrentRunRate is runs scored per over so far. It is 0 before the first
// ball, when no overs have been bowled.
func CurrentRunRate(m models.Match) float64 {
	if m.BallsLeft >= models.BallsPerInnings {
		return 0
	}
	oversBowled := (models.BallsPerInnings - m.BallsLeft) / models.BallsPerOver
	return (m.TotalRunX - m.RunsLeft) / oversBowled
}

// RequiredRunRate is runs needed per over from here. It is 0 once the
// innings has no balls left.
func RequiredRunRate(m models.Match) float64 {
	if m.BallsLeft == 0 {
		return 0
	}
	return (m.RunsLeft * models.BallsPerOver) / m.BallsLeft
}

// DeriveFeatures builds the classifier input for m.
func DeriveFeatures(m models.Match) models.FeatureRecord {
	return models.FeatureRecord{
		BattingTeam:      m.BattingTeam,
		BowlingTeam:      m.BowlingTeam,
		City:             m.City,
		RunsLeft:         m.RunsLeft,
		BallsLeft:        m.BallsLeft,
		WicketsRemaining: m.WicketsRemaining,
		TotalRunX:        m.TotalRunX,
		CRR:              CurrentRunRate(m),
		RRR:              RequiredRunRate(m),
	}
}

// round2 rounds a percentage to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
