package models

// Feature column names, as the pipeline was fitted with them.
const (
	ColBattingTeam      = "batting_team"
	ColBowlingTeam      = "bowling_team"
	ColCity             = "city"
	ColRunsLeft         = "runs_left"
	ColBallsLeft        = "balls_left"
	ColWicketsRemaining = "wickets_remaining"
	ColTotalRunX        = "total_run_x"
	ColCRR              = "crr"
	ColRRR              = "rrr"
)

// CategoricalColumns and NumericColumns list every column a FeatureRecord carries.
var (
	CategoricalColumns = []string{ColBattingTeam, ColBowlingTeam, ColCity}
	NumericColumns     = []string{ColRunsLeft, ColBallsLeft, ColWicketsRemaining, ColTotalRunX, ColCRR, ColRRR}
)

// FeatureRecord is the single-row input handed to the classifier: the seven
// match fields plus the derived run rates.
type FeatureRecord struct {
	BattingTeam      string  `json:"batting_team"`
	BowlingTeam      string  `json:"bowling_team"`
	City             string  `json:"city"`
	RunsLeft         float64 `json:"runs_left"`
	BallsLeft        float64 `json:"balls_left"`
	WicketsRemaining float64 `json:"wickets_remaining"`
	TotalRunX        float64 `json:"total_run_x"`
	CRR              float64 `json:"crr"`
	RRR              float64 `json:"rrr"`
}

// Categorical returns the value of a categorical column.
func (f FeatureRecord) Categorical(col string) (string, bool) {
	switch col {
	case ColBattingTeam:
		return f.BattingTeam, true
	case ColBowlingTeam:
		return f.BowlingTeam, true
	case ColCity:
		return f.City, true
	}
	return "", false
}

// Numeric returns the value of a numeric column.
func (f FeatureRecord) Numeric(col string) (float64, bool) {
	switch col {
	case ColRunsLeft:
		return f.RunsLeft, true
	case ColBallsLeft:
		return f.BallsLeft, true
	case ColWicketsRemaining:
		return f.WicketsRemaining, true
	case ColTotalRunX:
		return f.TotalRunX, true
	case ColCRR:
		return f.CRR, true
	case ColRRR:
		return f.RRR, true
	}
	return 0, false
}

// TeamProbability is one side of a prediction.
type TeamProbability struct {
	TeamName           string  `json:"team_name"`
	WinningProbability float64 `json:"winning_probability"`
}

// PredictionResult is the /predict response body. Probabilities are
// percentages rounded to two decimals.
type PredictionResult struct {
	BattingTeam TeamProbability `json:"batting_team"`
	BowlingTeam TeamProbability `json:"bowling_team"`
}

// ModelInfo describes the loaded pipeline artifact.
type ModelInfo struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Classes  []int    `json:"classes"`
	Features []string `json:"features"`
}
