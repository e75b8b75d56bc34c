package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Overs in a limited-overs innings, expressed in balls.
const (
	BallsPerOver    = 6
	BallsPerInnings = 120
)

// ErrMissingFields is returned when a required match field is absent or null.
var ErrMissingFields = errors.New("missing required fields in input data")

// MatchState is the inbound /predict payload. Fields are pointers so an
// explicit zero can be told apart from an absent or null value.
type MatchState struct {
	BattingTeam      *string  `json:"batting_team" validate:"required"`
	BowlingTeam      *string  `json:"bowling_team" validate:"required"`
	City             *string  `json:"city" validate:"required"`
	RunsLeft         *float64 `json:"runs_left" validate:"required"`
	BallsLeft        *float64 `json:"balls_left" validate:"required"`
	WicketsRemaining *float64 `json:"wickets_remaining" validate:"required"`
	TotalRunX        *float64 `json:"total_run_x" validate:"required"`
}

// Match is a validated match state with every field present.
type Match struct {
	BattingTeam      string
	BowlingTeam      string
	City             string
	RunsLeft         float64
	BallsLeft        float64
	WicketsRemaining float64
	TotalRunX        float64
}

// Resolve validates the payload and returns the dereferenced match.
// Any missing field yields an error wrapping ErrMissingFields.
func (s *MatchState) Resolve(v *validator.Validate) (Match, error) {
	if err := v.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return Match{}, fmt.Errorf("%w: %v", ErrMissingFields, fields)
		}
		return Match{}, err
	}

	return Match{
		BattingTeam:      *s.BattingTeam,
		BowlingTeam:      *s.BowlingTeam,
		City:             *s.City,
		RunsLeft:         *s.RunsLeft,
		BallsLeft:        *s.BallsLeft,
		WicketsRemaining: *s.WicketsRemaining,
		TotalRunX:        *s.TotalRunX,
	}, nil
}
