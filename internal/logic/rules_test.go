package logic

import (
	"testing"

	"github.com/cricpredict/winprob-api/internal/models"
)

func match(runs, balls, wickets, target float64) models.Match {
	return models.Match{
		BattingTeam:      "A",
		BowlingTeam:      "B",
		City:             "X",
		RunsLeft:         runs,
		BallsLeft:        balls,
		WicketsRemaining: wickets,
		TotalRunX:        target,
	}
}

func TestApplyRules(t *testing.T) {
	tests := []struct {
		name        string
		m           models.Match
		wantRule    string
		wantBatting float64
		wantMatch   bool
	}{
		{"Target reached", match(0, 10, 5, 150), "target_reached", 100, true},
		{"All out mid-chase", match(20, 30, 0, 150), "all_out", 0, true},
		{"All out beats target reached", match(0, 10, 0, 150), "all_out", 0, true},
		{"All out beats tie", match(1, 0, 0, 150), "all_out", 0, true},
		{"All out beats balls exhausted", match(30, 0, 0, 150), "all_out", 0, true},
		{"Balls exhausted", match(2, 0, 4, 150), "balls_exhausted", 0, true},
		{"Fractional runs over one with no balls", match(1.5, 0, 4, 150), "balls_exhausted", 0, true},
		{"Tie on last ball", match(1, 0, 3, 150), "tie", 50, true},
		{"Zero runs, zero balls falls through", match(0, 0, 3, 150), "", 0, false},
		{"Live chase", match(45, 30, 6, 170), "", 0, false},
		{"First ball", match(170, 120, 10, 170), "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := ApplyRules(tt.m)
			if ok != tt.wantMatch {
				t.Fatalf("ApplyRules() matched = %v, want %v", ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			if rule.Name != tt.wantRule {
				t.Errorf("rule = %q, want %q", rule.Name, tt.wantRule)
			}
			if rule.Batting != tt.wantBatting {
				t.Errorf("batting = %v, want %v", rule.Batting, tt.wantBatting)
			}
			if rule.Batting+rule.Bowling() != 100 {
				t.Errorf("batting + bowling = %v, want 100", rule.Batting+rule.Bowling())
			}
		})
	}
}

func TestApplyRules_WicketsZeroAlwaysLoses(t *testing.T) {
	for runs := 0.0; runs <= 200; runs += 7 {
		for balls := 0.0; balls <= 120; balls += 11 {
			rule, ok := ApplyRules(match(runs, balls, 0, 200))
			if !ok || rule.Name != "all_out" || rule.Batting != 0 || rule.Bowling() != 100 {
				t.Fatalf("runs=%v balls=%v: got %+v (matched=%v), want all_out 0/100", runs, balls, rule, ok)
			}
		}
	}
}
