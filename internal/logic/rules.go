package logic

import "github.com/cricpredict/winprob-api/internal/models"

// Rule is a deterministic outcome for a boundary match state. Batting is the
// batting side's winning percentage; the bowling side gets the remainder.
type Rule struct {
	Name    string
	Batting float64
	applies func(m models.Match) bool
}

// Bowling returns the bowling side's winning percentage.
func (r Rule) Bowling() float64 {
	return 100 - r.Batting
}

// specialCases are checked in order and the first match wins. All out beats
// every other rule, so a chase with no wickets left is a loss even when the
// target has already been reached.
var specialCases = []Rule{
	{
		Name:    "all_out",
		Batting: 0,
		applies: func(m models.Match) bool { return m.WicketsRemaining == 0 },
	},
	{
		Name:    "balls_exhausted",
		Batting: 0,
		applies: func(m models.Match) bool { return m.RunsLeft > 1 && m.BallsLeft == 0 },
	},
	{
		// One run short off the last ball is scored as a coin flip.
		Name:    "tie",
		Batting: 50,
		applies: func(m models.Match) bool { return m.BallsLeft == 0 && m.RunsLeft == 1 },
	},
	{
		Name:    "target_reached",
		Batting: 100,
		applies: func(m models.Match) bool { return m.RunsLeft == 0 && m.BallsLeft > 0 },
	},
}

// ApplyRules returns the first special case that matches m.
func ApplyRules(m models.Match) (Rule, bool) {
	for _, r := range specialCases {
		if r.applies(m) {
			return r, true
		}
	}
	return Rule{}, false
}
