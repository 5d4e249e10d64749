package insight

import "github.com/mind-engage/mindengage-cognition/internal/results"

// Badge is awarded when a user's best score for a game passes a threshold.
type Badge struct {
	Label     string
	GameID    string
	Below     bool // true: best must be under Threshold; false: over it
	Threshold float64
}

var DefaultBadges = []Badge{
	{Label: "Lightning Fast Reflexes", GameID: "reaction", Below: true, Threshold: 200},
	{Label: "Walking Encyclopedia", GameID: "verbal-memory", Threshold: 50},
	{Label: "Highly Disciplined Impulse Control", GameID: "go-no-go", Below: true, Threshold: 400},
}

// Badges lists the badges earned by best, keyed by game id, in rule order.
// A zero best score never earns a badge.
func Badges(best map[string]results.GameResult) []string {
	out := []string{}
	for _, b := range DefaultBadges {
		r, ok := best[b.GameID]
		if !ok || r.Score == 0 {
			continue
		}
		if (b.Below && r.Score < b.Threshold) || (!b.Below && r.Score > b.Threshold) {
			out = append(out, b.Label)
		}
	}
	return out
}
