package traits

import (
	"math"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/stats"
)

// Neutral is the percentile reported when a score cannot be placed on a
// distribution (unknown game, degenerate baseline).
const Neutral = 50

// Normalizer converts raw game scores into 0–100 percentiles.
type Normalizer struct {
	table *baseline.Table
}

// NewNormalizer uses t, or the default table when t is nil.
func NewNormalizer(t *baseline.Table) Normalizer {
	if t == nil {
		t = baseline.Default()
	}
	return Normalizer{table: t}
}

func (n Normalizer) Table() *baseline.Table { return n.table }

// Normalize places raw on gameID's baseline distribution. Higher is always
// better in the output: lower-is-better games are inverted.
func (n Normalizer) Normalize(gameID string, raw float64) int {
	e, ok := n.table.Lookup(gameID)
	if !ok || !finite(raw) || !finite(e.Mean) || !finite(e.StdDev) || e.StdDev <= 0 {
		return Neutral
	}
	p := stats.Percentile((raw - e.Mean) / e.StdDev)
	if e.LowerIsBetter {
		p = 1 - p
	}
	return stats.ClampInt(int(math.Round(p*100)), 0, 100)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
