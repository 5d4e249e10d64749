package traits

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/results"
)

func res(id, game string, score float64, lower bool) results.GameResult {
	return results.GameResult{
		ID:            id,
		UserID:        "u1",
		GameID:        game,
		Score:         score,
		LowerIsBetter: lower,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)
	cases := []struct {
		name string
		game string
		raw  float64
		want int
	}{
		{"faster than average reaction scores high", "reaction", 220, 95},
		{"reaction at mean", "reaction", 300, 50},
		{"slow reaction scores low", "reaction", 400, 2},
		{"visual memory one sd up", "visual-memory", 11, 84},
		{"unknown game is neutral", "tower-planning", 99, 50},
		{"nan raw is neutral", "reaction", math.NaN(), 50},
		{"far tail clamps", "typing", 1e9, 100},
		{"far lower tail clamps", "typing", -1e9, 0},
	}
	for _, c := range cases {
		if got := n.Normalize(c.game, c.raw); got != c.want {
			t.Fatalf("%s: Normalize(%q, %v) = %d, want %d", c.name, c.game, c.raw, got, c.want)
		}
	}
}

func TestNormalizeDegenerateBaseline(t *testing.T) {
	n := NewNormalizer(baseline.New(
		baseline.Entry{GameID: "flat", Mean: 10, StdDev: 0},
		baseline.Entry{GameID: "neg", Mean: 10, StdDev: -3},
	))
	for _, g := range []string{"flat", "neg"} {
		for _, raw := range []float64{-100, 10, 100} {
			if got := n.Normalize(g, raw); got != Neutral {
				t.Fatalf("Normalize(%q, %v) = %d, want %d", g, raw, got, Neutral)
			}
		}
	}
}

func TestNormalizeBoundedAndMonotonic(t *testing.T) {
	for _, lower := range []bool{false, true} {
		n := NewNormalizer(baseline.New(baseline.Entry{GameID: "g", Mean: 100, StdDev: 15, LowerIsBetter: lower}))
		if got := n.Normalize("g", 100); got < 49 || got > 51 {
			t.Fatalf("lower=%v: score at mean = %d, want ~50", lower, got)
		}
		prev := n.Normalize("g", -200)
		for raw := -200.0; raw <= 400; raw += 0.5 {
			got := n.Normalize("g", raw)
			if got < 0 || got > 100 {
				t.Fatalf("Normalize(%v) = %d out of range", raw, got)
			}
			if !lower && got < prev {
				t.Fatalf("not non-decreasing at %v: %d < %d", raw, got, prev)
			}
			if lower && got > prev {
				t.Fatalf("not non-increasing at %v: %d > %d", raw, got, prev)
			}
			prev = got
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	a := NewAggregator(NewNormalizer(nil))
	if got := a.Aggregate(nil); !got.IsEmpty() {
		t.Fatalf("empty history should give zero profile, got %+v", got)
	}
	an := a.Analyze([]results.GameResult{})
	for _, tr := range Order {
		c := an.Coverage[tr]
		if c.Played != 0 || c.Total != len(Buckets[tr]) {
			t.Fatalf("%s coverage = %+v", tr, c)
		}
	}
}

func TestAggregateScenario(t *testing.T) {
	a := NewAggregator(NewNormalizer(nil))
	history := []results.GameResult{
		res("1", "reaction", 350, true),
		res("2", "reaction", 220, true),
		res("3", "visual-memory", 11, false),
		res("4", "visual-memory", 7, false),
		res("5", "number-memory", 7, false),
		res("6", "tower-planning", 80, false),
		res("7", "personality-test", 0, false),
	}
	an := a.Analyze(history)

	want := Profile{Memory: 67, Speed: 95, Flexibility: 50}
	if diff := cmp.Diff(want, an.Profile); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
	if c := an.Coverage[Memory]; c.Played != 2 || c.Total != 5 {
		t.Fatalf("memory coverage = %+v", c)
	}
	if c := an.Coverage[Attention]; c.Played != 0 {
		t.Fatalf("attention coverage = %+v", c)
	}
	if an.Percentiles["reaction"] != 95 || an.Percentiles["tower-planning"] != 50 {
		t.Fatalf("percentiles = %v", an.Percentiles)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := NewAggregator(NewNormalizer(nil))
	history := []results.GameResult{
		res("a", "reaction", 250, true),
		res("b", "reaction", 250, true),
		res("c", "aim-trainer", 430, true),
		res("d", "typing", 72, false),
		res("e", "stroop", 180, true),
		res("f", "n-back", 3, false),
		res("g", "go-no-go", 470, true),
		res("h", "logic-test", 8, false),
		res("i", "mental-math", 14, false),
		res("j", "emotion-recognition", 91, false),
		res("k", "risk-decision", 1200, false),
		res("l", "chimpanzee", 12, false),
	}
	want := a.Analyze(history)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		shuffled := append([]results.GameResult(nil), history...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if diff := cmp.Diff(want, a.Analyze(shuffled)); diff != "" {
			t.Fatalf("analysis depends on order (-want +got):\n%s", diff)
		}
	}
}

func TestAggregateNonFinite(t *testing.T) {
	a := NewAggregator(NewNormalizer(nil))

	onlyBad := []results.GameResult{res("1", "reaction", math.NaN(), true)}
	an := a.Analyze(onlyBad)
	if an.Profile.Speed != 0 || an.Coverage[Speed].Played != 1 {
		t.Fatalf("corrupt-only game: speed=%d coverage=%+v", an.Profile.Speed, an.Coverage[Speed])
	}

	mixed := []results.GameResult{
		res("1", "reaction", math.Inf(-1), true),
		res("2", "reaction", 300, true),
	}
	if got := a.Aggregate(mixed).Speed; got != 50 {
		t.Fatalf("finite result should win over corrupt one, speed=%d", got)
	}
}

func TestBestPerGameDirection(t *testing.T) {
	a := NewAggregator(NewNormalizer(nil))
	best, _ := a.BestPerGame([]results.GameResult{
		// baseline says lower is better even though the record disagrees
		res("1", "reaction", 220, false),
		res("2", "reaction", 350, false),
		// no baseline: the record's own flag decides
		res("3", "task-switching", 120, true),
		res("4", "task-switching", 80, true),
		res("5", "theory-of-mind", 2, false),
		res("6", "theory-of-mind", 3, false),
	})
	if best["reaction"].ID != "1" || best["task-switching"].ID != "4" || best["theory-of-mind"].ID != "6" {
		t.Fatalf("unexpected best picks: %+v", best)
	}
}

func TestRadarPoints(t *testing.T) {
	pts := RadarPoints(Profile{Memory: 10, EQ: 90})
	if len(pts) != 6 {
		t.Fatalf("want 6 points, got %d", len(pts))
	}
	if pts[0] != (RadarPoint{Subject: "Memory", A: 10, FullMark: 100}) {
		t.Fatalf("first point = %+v", pts[0])
	}
	if pts[5].Subject != "EQ & Social" || pts[5].A != 90 {
		t.Fatalf("last point = %+v", pts[5])
	}
}
