package traits

import (
	"math"

	"github.com/mind-engage/mindengage-cognition/internal/results"
	"github.com/mind-engage/mindengage-cognition/internal/stats"
)

type Trait string

const (
	Memory      Trait = "memory"
	Attention   Trait = "attention"
	Speed       Trait = "speed"
	Flexibility Trait = "flexibility"
	Reasoning   Trait = "reasoning"
	EQ          Trait = "eq"
)

// Order is the canonical trait order. Ties in rankings resolve by it.
var Order = []Trait{Memory, Attention, Speed, Flexibility, Reasoning, EQ}

// Buckets lists the games feeding each trait.
var Buckets = map[Trait][]string{
	Memory:      {"visual-memory", "number-memory", "sequence-memory", "chimpanzee", "verbal-memory"},
	Attention:   {"sustained-attention", "go-no-go", "n-back"},
	Speed:       {"reaction", "aim-trainer", "stroop", "typing"},
	Flexibility: {"task-switching", "tower-planning", "risk-decision"},
	Reasoning:   {"pattern-recognition", "logic-test", "mental-math"},
	EQ:          {"emotion-recognition", "delay-gratification", "theory-of-mind", "bias-benchmarks"},
}

// Profile holds the six trait percentiles, each an integer in [0,100].
// A zero means "no data" as well as "bottom of the distribution"; Coverage
// tells the two apart.
type Profile struct {
	Memory      int `json:"memory"`
	Attention   int `json:"attention"`
	Speed       int `json:"speed"`
	Flexibility int `json:"flexibility"`
	Reasoning   int `json:"reasoning"`
	EQ          int `json:"eq"`
}

func (p Profile) Get(t Trait) int {
	switch t {
	case Memory:
		return p.Memory
	case Attention:
		return p.Attention
	case Speed:
		return p.Speed
	case Flexibility:
		return p.Flexibility
	case Reasoning:
		return p.Reasoning
	case EQ:
		return p.EQ
	}
	return 0
}

func (p *Profile) set(t Trait, v int) {
	switch t {
	case Memory:
		p.Memory = v
	case Attention:
		p.Attention = v
	case Speed:
		p.Speed = v
	case Flexibility:
		p.Flexibility = v
	case Reasoning:
		p.Reasoning = v
	case EQ:
		p.EQ = v
	}
}

type Score struct {
	Trait Trait `json:"trait"`
	Value int   `json:"value"`
}

// Scores lists the profile in Order.
func (p Profile) Scores() []Score {
	out := make([]Score, len(Order))
	for i, t := range Order {
		out[i] = Score{Trait: t, Value: p.Get(t)}
	}
	return out
}

// IsEmpty reports whether every trait is zero.
func (p Profile) IsEmpty() bool { return p == Profile{} }

// Coverage counts how many of a trait's games the user has played.
type Coverage struct {
	Played int `json:"played"`
	Total  int `json:"total"`
}

type Analysis struct {
	Profile  Profile            `json:"profile"`
	Coverage map[Trait]Coverage `json:"coverage"`
	// Percentiles holds the normalized best score per played game.
	Percentiles map[string]int `json:"percentiles"`
}

// Played reports whether any trait has at least one played game.
func (a Analysis) Played() bool {
	for _, c := range a.Coverage {
		if c.Played > 0 {
			return true
		}
	}
	return false
}

type Aggregator struct {
	norm    Normalizer
	buckets map[Trait][]string
}

type Option func(*Aggregator)

// WithBuckets replaces the default trait→games mapping.
func WithBuckets(b map[Trait][]string) Option { return func(a *Aggregator) { a.buckets = b } }

func NewAggregator(n Normalizer, opts ...Option) Aggregator {
	a := Aggregator{norm: n, buckets: Buckets}
	for _, o := range opts {
		o(&a)
	}
	return a
}

// BestPerGame selects, per game id, the user's best finite result. The
// direction comes from the baseline when the game has one, otherwise from
// the record. Equal scores keep the earliest record, so the choice does not
// depend on input order. Games with results but no finite score are
// reported in corrupt.
func (a Aggregator) BestPerGame(history []results.GameResult) (best map[string]results.GameResult, corrupt map[string]bool) {
	best = map[string]results.GameResult{}
	corrupt = map[string]bool{}
	for _, r := range history {
		if !finite(r.Score) {
			if _, ok := best[r.GameID]; !ok {
				corrupt[r.GameID] = true
			}
			continue
		}
		delete(corrupt, r.GameID)
		lower := r.LowerIsBetter
		if e, ok := a.norm.table.Lookup(r.GameID); ok {
			lower = e.LowerIsBetter
		}
		cur, ok := best[r.GameID]
		if !ok || results.Better(r.Score, cur.Score, lower) ||
			(r.Score == cur.Score && results.Earlier(r, cur)) {
			best[r.GameID] = r
		}
	}
	return best, corrupt
}

// Aggregate computes the six-trait profile from a user's full history.
func (a Aggregator) Aggregate(history []results.GameResult) Profile {
	return a.Analyze(history).Profile
}

// Analyze is Aggregate plus the per-trait coverage and per-game percentiles.
func (a Aggregator) Analyze(history []results.GameResult) Analysis {
	best, corrupt := a.BestPerGame(history)
	out := Analysis{
		Coverage:    make(map[Trait]Coverage, len(Order)),
		Percentiles: map[string]int{},
	}
	for _, t := range Order {
		games := a.buckets[t]
		sum, played := 0.0, 0
		for _, g := range games {
			if r, ok := best[g]; ok {
				p := a.norm.Normalize(g, r.Score)
				out.Percentiles[g] = p
				sum += float64(p)
				played++
			} else if corrupt[g] {
				out.Percentiles[g] = 0
				played++
			}
		}
		v := 0.0
		if played > 0 {
			v = sum / float64(played)
		}
		out.Profile.set(t, sanitize(v))
		out.Coverage[t] = Coverage{Played: played, Total: len(games)}
	}
	return out
}

func sanitize(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return stats.ClampInt(int(math.Round(stats.Clamp(v, 0, 100))), 0, 100)
}
