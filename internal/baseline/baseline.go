package baseline

import "sort"

// Entry is the reference distribution for one game's raw score.
type Entry struct {
	GameID        string  `json:"game_id" yaml:"game_id"`
	Mean          float64 `json:"mean" yaml:"mean"`
	StdDev        float64 `json:"std_dev" yaml:"std_dev"`
	LowerIsBetter bool    `json:"lower_is_better" yaml:"lower_is_better"`
}

// Table maps game ids to entries. A Table is never mutated after
// construction, so it is safe to share between goroutines.
type Table struct {
	entries map[string]Entry
}

func New(entries ...Entry) *Table {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.entries[e.GameID] = e
	}
	return t
}

// Lookup returns the entry for gameID. Unknown games are an expected state
// (new or unmodeled tests) and simply report false.
func (t *Table) Lookup(gameID string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[gameID]
	return e, ok
}

// With returns a copy of t with overrides applied on top.
func (t *Table) With(overrides ...Entry) *Table {
	out := New(t.Entries()...)
	for _, e := range overrides {
		out.entries[e.GameID] = e
	}
	return out
}

// Entries lists the table sorted by game id.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// defaults are calibrated guesses, not fitted to population data.
var defaults = []Entry{
	{GameID: "reaction", Mean: 300, StdDev: 50, LowerIsBetter: true},     // ms
	{GameID: "sequence-memory", Mean: 8, StdDev: 2},                      // level
	{GameID: "aim-trainer", Mean: 500, StdDev: 100, LowerIsBetter: true}, // ms per target
	{GameID: "number-memory", Mean: 7, StdDev: 2},                        // digits
	{GameID: "verbal-memory", Mean: 30, StdDev: 10},                      // words
	{GameID: "visual-memory", Mean: 9, StdDev: 2},                        // level
	{GameID: "typing", Mean: 40, StdDev: 15},                             // wpm
	{GameID: "stroop", Mean: 200, StdDev: 50, LowerIsBetter: true},       // ms interference
	{GameID: "chimpanzee", Mean: 9, StdDev: 3},                           // level
	{GameID: "sustained-attention", Mean: 90, StdDev: 10},                // % accuracy
	{GameID: "go-no-go", Mean: 500, StdDev: 50, LowerIsBetter: true},     // ms
	{GameID: "n-back", Mean: 2, StdDev: 1},                               // n level
	{GameID: "mental-math", Mean: 20, StdDev: 5},                         // ops/min
	{GameID: "pattern-recognition", Mean: 5, StdDev: 2},                  // solved
	{GameID: "logic-test", Mean: 5, StdDev: 2},                           // solved
	{GameID: "delay-gratification", Mean: 30, StdDev: 15},                // seconds waited
	{GameID: "emotion-recognition", Mean: 80, StdDev: 10},                // % correct
}

var defaultTable = New(defaults...)

// Default returns the built-in table.
func Default() *Table { return defaultTable }
