package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mind-engage/mindengage-cognition/internal/traits"
)

// NoDataMessage is returned for a profile with nothing to rank.
const NoDataMessage = "Complete more tests to generate an insight profile."

// Rule matches the two highest-ranked traits.
type Rule struct {
	Name   string
	Top    traits.Trait
	Second traits.Trait
	Text   string
}

func (r Rule) Match(top, second traits.Trait) bool {
	return r.Top == top && r.Second == second
}

func (r Rule) Render() string { return fmt.Sprintf("Archetype: %s. %s", r.Name, r.Text) }

// DefaultRules is evaluated in order; the first match wins.
var DefaultRules = []Rule{
	{Name: "rapid_processor", Top: traits.Reasoning, Second: traits.Speed,
		Text: "You excel at quick logical deductions."},
	{Name: "social_strategist", Top: traits.EQ, Second: traits.Flexibility,
		Text: "High emotional awareness combined with adaptability."},
	{Name: "deep_focus", Top: traits.Memory, Second: traits.Attention,
		Text: "Exceptional capacity for retaining information and sustained concentration."},
	{Name: "grandmaster", Top: traits.Flexibility, Second: traits.Reasoning,
		Text: "Strong planning and adaptability skills."},
	{Name: "sharpshooter", Top: traits.Speed, Second: traits.Attention,
		Text: "Fast reflexes with high precision."},
}

type Generator struct {
	Rules []Rule
}

var defaultGenerator = Generator{Rules: DefaultRules}

// Generate uses DefaultRules.
func Generate(an traits.Analysis) string { return defaultGenerator.Generate(an) }

// rankPlayed orders traits by descending score. At equal scores played
// traits come first, then traits.Order.
func rankPlayed(an traits.Analysis) []traits.Score {
	played := func(t traits.Trait) bool { return an.Coverage[t].Played > 0 }
	s := an.Profile.Scores()
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Value != s[j].Value {
			return s[i].Value > s[j].Value
		}
		return played(s[i].Trait) && !played(s[j].Trait)
	})
	return s
}

func (g Generator) match(ranked []traits.Score) (Rule, bool) {
	for _, r := range g.Rules {
		if r.Match(ranked[0].Trait, ranked[1].Trait) {
			return r, true
		}
	}
	return Rule{}, false
}

// Generate returns NoDataMessage only when no game has been played; a
// user who scored zero everywhere still gets a ranked insight.
func (g Generator) Generate(an traits.Analysis) string {
	if !an.Played() {
		return NoDataMessage
	}
	ranked := rankPlayed(an)
	if r, ok := g.match(ranked); ok {
		return r.Render()
	}
	top := ranked[0]
	return fmt.Sprintf("Your strongest domain is %s (%d%%), indicating a natural aptitude for this area.",
		strings.ToUpper(string(top.Trait)), top.Value)
}

// Archetype returns the matching rule name, or "" when the fallback applies.
func (g Generator) Archetype(an traits.Analysis) string {
	if !an.Played() {
		return ""
	}
	if r, ok := g.match(rankPlayed(an)); ok {
		return r.Name
	}
	return ""
}
