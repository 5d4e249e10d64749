package insight

import (
	"testing"

	"github.com/mind-engage/mindengage-cognition/internal/results"
	"github.com/mind-engage/mindengage-cognition/internal/traits"
)

// played marks every non-zero trait as having one played game.
func played(p traits.Profile) traits.Analysis {
	an := traits.Analysis{Profile: p, Coverage: map[traits.Trait]traits.Coverage{}}
	for _, s := range p.Scores() {
		if s.Value > 0 {
			an.Coverage[s.Trait] = traits.Coverage{Played: 1, Total: len(traits.Buckets[s.Trait])}
		}
	}
	return an
}

func TestGenerateArchetypes(t *testing.T) {
	cases := []struct {
		name string
		p    traits.Profile
		want string
	}{
		{"rapid processor", traits.Profile{Reasoning: 90, Speed: 80, Memory: 10},
			"Archetype: rapid_processor. You excel at quick logical deductions."},
		{"social strategist", traits.Profile{EQ: 70, Flexibility: 60},
			"Archetype: social_strategist. High emotional awareness combined with adaptability."},
		{"deep focus", traits.Profile{Memory: 88, Attention: 87, Speed: 20},
			"Archetype: deep_focus. Exceptional capacity for retaining information and sustained concentration."},
		{"grandmaster", traits.Profile{Flexibility: 75, Reasoning: 74},
			"Archetype: grandmaster. Strong planning and adaptability skills."},
		{"sharpshooter", traits.Profile{Speed: 99, Attention: 50, EQ: 49},
			"Archetype: sharpshooter. Fast reflexes with high precision."},
		{"fallback names top trait", traits.Profile{Memory: 72, Speed: 60},
			"Your strongest domain is MEMORY (72%), indicating a natural aptitude for this area."},
		{"empty profile", traits.Profile{}, NoDataMessage},
	}
	for _, c := range cases {
		if got := Generate(played(c.p)); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestRankTiesFollowTraitOrder(t *testing.T) {
	// Memory and Attention tie at the top; Memory is enumerated first.
	p := traits.Profile{Memory: 50, Attention: 50, Speed: 50, Flexibility: 50, Reasoning: 50, EQ: 50}
	ranked := rankPlayed(played(p))
	for i, tr := range traits.Order {
		if ranked[i].Trait != tr {
			t.Fatalf("rank[%d] = %s, want %s", i, ranked[i].Trait, tr)
		}
	}
	if got := Generate(played(p)); got != "Archetype: deep_focus. Exceptional capacity for retaining information and sustained concentration." {
		t.Fatalf("tie should resolve to deep_focus, got %q", got)
	}
}

func TestCustomRuleOrder(t *testing.T) {
	g := Generator{Rules: []Rule{
		{Name: "first", Top: traits.Speed, Second: traits.Attention, Text: "one"},
		{Name: "second", Top: traits.Speed, Second: traits.Attention, Text: "two"},
	}}
	p := traits.Profile{Speed: 90, Attention: 80}
	if got := g.Generate(played(p)); got != "Archetype: first. one" {
		t.Fatalf("first matching rule should win, got %q", got)
	}
	if got := g.Archetype(played(p)); got != "first" {
		t.Fatalf("Archetype = %q", got)
	}
	if got := g.Archetype(played(traits.Profile{EQ: 10})); got != "" {
		t.Fatalf("fallback archetype should be empty, got %q", got)
	}
}

func TestGenerateZeroScoresStillPlayed(t *testing.T) {
	an := traits.Analysis{Coverage: map[traits.Trait]traits.Coverage{
		traits.Speed: {Played: 1, Total: 4},
	}}
	want := "Your strongest domain is SPEED (0%), indicating a natural aptitude for this area."
	if got := Generate(an); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// Among played traits equal scores follow trait order.
	an.Coverage[traits.Memory] = traits.Coverage{Played: 1, Total: 5}
	an.Coverage[traits.Attention] = traits.Coverage{Played: 1, Total: 3}
	if got := defaultGenerator.Archetype(an); got != "deep_focus" {
		t.Fatalf("archetype = %q", got)
	}

	if got := Generate(traits.Analysis{}); got != NoDataMessage {
		t.Fatalf("no coverage: got %q", got)
	}
	if got := defaultGenerator.Archetype(traits.Analysis{}); got != "" {
		t.Fatalf("no coverage archetype = %q", got)
	}
}

func TestBadges(t *testing.T) {
	best := map[string]results.GameResult{
		"reaction":      {GameID: "reaction", Score: 180},
		"verbal-memory": {GameID: "verbal-memory", Score: 50},
		"go-no-go":      {GameID: "go-no-go", Score: 350},
	}
	got := Badges(best)
	if len(got) != 2 || got[0] != "Lightning Fast Reflexes" || got[1] != "Highly Disciplined Impulse Control" {
		t.Fatalf("badges = %v", got)
	}
	if got := Badges(map[string]results.GameResult{"reaction": {Score: 0}}); len(got) != 0 {
		t.Fatalf("zero score should not earn a badge: %v", got)
	}
}
