package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/personality"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTraitsCommand(t *testing.T) {
	hist := writeFile(t, "history.json", `[
		{"game_id":"reaction","score":350,"lower_is_better":true},
		{"game_id":"reaction","score":220,"lower_is_better":true},
		{"game_id":"visual-memory","score":11}
	]`)
	out, _, err := run(t, "", "traits", "--history", hist, "--baselines", "")
	if err != nil {
		t.Fatalf("traits: %v", err)
	}
	var rep profile.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if rep.Profile.Speed != 95 || rep.Profile.Memory != 84 {
		t.Fatalf("profile = %+v", rep.Profile)
	}
}

func TestTraitsCommandOverrides(t *testing.T) {
	over := writeFile(t, "b.yaml", "baselines:\n  - game_id: reaction\n    mean: 220\n    std_dev: 40\n    lower_is_better: true\n")
	out, _, err := run(t, `[{"game_id":"reaction","score":220,"lower_is_better":true}]`,
		"traits", "--history", "-", "--baselines", over, "--compact")
	if err != nil {
		t.Fatalf("traits: %v", err)
	}
	if !strings.Contains(out, `"speed":50`) {
		t.Fatalf("override not applied: %s", out)
	}
}

func TestTraitsCommandRejectsBadRecord(t *testing.T) {
	_, _, err := run(t, `[{"score":1}]`, "traits", "--history", "-", "--baselines", "")
	if err == nil || !strings.Contains(err.Error(), "history[0]") {
		t.Fatalf("err = %v", err)
	}
}

func TestPersonalityCommand(t *testing.T) {
	answers := map[string]int{}
	for _, q := range personality.Questions {
		answers[strconv.Itoa(q.ID)] = -2
	}
	body, _ := json.Marshal(answers)
	out, _, err := run(t, string(body), "personality", "--answers", "-")
	if err != nil {
		t.Fatalf("personality: %v", err)
	}
	var got struct {
		Profile personality.Profile `json:"profile"`
		Record  *personality.Record `json:"record"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Profile.Type != "INFP" || got.Record == nil {
		t.Fatalf("got %+v", got)
	}

	_, stderr, err := run(t, `{"1":2}`, "personality", "--answers", "-")
	if err != nil || !strings.Contains(stderr, "1 of 50") {
		t.Fatalf("partial: err=%v stderr=%q", err, stderr)
	}
	if _, _, err := run(t, `{"1":2}`, "personality", "--answers", "-", "--strict"); err == nil {
		t.Fatal("strict mode accepted partial answers")
	}
	if _, _, err := run(t, `{"1":7}`, "personality", "--answers", "-"); err == nil {
		t.Fatal("out-of-range answer accepted")
	}
}

func TestPersonalityTypesCommand(t *testing.T) {
	out, _, err := run(t, "", "personality", "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	var codes []string
	if err := json.Unmarshal([]byte(out), &codes); err != nil || len(codes) != 16 {
		t.Fatalf("codes = %v, %v", codes, err)
	}
	if _, _, err := run(t, "", "personality", "types", "enfp"); err != nil {
		t.Fatalf("types enfp: %v", err)
	}
	if _, _, err := run(t, "", "personality", "types", "ZZZZ"); err == nil {
		t.Fatal("unknown type accepted")
	}
}

func TestBaselinesCommand(t *testing.T) {
	out, _, err := run(t, "", "baselines", "--baselines", "")
	if err != nil {
		t.Fatalf("baselines: %v", err)
	}
	var f baseline.File
	if err := yaml.Unmarshal([]byte(out), &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Baselines) != baseline.Default().Len() {
		t.Fatalf("entries = %d", len(f.Baselines))
	}
}
