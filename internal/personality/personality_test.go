package personality

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fill(v int) Answers {
	a := Answers{}
	for _, q := range Questions {
		a[q.ID] = v
	}
	return a
}

func TestBankShape(t *testing.T) {
	if len(Questions) != 50 {
		t.Fatalf("bank size = %d, want 50", len(Questions))
	}
	got := map[Axis]int{}
	seen := map[int]bool{}
	for _, q := range Questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		got[q.Axis]++
	}
	want := map[Axis]int{EI: 12, SN: 12, TF: 13, JP: 13}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("axis counts (-want +got):\n%s", d)
	}
}

func TestReduceNeutral(t *testing.T) {
	p := Reduce(fill(0))
	if p.Type != "ESTJ" {
		t.Fatalf("type = %q, want ESTJ", p.Type)
	}
	for _, ax := range Axes {
		d := p.Breakdown[ax]
		if d.PctLeft != 50 || d.PctRight != 50 || d.Score != 0 {
			t.Fatalf("%s = %+v, want 50/50", ax, d)
		}
	}
	if p.Description == "" {
		t.Fatal("expected description for ESTJ")
	}
}

func TestReduceExtremes(t *testing.T) {
	agree := Reduce(fill(2))
	if agree.Type != "ESTJ" {
		t.Fatalf("all agree type = %q", agree.Type)
	}
	want := Dimension{Score: 24, PctLeft: 0, PctRight: 100, Char: "E", LeftChar: "I", RightChar: "E"}
	if d := cmp.Diff(want, agree.Breakdown[EI]); d != "" {
		t.Fatalf("EI (-want +got):\n%s", d)
	}

	disagree := Reduce(fill(-2))
	if disagree.Type != "INFP" {
		t.Fatalf("all disagree type = %q, want INFP", disagree.Type)
	}
	if d := disagree.Breakdown[JP]; d.PctLeft != 100 || d.Score != -26 {
		t.Fatalf("JP = %+v", d)
	}
}

func TestReduceMissingAndClamped(t *testing.T) {
	a := Answers{}
	for _, q := range Questions {
		if q.Axis == EI {
			a[q.ID] = -9
		}
	}
	p := Reduce(a)
	if p.Type != "ISTJ" {
		t.Fatalf("type = %q, want ISTJ", p.Type)
	}
	if got := p.Breakdown[EI].Score; got != -24 {
		t.Fatalf("clamped EI score = %d, want -24", got)
	}
	if n, total := Completeness(a); n != 12 || total != 50 {
		t.Fatalf("completeness = %d/%d", n, total)
	}
}

func TestReducePercentRounding(t *testing.T) {
	a := Answers{}
	for _, q := range Questions {
		if q.Axis == TF {
			a[q.ID] = -1
			break
		}
	}
	// (-1+26)/52 = 48.08%
	d := Reduce(a).Breakdown[TF]
	if d.PctRight != 48 || d.PctLeft != 52 || d.Char != "F" {
		t.Fatalf("TF = %+v", d)
	}
}

func TestReduceWithEmptyAxis(t *testing.T) {
	bank := []Question{{ID: 1, Axis: EI, Direction: -1}}
	p := ReduceWith(bank, Answers{1: 2})
	if p.Type != "ISTJ" {
		t.Fatalf("type = %q, want ISTJ", p.Type)
	}
	if d := p.Breakdown[SN]; d.PctLeft != 50 || d.PctRight != 50 {
		t.Fatalf("empty axis = %+v", d)
	}
}

func TestLookup(t *testing.T) {
	types := AllTypes()
	if len(types) != 16 {
		t.Fatalf("AllTypes = %d", len(types))
	}
	for _, code := range types {
		r, ok := Lookup(code)
		if !ok {
			t.Fatalf("missing record for %s", code)
		}
		if r.Code != code || r.Title == "" || r.Description == "" {
			t.Fatalf("record %s incomplete: %+v", code, r.Title)
		}
	}
	if _, ok := Lookup("XXXX"); ok {
		t.Fatal("unknown code resolved")
	}
	if Description("XXXX") != "" {
		t.Fatal("unknown code has description")
	}
}

func TestValidateAnswer(t *testing.T) {
	for _, v := range []int{-2, 0, 2} {
		if err := ValidateAnswer(v); err != nil {
			t.Fatalf("%d: %v", v, err)
		}
	}
	if ValidateAnswer(3) == nil || ValidateAnswer(-3) == nil {
		t.Fatal("expected out-of-range error")
	}
}
