package personality

import (
	"math"
	"strings"

	"github.com/mind-engage/mindengage-cognition/internal/stats"
)

// Answers maps question id to a Likert value in [-2, 2].
type Answers map[int]int

// Dimension is the resolved split for one axis. PctLeft+PctRight is
// always 100.
type Dimension struct {
	Score     int    `json:"score"`
	PctLeft   int    `json:"pctLeft"`
	PctRight  int    `json:"pctRight"`
	Char      string `json:"char"`
	LeftChar  string `json:"leftChar"`
	RightChar string `json:"rightChar"`
}

type Profile struct {
	Type        string             `json:"type"`
	Breakdown   map[Axis]Dimension `json:"breakdown"`
	Description string             `json:"description,omitempty"`
}

// Reduce scores answers against the built-in bank.
func Reduce(answers Answers) Profile { return ReduceWith(Questions, answers) }

// ReduceWith scores answers against bank. It is total: missing answers count
// as neutral and out-of-range values are clamped, so any map produces a
// profile. A 50/50 split resolves to the right pole, which makes an
// all-neutral questionnaire ESTJ.
func ReduceWith(bank []Question, answers Answers) Profile {
	raw := make(map[Axis]int, len(Axes))
	count := make(map[Axis]int, len(Axes))
	for _, q := range bank {
		v := stats.ClampInt(answers[q.ID], MinLikert, MaxLikert)
		raw[q.Axis] += v * q.Direction
		count[q.Axis]++
	}

	p := Profile{Breakdown: make(map[Axis]Dimension, len(Axes))}
	var code strings.Builder
	for _, ax := range Axes {
		d := split(raw[ax], count[ax]*MaxLikert, Poles[ax])
		p.Breakdown[ax] = d
		code.WriteString(d.Char)
	}
	p.Type = code.String()
	p.Description = Description(p.Type)
	return p
}

func split(score, maxMagnitude int, pole Pole) Dimension {
	pctRight := 50
	if maxMagnitude > 0 {
		frac := float64(score+maxMagnitude) / float64(2*maxMagnitude)
		pctRight = stats.ClampInt(int(math.Round(frac*100)), 0, 100)
	}
	d := Dimension{
		Score:     score,
		PctRight:  pctRight,
		PctLeft:   100 - pctRight,
		LeftChar:  pole.Left,
		RightChar: pole.Right,
		Char:      pole.Left,
	}
	if pctRight >= 50 {
		d.Char = pole.Right
	}
	return d
}

// Completeness reports how many bank questions have an answer.
func Completeness(answers Answers) (answered, total int) {
	for _, q := range Questions {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}
	return answered, len(Questions)
}
