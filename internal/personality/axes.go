// Package personality reduces the 50-item Likert questionnaire to a
// four-letter bipolar type and looks up its descriptive record.
package personality

import "fmt"

type Axis string

const (
	EI Axis = "EI"
	SN Axis = "SN"
	TF Axis = "TF"
	JP Axis = "JP"
)

// Axes is the fixed order in which letters are concatenated.
var Axes = []Axis{EI, SN, TF, JP}

// Pole names the two letters of an axis. Right is the pole that agreement
// with a Direction 1 question moves toward.
type Pole struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Label string `json:"label"`
}

var Poles = map[Axis]Pole{
	EI: {Left: "I", Right: "E", Label: "Introversion vs Extraversion"},
	SN: {Left: "N", Right: "S", Label: "Intuition vs Sensing"},
	TF: {Left: "F", Right: "T", Label: "Feeling vs Thinking"},
	JP: {Left: "P", Right: "J", Label: "Perceiving vs Judging"},
}

type Question struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Axis      Axis   `json:"dimension"`
	Direction int    `json:"direction"`
}

const (
	MinLikert = -2
	MaxLikert = 2
)

// Scale maps answer labels to Likert values.
var Scale = []struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}{
	{"Strongly Disagree", -2},
	{"Disagree", -1},
	{"Neutral", 0},
	{"Agree", 1},
	{"Strongly Agree", 2},
}

// ValidateAnswer rejects values outside the Likert range.
func ValidateAnswer(v int) error {
	if v < MinLikert || v > MaxLikert {
		return fmt.Errorf("answer %d outside [%d,%d]", v, MinLikert, MaxLikert)
	}
	return nil
}
