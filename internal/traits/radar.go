package traits

// FullMark is the radar chart's outer ring.
const FullMark = 100

// RadarPoint is one spoke of the dashboard radar chart.
type RadarPoint struct {
	Subject  string `json:"subject"`
	A        int    `json:"A"`
	FullMark int    `json:"fullMark"`
}

var subjects = map[Trait]string{
	Memory:      "Memory",
	Attention:   "Attention",
	Speed:       "Speed",
	Flexibility: "Flexibility",
	Reasoning:   "Reasoning",
	EQ:          "EQ & Social",
}

func RadarPoints(p Profile) []RadarPoint {
	out := make([]RadarPoint, 0, len(Order))
	for _, t := range Order {
		out = append(out, RadarPoint{Subject: subjects[t], A: p.Get(t), FullMark: FullMark})
	}
	return out
}

// Label is the display name of a trait.
func Label(t Trait) string { return subjects[t] }
