package personality

import "sort"

type Career struct {
	Role  string `json:"role"`
	Match int    `json:"match"`
}

type Character struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type Movie struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

// Record is the static narrative for one type code.
type Record struct {
	Code        string      `json:"code"`
	Title       string      `json:"title"`
	Tagline     string      `json:"tagline"`
	Strengths   []string    `json:"strengths"`
	Weaknesses  []string    `json:"weaknesses"`
	Hobbies     []string    `json:"hobbies"`
	Careers     []Career    `json:"careers"`
	Characters  []Character `json:"characters"`
	Movies      []Movie     `json:"movies"`
	Quote       string      `json:"quote"`
	Description string      `json:"description"`
}

// Lookup returns the record for code. Callers must handle !ok by showing
// the bare code.
func Lookup(code string) (Record, bool) {
	r, ok := records[code]
	return r, ok
}

// Description is the short paragraph for code, or "" if unknown.
func Description(code string) string {
	return records[code].Description
}

// AllTypes lists every code Reduce can produce, sorted.
func AllTypes() []string {
	out := make([]string, 0, 16)
	var walk func(prefix string, i int)
	walk = func(prefix string, i int) {
		if i == len(Axes) {
			out = append(out, prefix)
			return
		}
		p := Poles[Axes[i]]
		walk(prefix+p.Left, i+1)
		walk(prefix+p.Right, i+1)
	}
	walk("", 0)
	sort.Strings(out)
	return out
}
