package baseline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format:
//
//	baselines:
//	  - game_id: reaction
//	    mean: 280
//	    std_dev: 45
//	    lower_is_better: true
type File struct {
	Baselines []Entry `yaml:"baselines"`
}

func LoadYAML(r io.Reader) ([]Entry, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode baselines: %w", err)
	}
	seen := map[string]bool{}
	for i, e := range f.Baselines {
		if e.GameID == "" {
			return nil, fmt.Errorf("baselines[%d]: game_id is required", i)
		}
		if seen[e.GameID] {
			return nil, fmt.Errorf("duplicate baseline for %s", e.GameID)
		}
		seen[e.GameID] = true
	}
	return f.Baselines, nil
}

// LoadFile reads overrides from path and layers them over the defaults.
// An empty path returns the defaults unchanged.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	entries, err := LoadYAML(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Default().With(entries...), nil
}
