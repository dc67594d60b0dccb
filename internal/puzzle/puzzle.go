// Package puzzle loads logic-grid puzzle descriptions from YAML files
// and builds solver-backed problems from them.
//
// The file surface carries the declarative clue forms only (exclude,
// require, require-one). Predicate clues are code, not data; programs
// that need them use the gridlogic API directly.
package puzzle

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gridlogic/pkg/gridlogic"
)

// File is the YAML document describing one puzzle.
type File struct {
	Categories []CategorySpec `yaml:"categories"`
	Clues      []Clue         `yaml:"clues"`
}

// CategorySpec declares one category: labels for an exclusive category,
// or a range for a numeric one. Exactly one of the two must be set.
type CategorySpec struct {
	Name   string     `yaml:"name"`
	Labels []string   `yaml:"labels,omitempty"`
	Range  *RangeSpec `yaml:"range,omitempty"`
}

// RangeSpec is an inclusive integer interval.
type RangeSpec struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// Clue is one declarative clue. Exactly one of the three forms must be
// set.
type Clue struct {
	Exclude    []string        `yaml:"exclude,omitempty"`
	Require    []string        `yaml:"require,omitempty"`
	RequireOne *RequireOneSpec `yaml:"require-one,omitempty"`
}

// RequireOneSpec says the value goes with exactly one of the options.
type RequireOneSpec struct {
	Value   string   `yaml:"value"`
	Options []string `yaml:"options"`
}

// Read decodes and validates a puzzle document.
func Read(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("puzzle: decode: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a puzzle document from a file.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	defer fh.Close()
	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *File) validate() error {
	if len(f.Categories) == 0 {
		return fmt.Errorf("puzzle: no categories declared")
	}
	for _, spec := range f.Categories {
		if spec.Name == "" {
			return fmt.Errorf("puzzle: category with no name")
		}
		hasLabels := len(spec.Labels) > 0
		hasRange := spec.Range != nil
		if hasLabels == hasRange {
			return fmt.Errorf("puzzle: category %q needs labels or a range, not both or neither", spec.Name)
		}
		if hasRange && spec.Range.High < spec.Range.Low {
			return fmt.Errorf("puzzle: category %q has an empty range [%d..%d]",
				spec.Name, spec.Range.Low, spec.Range.High)
		}
	}
	for i, clue := range f.Clues {
		forms := 0
		if len(clue.Exclude) > 0 {
			forms++
		}
		if len(clue.Require) > 0 {
			forms++
		}
		if clue.RequireOne != nil {
			forms++
		}
		if forms != 1 {
			return fmt.Errorf("puzzle: clue %d must use exactly one of exclude/require/require-one", i+1)
		}
		if clue.RequireOne != nil {
			if clue.RequireOne.Value == "" || len(clue.RequireOne.Options) == 0 {
				return fmt.Errorf("puzzle: clue %d: require-one needs a value and options", i+1)
			}
		}
	}
	return nil
}

// Problem builds a solver-backed problem from the document and applies
// every clue. Clue errors carry the clue's position.
func (f *File) Problem() (*gridlogic.Problem, error) {
	cats := make([]gridlogic.Category, 0, len(f.Categories))
	for _, spec := range f.Categories {
		if spec.Range != nil {
			cats = append(cats, gridlogic.Ints(spec.Name, spec.Range.Low, spec.Range.High))
			continue
		}
		cats = append(cats, gridlogic.Enum(spec.Name, spec.Labels...))
	}
	p, err := gridlogic.NewProblem(cats...)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	for i, clue := range f.Clues {
		switch {
		case len(clue.Exclude) > 0:
			err = p.Exclude(clue.Exclude...)
		case len(clue.Require) > 0:
			err = p.Require(clue.Require...)
		default:
			err = p.RequireOne(clue.RequireOne.Value, clue.RequireOne.Options)
		}
		if err != nil {
			return nil, fmt.Errorf("puzzle: clue %d: %w", i+1, err)
		}
	}
	return p, nil
}
