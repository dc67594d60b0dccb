package gridlogic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsatisfiable is returned by Problem.Solve when no assignment
// satisfies the accumulated constraints. The engine does not attempt to
// localize the conflict.
var ErrUnsatisfiable = errors.New("gridlogic: no assignment satisfies the asserted constraints")

// AmbiguousValueError reports a bare label that resolves to more than one
// value. The caller must use the qualified "category:label" form.
type AmbiguousValueError struct {
	Label      string
	Candidates []*Value
}

func (e *AmbiguousValueError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, v := range e.Candidates {
		names[i] = v.Name()
	}
	return fmt.Sprintf("resolve: %q could be any of: %s", e.Label, strings.Join(names, ", "))
}

// UnknownValueError reports a label that matches no value in any
// category.
type UnknownValueError struct {
	Label string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("resolve: no value named %q", e.Label)
}

// ContradictionError reports an assertion that conflicts with an already
// known fact. The conflicting assertion is not recorded; prior state is
// left unchanged.
type ContradictionError struct {
	A, B     *Value
	Existing Relation
	Asserted Relation
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("assert: %s/%s is already %s, cannot assert %s",
		e.A, e.B, e.Existing, e.Asserted)
}
