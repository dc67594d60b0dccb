// Package sat is the narrow bridge between the gridlogic constraint
// compiler and the backing SAT engine (gophersat).
//
// The bridge exposes exactly the capability the compiler needs: boolean
// variables, bounded integer variables, and CNF clauses over them. It
// performs no search of its own; every NP-hard question is delegated to
// gophersat. Integer variables are realized with a one-hot encoding: one
// boolean per candidate value plus exactly-one clauses, so that the rest
// of the system can speak in terms of "the literal asserting v == k".
package sat

import (
	"errors"
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// ErrUnsatisfiable is returned by Solve when no assignment satisfies the
// accumulated clauses.
var ErrUnsatisfiable = errors.New("sat: no satisfying assignment exists")

// Lit is a literal: a positive value names a boolean variable, a negative
// value its negation. The zero Lit is invalid.
type Lit int

// Neg returns the negation of the literal.
func (l Lit) Neg() Lit { return -l }

// IntVar is a bounded integer variable, one-hot encoded over boolean
// literals. Its domain is the explicit list of candidate values supplied
// at creation; exactly one candidate literal is true in any model.
type IntVar struct {
	name   string
	values []int
	lits   []Lit
}

// Name returns the diagnostic name the variable was created with.
func (v *IntVar) Name() string { return v.name }

// Values returns the candidate values of the variable's domain.
func (v *IntVar) Values() []int { return v.values }

// LitEq returns the literal asserting that the variable takes the given
// value. The second result is false if the value is outside the domain.
func (v *IntVar) LitEq(value int) (Lit, bool) {
	for i, cand := range v.values {
		if cand == value {
			return v.lits[i], true
		}
	}
	return 0, false
}

// Solver accumulates variables and clauses and hands the resulting CNF
// problem to gophersat. Clauses added with AddClause persist across calls
// to Solve; per-solve clauses can be passed to Solve directly.
type Solver struct {
	names   []string
	clauses [][]int
}

// New creates an empty solver.
func New() *Solver {
	return &Solver{}
}

// Bool creates a fresh boolean variable and returns its positive literal.
// The name is kept for diagnostics only; distinct calls always create
// distinct variables.
func (s *Solver) Bool(name string) Lit {
	s.names = append(s.names, name)
	return Lit(len(s.names))
}

// Int creates a fresh bounded integer variable over the given candidate
// values. The exactly-one clauses tying the one-hot encoding together are
// recorded immediately as baseline constraints.
func (s *Solver) Int(name string, values []int) (*IntVar, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Int: empty domain for %q", name)
	}
	v := &IntVar{
		name:   name,
		values: append([]int(nil), values...),
		lits:   make([]Lit, len(values)),
	}
	for i, cand := range v.values {
		v.lits[i] = s.Bool(fmt.Sprintf("%s=%d", name, cand))
	}
	// At least one candidate holds...
	s.AddClause(v.lits...)
	// ...and no two candidates hold together.
	for i := 0; i < len(v.lits); i++ {
		for j := i + 1; j < len(v.lits); j++ {
			s.AddClause(v.lits[i].Neg(), v.lits[j].Neg())
		}
	}
	return v, nil
}

// Name returns the diagnostic name of the literal's variable.
func (s *Solver) Name(l Lit) string {
	idx := int(l)
	if idx < 0 {
		idx = -idx
	}
	if idx < 1 || idx > len(s.names) {
		return ""
	}
	return s.names[idx-1]
}

// NumVars returns the number of boolean variables created so far.
func (s *Solver) NumVars() int { return len(s.names) }

// NumClauses returns the number of persistent clauses recorded so far.
func (s *Solver) NumClauses() int { return len(s.clauses) }

// AddClause records the disjunction of the given literals as a persistent
// constraint.
func (s *Solver) AddClause(lits ...Lit) {
	clause := make([]int, len(lits))
	for i, l := range lits {
		clause[i] = int(l)
	}
	s.clauses = append(s.clauses, clause)
}

// Solve runs gophersat over the persistent clauses plus the given extra
// clauses and returns a model, or ErrUnsatisfiable when no assignment
// exists. The extra clauses are not retained, so callers may recompile
// state-dependent constraints on every invocation.
func (s *Solver) Solve(extra [][]Lit) (*Model, error) {
	cnf := make([][]int, 0, len(s.clauses)+len(extra))
	cnf = append(cnf, s.clauses...)
	for _, lits := range extra {
		clause := make([]int, len(lits))
		for i, l := range lits {
			clause[i] = int(l)
		}
		cnf = append(cnf, clause)
	}
	pb := solver.ParseSlice(cnf)
	engine := solver.New(pb)
	if engine.Solve() != solver.Sat {
		return nil, ErrUnsatisfiable
	}
	model := engine.Model()
	assign := make([]bool, len(model))
	copy(assign, model)
	return &Model{assign: assign}, nil
}

// Model is a total satisfying assignment produced by Solve.
type Model struct {
	assign []bool
}

// Value reports whether the literal is true in the model. Variables the
// engine never saw (possible when a variable occurs in no clause) read as
// false.
func (m *Model) Value(l Lit) bool {
	idx := int(l)
	neg := false
	if idx < 0 {
		idx = -idx
		neg = true
	}
	if idx < 1 || idx > len(m.assign) {
		return neg
	}
	if neg {
		return !m.assign[idx-1]
	}
	return m.assign[idx-1]
}

// IntValue returns the value an integer variable takes in the model.
func (m *Model) IntValue(v *IntVar) int {
	for i, l := range v.lits {
		if m.Value(l) {
			return v.values[i]
		}
	}
	// Unreachable when the variable's exactly-one clauses were part of
	// the solved problem.
	return v.values[0]
}
