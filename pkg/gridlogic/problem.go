package gridlogic

import (
	"fmt"

	"github.com/gitrdm/gridlogic/internal/sat"
)

// numKey identifies the integer variable for a (value, numeric category)
// pair.
type numKey struct {
	value    string // qualified name
	category string
}

// Problem is the solver-backed puzzle type. It embeds a Grid for the
// declarative assertion surface and synthesizes redundant solver
// variables over the same universe: one boolean per cross-category value
// pair ("these two share a row") and one bounded integer per
// (value, numeric category) pair ("the number attributed to this value's
// row"). Variables are cached under deterministic keys, so repeated
// references yield the same variable.
//
// The encoding is deliberately redundant; the structural constraints
// emitted at solve time (see structuralClauses) are what make it behave
// as a single consistent relation.
type Problem struct {
	*Grid
	numeric  []*Category
	engine   *sat.Solver
	pairVars map[pairKey]sat.Lit
	numVars  map[numKey]*sat.IntVar
	extra    [][]sat.Lit // compiled predicate clauses
}

// NewProblem builds a solver-backed puzzle. The category list mixes
// exclusive and numeric declarations; order is significant (the first
// exclusive category anchors row reconstruction).
func NewProblem(categories ...Category) (*Problem, error) {
	var enums []Category
	var nums []*Category
	seen := make(map[string]bool)
	for _, decl := range categories {
		if decl.kind == KindNumeric {
			if decl.name == "" {
				return nil, fmt.Errorf("categories: empty category name")
			}
			if seen[decl.name] {
				return nil, fmt.Errorf("categories: duplicate category %q", decl.name)
			}
			seen[decl.name] = true
			if decl.domain == nil || len(decl.domain.Values()) == 0 {
				return nil, fmt.Errorf("categories: numeric category %q has an empty domain", decl.name)
			}
			cat := decl // copy
			nums = append(nums, &cat)
			continue
		}
		seen[decl.name] = true
		enums = append(enums, decl)
	}
	grid, err := NewGrid(enums...)
	if err != nil {
		return nil, err
	}
	for _, num := range nums {
		if grid.cats.byName[num.name] != nil {
			return nil, fmt.Errorf("categories: duplicate category %q", num.name)
		}
	}
	return &Problem{
		Grid:     grid,
		numeric:  nums,
		engine:   sat.New(),
		pairVars: make(map[pairKey]sat.Lit),
		numVars:  make(map[numKey]*sat.IntVar),
	}, nil
}

// NumericCategories returns the numeric categories in declared order.
func (p *Problem) NumericCategories() []*Category { return p.numeric }

// numericByName returns the numeric category with the given name, or nil.
func (p *Problem) numericByName(name string) *Category {
	for _, cat := range p.numeric {
		if cat.name == name {
			return cat
		}
	}
	return nil
}

// pairVar returns the boolean variable asserting that a and b share a
// row, creating it on first reference.
func (p *Problem) pairVar(a, b *Value) sat.Lit {
	key := keyOf(a, b)
	if lit, ok := p.pairVars[key]; ok {
		return lit
	}
	lit := p.engine.Bool(key.a + "_" + key.b)
	p.pairVars[key] = lit
	return lit
}

// numVar returns the integer variable for the numeric-category value
// attributed to the row containing v, creating it on first reference.
// The one-hot domain membership clauses are posted by the bridge at
// creation, so lo <= var <= hi holds in every model.
func (p *Problem) numVar(v *Value, cat *Category) *sat.IntVar {
	key := numKey{value: v.Name(), category: cat.name}
	if iv, ok := p.numVars[key]; ok {
		return iv
	}
	iv, err := p.engine.Int(v.Name()+"_"+cat.name, cat.domain.Values())
	if err != nil {
		// Empty domains are rejected at construction; creation cannot
		// fail afterwards.
		panic(err)
	}
	p.numVars[key] = iv
	return iv
}

// synthesize walks the whole category universe so that every pair
// variable and numeric variable exists before structural constraints are
// emitted.
func (p *Problem) synthesize() {
	p.eachPair(func(a, b *Value) {
		p.pairVar(a, b)
	})
	for _, num := range p.numeric {
		for _, cat := range p.cats.cats {
			for _, v := range cat.values {
				p.numVar(v, num)
			}
		}
	}
}

// Solve compiles the current state (structural constraints, grid facts,
// recorded disjunctions, predicate clauses) and invokes the SAT engine.
// It returns the first model found as an immutable Solution, or
// ErrUnsatisfiable. Solving again after further assertions produces an
// independent Solution.
func (p *Problem) Solve() (*Solution, error) {
	p.synthesize()
	clauses := p.structuralClauses()
	clauses = append(clauses, p.gridClauses()...)
	clauses = append(clauses, p.extra...)
	model, err := p.engine.Solve(clauses)
	if err != nil {
		if err == sat.ErrUnsatisfiable {
			return nil, ErrUnsatisfiable
		}
		return nil, err
	}
	return p.materialize(model)
}
