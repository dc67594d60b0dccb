package gridlogic

import (
	"fmt"
)

// Relation is the tri-state fact about whether two values occur in the
// same row.
type Relation uint8

const (
	// RelUnknown means nothing has been asserted or derived yet.
	RelUnknown Relation = iota
	// RelTrue means the two values share a row.
	RelTrue
	// RelFalse means the two values occur in different rows.
	RelFalse
)

func (r Relation) String() string {
	switch r {
	case RelTrue:
		return "true"
	case RelFalse:
		return "false"
	default:
		return "unknown"
	}
}

// pairKey canonically identifies an unordered pair of values from
// different categories, ordered by category name then label so that
// lookups are order-independent.
type pairKey struct {
	a, b string // qualified names, a < b in canonical order
}

// orderPair returns the two values in canonical order.
func orderPair(a, b *Value) (*Value, *Value) {
	ca, cb := a.category.name, b.category.name
	if ca > cb || (ca == cb && a.label > b.label) {
		return b, a
	}
	return a, b
}

func keyOf(a, b *Value) pairKey {
	lo, hi := orderPair(a, b)
	return pairKey{a: lo.Name(), b: hi.Name()}
}

// oneOf records a RequireOne disjunction: value goes with exactly one of
// the options. The solver translation turns it into a clause; the grid
// itself only performs the local propagation described at RequireOne.
type oneOf struct {
	value   *Value
	options []*Value
}

// Grid is the basic assertion layer: a symmetric tri-state fact store
// over every unordered pair of values drawn from two different exclusive
// categories. Assertions apply only local closure (symmetry and
// same-category exclusivity); transitive consequences across three or
// more categories are left to the solver-backed Problem.
type Grid struct {
	cats   *catalog
	facts  map[pairKey]Relation
	oneOfs []oneOf
}

// NewGrid builds a grid over the given exclusive categories. All
// categories must be exclusive, uniquely named, and of equal cardinality.
func NewGrid(categories ...Category) (*Grid, error) {
	cats, err := newCatalog(categories)
	if err != nil {
		return nil, err
	}
	return &Grid{cats: cats, facts: make(map[pairKey]Relation)}, nil
}

// Categories returns the exclusive categories in declared order.
func (g *Grid) Categories() []*Category { return g.cats.cats }

// Size returns the row count R (the common cardinality of the exclusive
// categories).
func (g *Grid) Size() int { return g.cats.size }

// Resolve maps a bare or qualified label to its value, or returns
// *UnknownValueError / *AmbiguousValueError.
func (g *Grid) Resolve(id string) (*Value, error) { return g.cats.resolve(id) }

// Relation reports the current fact about a pair of values. Distinct
// values of one category are always false to each other; a value is
// always true to itself.
func (g *Grid) Relation(a, b *Value) Relation {
	if a.category == b.category {
		if a == b {
			return RelTrue
		}
		return RelFalse
	}
	return g.facts[keyOf(a, b)]
}

// RelationOf is Relation with label resolution.
func (g *Grid) RelationOf(a, b string) (Relation, error) {
	va, err := g.cats.resolve(a)
	if err != nil {
		return RelUnknown, err
	}
	vb, err := g.cats.resolve(b)
	if err != nil {
		return RelUnknown, err
	}
	return g.Relation(va, vb), nil
}

// check stages a single-pair assertion. It returns the write to apply, or
// nil for a no-op, or a ContradictionError. It never mutates the grid;
// assertions stage every pair first so a late contradiction leaves no
// partial state behind.
func (g *Grid) check(a, b *Value, rel Relation) (*pairKey, error) {
	if a.category == b.category {
		if a == b || rel == RelFalse {
			// Same-category exclusivity already implies the fact.
			return nil, nil
		}
		return nil, &ContradictionError{A: a, B: b, Existing: RelFalse, Asserted: rel}
	}
	key := keyOf(a, b)
	switch existing := g.facts[key]; existing {
	case RelUnknown:
		return &key, nil
	case rel:
		return nil, nil // idempotent re-assertion
	default:
		return nil, &ContradictionError{A: a, B: b, Existing: existing, Asserted: rel}
	}
}

// assertPairwise stages rel for every pair among vals, then applies all
// staged writes atomically.
func (g *Grid) assertPairwise(vals []*Value, rel Relation) error {
	var writes []pairKey
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			key, err := g.check(vals[i], vals[j], rel)
			if err != nil {
				return err
			}
			if key != nil {
				writes = append(writes, *key)
			}
		}
	}
	for _, key := range writes {
		g.facts[key] = rel
	}
	return nil
}

// Exclude asserts that no two of the given values share a row. Values
// from the same category are skipped (they are mutually exclusive
// already).
func (g *Grid) Exclude(ids ...string) error {
	vals, err := g.cats.resolveAll(ids)
	if err != nil {
		return err
	}
	return g.assertPairwise(vals, RelFalse)
}

// Require asserts that all the given values occur in one row. Two
// distinct values of the same category always contradict: one row cannot
// take two values from one category.
func (g *Grid) Require(ids ...string) error {
	vals, err := g.cats.resolveAll(ids)
	if err != nil {
		return err
	}
	return g.assertPairwise(vals, RelTrue)
}

// Include is Require under its other traditional name.
func (g *Grid) Include(ids ...string) error { return g.Require(ids...) }

// RequireOne asserts that value goes with exactly one of options. All
// options must belong to a single category different from the value's
// own. The grid records the disjunction for the solver translation and
// applies only the immediate local consequences: members of the options'
// category outside options are excluded, and the last option standing is
// promoted to true when every other option is already known false.
func (g *Grid) RequireOne(id string, optionIDs []string) error {
	value, err := g.cats.resolve(id)
	if err != nil {
		return err
	}
	options, err := g.cats.resolveAll(optionIDs)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("RequireOne: no options given for %s", value)
	}
	optCat := options[0].category
	inOptions := make(map[*Value]bool, len(options))
	for _, opt := range options {
		if opt.category != optCat {
			return fmt.Errorf("RequireOne: options span categories %q and %q, expected one",
				optCat.name, opt.category.name)
		}
		inOptions[opt] = true
	}
	if optCat == value.category {
		return fmt.Errorf("RequireOne: options must be in a different category than %s", value)
	}

	// Stage exclusions for the non-options, then check whether only one
	// option survives.
	var writes []pairKey
	for _, member := range optCat.values {
		if inOptions[member] {
			continue
		}
		key, err := g.check(value, member, RelFalse)
		if err != nil {
			return err
		}
		if key != nil {
			writes = append(writes, *key)
		}
	}
	var open []*Value
	for _, opt := range options {
		if g.Relation(value, opt) != RelFalse {
			open = append(open, opt)
		}
	}
	if len(open) == 0 {
		return &ContradictionError{A: value, B: options[0], Existing: RelFalse, Asserted: RelTrue}
	}
	if len(open) == 1 && g.Relation(value, open[0]) == RelUnknown {
		key, err := g.check(value, open[0], RelTrue)
		if err != nil {
			return err
		}
		if key != nil {
			g.facts[*key] = RelTrue
		}
	}
	for _, key := range writes {
		g.facts[key] = RelFalse
	}
	g.oneOfs = append(g.oneOfs, oneOf{value: value, options: options})
	return nil
}

// eachPair visits every unordered pair of values from two different
// categories, in category order then value order.
func (g *Grid) eachPair(visit func(a, b *Value)) {
	cats := g.cats.cats
	for i := 0; i < len(cats); i++ {
		for j := i + 1; j < len(cats); j++ {
			for _, a := range cats[i].values {
				for _, b := range cats[j].values {
					visit(a, b)
				}
			}
		}
	}
}
