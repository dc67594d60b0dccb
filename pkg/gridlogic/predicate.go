package gridlogic

import (
	"fmt"
	"strconv"

	"github.com/gitrdm/gridlogic/internal/sat"
)

// Key names one slot of a predicate constraint: the anchor fixes whose
// row is being talked about, the category names what the predicate
// receives for that row.
//
// Anchor is a bare or qualified value identifier, or the name of an
// exclusive category; in the latter case the constraint is instantiated
// once for every value of that category (a "for each" over anchors). A
// label that collides with a category name is read as the category;
// qualify the value to force the other reading.
//
// Category may name an exclusive category (the predicate receives the
// label paired with the anchor's row) or a numeric category (the
// predicate receives the row's number).
type Key struct {
	Anchor   string
	Category string
}

// Arg is one concrete argument handed to a predicate: a label for an
// exclusive referenced category, a number for a numeric one.
type Arg struct {
	label   string
	number  int
	numeric bool
}

// Label returns the label of an exclusive-category argument.
func (a Arg) Label() string { return a.label }

// Int returns the number of a numeric-category argument.
func (a Arg) Int() int { return a.number }

// IsNumber reports whether the argument came from a numeric category.
func (a Arg) IsNumber() bool { return a.numeric }

func (a Arg) String() string {
	if a.numeric {
		return strconv.Itoa(a.number)
	}
	return a.label
}

// Predicate is an arbitrary condition over the concrete resolved
// labels/numbers of its keys, one argument per key in key order.
type Predicate func(args ...Arg) bool

// slot is a parsed Key bound to one concrete anchor value.
type slot struct {
	anchor *Value
	enum   *Category // referenced exclusive category, or
	num    *Category // referenced numeric category
}

// choice is one enumerated candidate for a slot: the argument the
// predicate sees and the literal asserting that this row binding holds.
type choice struct {
	arg Arg
	lit sat.Lit
}

// Constrain compiles an arbitrary predicate into forbidding clauses by
// brute-force enumeration and registers them with the problem.
//
// For every combination of one candidate per key (the candidates of a key
// are the referenced category's labels or numbers), the predicate is
// evaluated on the concrete tuple; every combination it rejects becomes
// one hard clause forbidding the corresponding tuple of row-binding
// variables from holding simultaneously.
//
// This is a finite truth-table compilation: cost is the product of the
// referenced domain sizes (times the anchor expansion), and every
// combination is evaluated. Keep the number of keys and their domains
// small on large grids.
func (p *Problem) Constrain(pred Predicate, keys ...Key) error {
	if pred == nil {
		return fmt.Errorf("Constrain: nil predicate")
	}
	if len(keys) == 0 {
		return fmt.Errorf("Constrain: no keys given")
	}

	// Each key yields one or more concrete anchor alternatives.
	anchors := make([][]*Value, len(keys))
	enums := make([]*Category, len(keys))
	nums := make([]*Category, len(keys))
	for i, key := range keys {
		if num := p.numericByName(key.Category); num != nil {
			nums[i] = num
		} else if cat := p.cats.byName[key.Category]; cat != nil {
			enums[i] = cat
		} else {
			return fmt.Errorf("Constrain: key %d references unknown category %q", i, key.Category)
		}
		if cat := p.cats.byName[key.Anchor]; cat != nil {
			if enums[i] == cat {
				return fmt.Errorf("Constrain: key %d anchors %q on itself", i, key.Anchor)
			}
			anchors[i] = cat.values
			continue
		}
		v, err := p.cats.resolve(key.Anchor)
		if err != nil {
			return err
		}
		if enums[i] == v.category {
			return fmt.Errorf("Constrain: key %d anchor %s is in the referenced category %q",
				i, v, key.Category)
		}
		anchors[i] = []*Value{v}
	}

	// Instantiate the constraint once per concrete anchor tuple, then
	// exhaustively enumerate the referenced domains for each instance.
	var clauses [][]sat.Lit
	forEachCombination(anchors, func(bound []*Value) {
		slots := make([]slot, len(keys))
		for i, v := range bound {
			slots[i] = slot{anchor: v, enum: enums[i], num: nums[i]}
		}
		clauses = append(clauses, p.compileInstance(pred, slots)...)
	})
	p.extra = append(p.extra, clauses...)
	return nil
}

// compileInstance enumerates the truth table for one anchor binding and
// returns the forbidding clauses.
func (p *Problem) compileInstance(pred Predicate, slots []slot) [][]sat.Lit {
	candidates := make([][]choice, len(slots))
	for i, s := range slots {
		if s.num != nil {
			iv := p.numVar(s.anchor, s.num)
			for _, n := range s.num.domain.Values() {
				lit, _ := iv.LitEq(n)
				candidates[i] = append(candidates[i], choice{
					arg: Arg{number: n, numeric: true},
					lit: lit,
				})
			}
			continue
		}
		for _, b := range s.enum.values {
			candidates[i] = append(candidates[i], choice{
				arg: Arg{label: b.label},
				lit: p.pairVar(s.anchor, b),
			})
		}
	}

	var clauses [][]sat.Lit
	args := make([]Arg, len(slots))
	picked := make([]choice, len(slots))
	var walk func(i int)
	walk = func(i int) {
		if i == len(slots) {
			if pred(args...) {
				return
			}
			clause := make([]sat.Lit, len(picked))
			for k, c := range picked {
				clause[k] = c.lit.Neg()
			}
			clauses = append(clauses, clause)
			return
		}
		for _, c := range candidates[i] {
			picked[i] = c
			args[i] = c.arg
			walk(i + 1)
		}
	}
	walk(0)
	return clauses
}

// forEachCombination visits the cross product of the alternatives.
func forEachCombination(alts [][]*Value, visit func(bound []*Value)) {
	bound := make([]*Value, len(alts))
	var walk func(i int)
	walk = func(i int) {
		if i == len(alts) {
			visit(bound)
			return
		}
		for _, v := range alts[i] {
			bound[i] = v
			walk(i + 1)
		}
	}
	walk(0)
}
