package gridlogic

import (
	"github.com/gitrdm/gridlogic/internal/sat"
)

// This file emits the redundancy-closure constraints. Every category
// pairing owns its own boolean view of the underlying "same row" fact,
// and the numeric variables add one more view per exclusive value, so
// without these clauses the SAT engine would happily produce mutually
// contradictory assignments across the views. The clause count grows as
// O(R^2 * C^2) with R values per category and C categories, which is
// what bounds practical problem size.

// structuralClauses compiles the Latin-square cardinality law, the
// transitivity closure over category triples, and the numeric-view
// equality constraints. It is recomputed on every Solve; the clauses
// depend only on the category universe, not on asserted facts.
func (p *Problem) structuralClauses() [][]sat.Lit {
	var clauses [][]sat.Lit
	clauses = append(clauses, p.cardinalityClauses()...)
	clauses = append(clauses, p.transitivityClauses()...)
	clauses = append(clauses, p.numericClauses()...)
	return clauses
}

// cardinalityClauses emits, for every pairing of exclusive categories,
// the assignment law: each value of one side pairs with exactly one value
// of the other side. Exactly-one is one at-least-one clause plus pairwise
// at-most-one clauses, per row and per column of the pairing. The
// pairwise falsity of distinct same-category values is implied: two
// values of X both paired with one value of Y would violate the column's
// at-most-one.
func (p *Problem) cardinalityClauses() [][]sat.Lit {
	var clauses [][]sat.Lit
	cats := p.cats.cats
	exactlyOne := func(lits []sat.Lit) {
		clause := make([]sat.Lit, len(lits))
		copy(clause, lits)
		clauses = append(clauses, clause)
		for i := 0; i < len(lits); i++ {
			for j := i + 1; j < len(lits); j++ {
				clauses = append(clauses, []sat.Lit{lits[i].Neg(), lits[j].Neg()})
			}
		}
	}
	for i := 0; i < len(cats); i++ {
		for j := i + 1; j < len(cats); j++ {
			x, y := cats[i], cats[j]
			for _, a := range x.values {
				row := make([]sat.Lit, 0, len(y.values))
				for _, b := range y.values {
					row = append(row, p.pairVar(a, b))
				}
				exactlyOne(row)
			}
			for _, b := range y.values {
				col := make([]sat.Lit, 0, len(x.values))
				for _, a := range x.values {
					col = append(col, p.pairVar(a, b))
				}
				exactlyOne(col)
			}
		}
	}
	return clauses
}

// transitivityClauses emits, for every triple of exclusive categories
// (X, Y, Z) and every choice of one value from each: if x pairs with y
// and y pairs with z, then x pairs with z.
func (p *Problem) transitivityClauses() [][]sat.Lit {
	var clauses [][]sat.Lit
	cats := p.cats.cats
	for i := 0; i < len(cats); i++ {
		for j := i + 1; j < len(cats); j++ {
			for k := j + 1; k < len(cats); k++ {
				for _, x := range cats[i].values {
					for _, y := range cats[j].values {
						xy := p.pairVar(x, y)
						for _, z := range cats[k].values {
							clauses = append(clauses, []sat.Lit{
								xy.Neg(),
								p.pairVar(y, z).Neg(),
								p.pairVar(x, z),
							})
						}
					}
				}
			}
		}
	}
	return clauses
}

// numericClauses ties the redundant numeric views together: whenever two
// exclusive values share a row, their integer variables for every numeric
// category must agree. One implication direction per candidate number
// suffices; the one-hot exactly-one clauses make equality total.
func (p *Problem) numericClauses() [][]sat.Lit {
	var clauses [][]sat.Lit
	for _, num := range p.numeric {
		candidates := num.domain.Values()
		p.eachPair(func(a, b *Value) {
			ab := p.pairVar(a, b)
			na := p.numVar(a, num)
			nb := p.numVar(b, num)
			for _, cand := range candidates {
				la, _ := na.LitEq(cand)
				lb, _ := nb.LitEq(cand)
				clauses = append(clauses, []sat.Lit{ab.Neg(), la.Neg(), lb})
			}
		})
	}
	return clauses
}

// gridClauses translates the asserted grid state: every known fact
// becomes a unit clause over the corresponding pair variable, and every
// recorded RequireOne disjunction becomes one clause over its option
// pairs.
func (p *Problem) gridClauses() [][]sat.Lit {
	var clauses [][]sat.Lit
	p.eachPair(func(a, b *Value) {
		switch p.Relation(a, b) {
		case RelTrue:
			clauses = append(clauses, []sat.Lit{p.pairVar(a, b)})
		case RelFalse:
			clauses = append(clauses, []sat.Lit{p.pairVar(a, b).Neg()})
		}
	})
	for _, disj := range p.oneOfs {
		clause := make([]sat.Lit, 0, len(disj.options))
		for _, opt := range disj.options {
			clause = append(clause, p.pairVar(disj.value, opt))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
