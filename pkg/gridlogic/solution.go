package gridlogic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gitrdm/gridlogic/internal/sat"
)

// Row is one reconstructed entity of a solution: one label per exclusive
// category plus one number per numeric category.
type Row struct {
	labels  map[string]string
	numbers map[string]int
}

// Label returns the row's label for the named exclusive category.
func (r Row) Label(category string) string { return r.labels[category] }

// Number returns the row's number for the named numeric category.
func (r Row) Number(category string) int { return r.numbers[category] }

// Solution is the terminal artifact of one Solve call: a concrete
// assignment of one value per exclusive category and one number per
// numeric category to each row, exposed both as a row-major table and as
// a fully resolved Grid. It never mutates the Problem it came from.
type Solution struct {
	problem *Problem
	model   *sat.Model
	rows    []Row
	grid    *Grid
}

// materialize reads the model back into a Solution. Rows are anchored on
// the first exclusive category in declared order; each row's partners in
// the other categories are the values whose pair variable is true in the
// model.
func (p *Problem) materialize(model *sat.Model) (*Solution, error) {
	cats := p.cats.cats
	first := cats[0]
	rows := make([]Row, 0, p.Size())
	for _, anchor := range first.values {
		row := Row{
			labels:  map[string]string{first.name: anchor.label},
			numbers: make(map[string]int),
		}
		for _, other := range cats[1:] {
			found := false
			for _, b := range other.values {
				if model.Value(p.pairVar(anchor, b)) {
					row.labels[other.name] = b.label
					found = true
					break
				}
			}
			if !found {
				// The cardinality clauses guarantee a partner; a miss
				// means the model is not total over our variables.
				return nil, fmt.Errorf("materialize: no %s partner for %s in model", other.name, anchor)
			}
		}
		for _, num := range p.numeric {
			row.numbers[num.name] = model.IntValue(p.numVar(anchor, num))
		}
		rows = append(rows, row)
	}

	// Settle every cell of a fresh grid from the boolean variables.
	resolved := &Grid{cats: p.cats, facts: make(map[pairKey]Relation)}
	p.eachPair(func(a, b *Value) {
		rel := RelFalse
		if model.Value(p.pairVar(a, b)) {
			rel = RelTrue
		}
		resolved.facts[keyOf(a, b)] = rel
	})

	return &Solution{problem: p, model: model, rows: rows, grid: resolved}, nil
}

// Number returns the numeric-category value attributed to the row
// containing the given value, looked up through that value's own view.
// The structural constraints guarantee the answer is the same whichever
// value of the row is asked.
func (s *Solution) Number(id string, category string) (int, error) {
	v, err := s.problem.Resolve(id)
	if err != nil {
		return 0, err
	}
	num := s.problem.numericByName(category)
	if num == nil {
		return 0, fmt.Errorf("Number: no numeric category %q", category)
	}
	return s.model.IntValue(s.problem.numVar(v, num)), nil
}

// Rows returns the row-major table, ordered by the first exclusive
// category's declared label order.
func (s *Solution) Rows() []Row { return s.rows }

// Grid returns the fully resolved relation grid: every cross-category
// cell is true or false, no unknowns remain.
func (s *Solution) Grid() *Grid { return s.grid }

// Table renders the rows as an aligned text table, one column per
// category in declared order.
func (s *Solution) Table() string {
	p := s.problem
	var headers []string
	for _, cat := range p.cats.cats {
		headers = append(headers, cat.name)
	}
	for _, num := range p.numeric {
		headers = append(headers, num.name)
	}
	cells := make([][]string, 0, len(s.rows)+1)
	cells = append(cells, headers)
	for _, row := range s.rows {
		line := make([]string, 0, len(headers))
		for _, cat := range p.cats.cats {
			line = append(line, row.Label(cat.name))
		}
		for _, num := range p.numeric {
			line = append(line, strconv.Itoa(row.Number(num.name)))
		}
		cells = append(cells, line)
	}
	widths := make([]int, len(headers))
	for _, line := range cells {
		for i, cell := range line {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	var b strings.Builder
	for n, line := range cells {
		for i, cell := range line {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if i < len(line)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		b.WriteByte('\n')
		if n == 0 {
			for i, w := range widths {
				if i > 0 {
					b.WriteString("  ")
				}
				b.WriteString(strings.Repeat("-", w))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
