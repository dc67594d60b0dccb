package gridlogic

import (
	"fmt"
	"strconv"
)

// CategoryKind distinguishes the two variants of Category.
type CategoryKind int

const (
	// KindEnum marks an exclusive category: an ordered set of labels,
	// exactly one of which occurs in every row.
	KindEnum CategoryKind = iota
	// KindNumeric marks a numeric category: every row carries one number
	// drawn from a bounded domain, with repeats allowed across rows.
	KindNumeric
)

// NumberDomain is the domain of a numeric category. Implementations must
// enumerate a finite, non-empty set of candidate values; the constraint
// compiler relies on exhaustive enumeration.
type NumberDomain interface {
	// Values returns the candidate values in ascending order.
	Values() []int
	// String describes the domain for diagnostics.
	String() string
}

// IntRange is the stock NumberDomain: the inclusive integer interval
// [Low, High].
type IntRange struct {
	Low  int
	High int
}

// Values returns every integer in the interval.
func (r IntRange) Values() []int {
	if r.High < r.Low {
		return nil
	}
	vals := make([]int, 0, r.High-r.Low+1)
	for v := r.Low; v <= r.High; v++ {
		vals = append(vals, v)
	}
	return vals
}

func (r IntRange) String() string {
	return "[" + strconv.Itoa(r.Low) + ".." + strconv.Itoa(r.High) + "]"
}

// Category is one axis of a puzzle: either an exclusive set of labels or
// a bounded numeric domain. Categories are immutable after the Grid or
// Problem owning them is constructed.
type Category struct {
	name   string
	kind   CategoryKind
	values []*Value     // KindEnum only
	domain NumberDomain // KindNumeric only
}

// Enum declares an exclusive category with the given ordered labels.
func Enum(name string, labels ...string) Category {
	c := Category{name: name, kind: KindEnum}
	for i, label := range labels {
		c.values = append(c.values, &Value{label: label, index: i})
	}
	return c
}

// Ints declares a numeric category over the inclusive range [low, high].
func Ints(name string, low, high int) Category {
	return Numeric(name, IntRange{Low: low, High: high})
}

// Numeric declares a numeric category over an arbitrary bounded domain.
func Numeric(name string, domain NumberDomain) Category {
	return Category{name: name, kind: KindNumeric, domain: domain}
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Kind returns the category variant.
func (c *Category) Kind() CategoryKind { return c.kind }

// Values returns the member values of an exclusive category, in declared
// order. It is nil for numeric categories.
func (c *Category) Values() []*Value { return c.values }

// Domain returns the numeric domain of a numeric category. It is nil for
// exclusive categories.
func (c *Category) Domain() NumberDomain { return c.domain }

// Size returns the number of member values of an exclusive category.
func (c *Category) Size() int { return len(c.values) }

func (c *Category) String() string {
	if c.kind == KindNumeric {
		return fmt.Sprintf("%s%s", c.name, c.domain)
	}
	return c.name
}

// Value is a single label belonging to exactly one exclusive category.
// Its fully qualified name is "category:label".
type Value struct {
	category *Category
	label    string
	index    int
}

// Category returns the owning category.
func (v *Value) Category() *Category { return v.category }

// Label returns the bare label.
func (v *Value) Label() string { return v.label }

// Index returns the position of the value in its category's declared
// order.
func (v *Value) Index() int { return v.index }

// Name returns the fully qualified "category:label" form.
func (v *Value) Name() string { return v.category.name + ":" + v.label }

func (v *Value) String() string { return v.Name() }
