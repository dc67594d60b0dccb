package gridlogic

import (
	"fmt"
	"strings"
)

// catalog owns the built category universe of one puzzle: the exclusive
// categories in declared order, plus the label resolver index. It is the
// explicit replacement for duck-typed label lookup: a bare label maps to
// the set of candidate values across all categories, and resolution
// either returns the single match or a typed error, never a guess.
type catalog struct {
	cats   []*Category
	byName map[string]*Category
	bare   map[string][]*Value // bare label -> candidates across categories
	size   int                 // row count R, common cardinality of all categories
}

// newCatalog validates the exclusive category declarations and builds the
// resolver index. Numeric categories are handled by Problem and never
// enter the catalog.
func newCatalog(decls []Category) (*catalog, error) {
	if len(decls) < 2 {
		return nil, fmt.Errorf("categories: need at least 2 exclusive categories, got %d", len(decls))
	}
	c := &catalog{
		byName: make(map[string]*Category),
		bare:   make(map[string][]*Value),
	}
	for _, decl := range decls {
		if decl.kind != KindEnum {
			return nil, fmt.Errorf("categories: %q is numeric, expected exclusive", decl.name)
		}
		if decl.name == "" {
			return nil, fmt.Errorf("categories: empty category name")
		}
		if strings.Contains(decl.name, ":") {
			return nil, fmt.Errorf("categories: name %q must not contain ':'", decl.name)
		}
		if _, dup := c.byName[decl.name]; dup {
			return nil, fmt.Errorf("categories: duplicate category %q", decl.name)
		}
		cat := &Category{name: decl.name, kind: KindEnum}
		seen := make(map[string]bool)
		for i, src := range decl.values {
			if src.label == "" {
				return nil, fmt.Errorf("categories: empty label in %q", decl.name)
			}
			if seen[src.label] {
				return nil, fmt.Errorf("categories: duplicate label %q in %q", src.label, decl.name)
			}
			seen[src.label] = true
			v := &Value{category: cat, label: src.label, index: i}
			cat.values = append(cat.values, v)
			c.bare[v.label] = append(c.bare[v.label], v)
		}
		if c.size == 0 {
			c.size = len(cat.values)
		} else if len(cat.values) != c.size {
			return nil, fmt.Errorf("categories: %q has %d values, expected %d",
				cat.name, len(cat.values), c.size)
		}
		c.cats = append(c.cats, cat)
		c.byName[cat.name] = cat
	}
	if c.size == 0 {
		return nil, fmt.Errorf("categories: categories must not be empty")
	}
	return c, nil
}

// resolve maps a bare or qualified identifier to its value. Qualified
// identifiers ("category:label") are looked up directly; bare labels
// resolve only when exactly one category has a matching value.
func (c *catalog) resolve(id string) (*Value, error) {
	if cat, label, ok := strings.Cut(id, ":"); ok {
		owner := c.byName[cat]
		if owner == nil {
			return nil, &UnknownValueError{Label: id}
		}
		for _, v := range owner.values {
			if v.label == label {
				return v, nil
			}
		}
		return nil, &UnknownValueError{Label: id}
	}
	cands := c.bare[id]
	switch len(cands) {
	case 0:
		return nil, &UnknownValueError{Label: id}
	case 1:
		return cands[0], nil
	default:
		return nil, &AmbiguousValueError{Label: id, Candidates: cands}
	}
}

// resolveAll resolves a list of identifiers, failing on the first
// unknown or ambiguous one.
func (c *catalog) resolveAll(ids []string) ([]*Value, error) {
	vals := make([]*Value, len(ids))
	for i, id := range ids {
		v, err := c.resolve(id)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
