package gridlogic

import (
	"errors"
	"testing"
)

// testGrid builds the small three-category grid used throughout the grid
// tests. "Violet" is deliberately both a name and a color so that the
// ambiguity rules are exercised.
func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(
		Enum("name", "Brita", "Galal", "Violet"),
		Enum("color", "Blue", "Green", "Violet"),
		Enum("sign", "Aries", "Scorpio", "Virgo"),
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGrid_Validation(t *testing.T) {
	cases := []struct {
		name string
		cats []Category
	}{
		{"one category", []Category{Enum("name", "a", "b")}},
		{"unequal cardinality", []Category{Enum("a", "x", "y"), Enum("b", "x", "y", "z")}},
		{"duplicate label", []Category{Enum("a", "x", "x"), Enum("b", "y", "z")}},
		{"duplicate category", []Category{Enum("a", "x", "y"), Enum("a", "y", "z")}},
		{"numeric category", []Category{Enum("a", "x", "y"), Ints("b", 1, 2)}},
		{"colon in name", []Category{Enum("a:b", "x", "y"), Enum("c", "y", "z")}},
		{"empty categories", []Category{Enum("a"), Enum("b")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.cats...); err == nil {
				t.Errorf("NewGrid accepted invalid input")
			}
		})
	}
}

func TestResolve_QualifiedAndBare(t *testing.T) {
	g := testGrid(t)

	v, err := g.Resolve("Brita")
	if err != nil {
		t.Fatalf("bare unambiguous label failed: %v", err)
	}
	if v.Name() != "name:Brita" {
		t.Errorf("Resolve(Brita) = %s, want name:Brita", v)
	}

	v, err = g.Resolve("color:Violet")
	if err != nil {
		t.Fatalf("qualified label failed: %v", err)
	}
	if v.Category().Name() != "color" || v.Label() != "Violet" {
		t.Errorf("Resolve(color:Violet) = %s", v)
	}
}

func TestResolve_AmbiguousBareLabel(t *testing.T) {
	g := testGrid(t)

	_, err := g.Resolve("Violet")
	var ambig *AmbiguousValueError
	if !errors.As(err, &ambig) {
		t.Fatalf("Resolve(Violet) = %v, want AmbiguousValueError", err)
	}
	if len(ambig.Candidates) != 2 {
		t.Errorf("got %d candidates, want 2", len(ambig.Candidates))
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	g := testGrid(t)

	for _, id := range []string{"Zork", "pet:Brita", "name:Zork"} {
		_, err := g.Resolve(id)
		var unknown *UnknownValueError
		if !errors.As(err, &unknown) {
			t.Errorf("Resolve(%q) = %v, want UnknownValueError", id, err)
		}
	}
}

// TestRelation_Symmetry checks that the relation is symmetric after any
// assertion, regardless of argument order.
func TestRelation_Symmetry(t *testing.T) {
	g := testGrid(t)
	if err := g.Require("Brita", "Blue"); err != nil {
		t.Fatalf("Require failed: %v", err)
	}
	if err := g.Exclude("Galal", "Virgo"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}

	for _, pair := range [][2]string{{"Brita", "Blue"}, {"Galal", "Virgo"}, {"Brita", "Virgo"}} {
		ab, err := g.RelationOf(pair[0], pair[1])
		if err != nil {
			t.Fatalf("RelationOf(%s, %s): %v", pair[0], pair[1], err)
		}
		ba, err := g.RelationOf(pair[1], pair[0])
		if err != nil {
			t.Fatalf("RelationOf(%s, %s): %v", pair[1], pair[0], err)
		}
		if ab != ba {
			t.Errorf("relation(%s,%s)=%s but relation(%s,%s)=%s",
				pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

// TestRelation_SameCategory checks the unconditional same-category
// exclusivity: distinct values of one category are always false to each
// other, no assertions needed.
func TestRelation_SameCategory(t *testing.T) {
	g := testGrid(t)
	rel, err := g.RelationOf("Brita", "Galal")
	if err != nil {
		t.Fatalf("RelationOf: %v", err)
	}
	if rel != RelFalse {
		t.Errorf("same-category relation = %s, want false", rel)
	}
	rel, err = g.RelationOf("Brita", "name:Brita")
	if err != nil {
		t.Fatalf("RelationOf: %v", err)
	}
	if rel != RelTrue {
		t.Errorf("identity relation = %s, want true", rel)
	}
}

func TestExclude_SkipsSameCategoryPairs(t *testing.T) {
	g := testGrid(t)
	// Brita and Galal are both names; excluding them together must not
	// error, the cross-category pairs still get recorded.
	if err := g.Exclude("Brita", "Galal", "Blue"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}
	for _, name := range []string{"Brita", "Galal"} {
		rel, _ := g.RelationOf(name, "Blue")
		if rel != RelFalse {
			t.Errorf("relation(%s, Blue) = %s, want false", name, rel)
		}
	}
}

func TestRequire_SameCategoryContradicts(t *testing.T) {
	g := testGrid(t)
	err := g.Require("Brita", "Galal")
	var contra *ContradictionError
	if !errors.As(err, &contra) {
		t.Fatalf("Require(Brita, Galal) = %v, want ContradictionError", err)
	}
}

// TestContradiction_LeavesStateIntact asserts true then false on one
// pair and checks that the error surfaces while the prior fact is kept.
func TestContradiction_LeavesStateIntact(t *testing.T) {
	g := testGrid(t)
	if err := g.Require("Brita", "Blue"); err != nil {
		t.Fatalf("Require failed: %v", err)
	}

	err := g.Exclude("Brita", "Blue")
	var contra *ContradictionError
	if !errors.As(err, &contra) {
		t.Fatalf("Exclude after Require = %v, want ContradictionError", err)
	}
	rel, _ := g.RelationOf("Brita", "Blue")
	if rel != RelTrue {
		t.Errorf("prior fact lost: relation = %s, want true", rel)
	}

	// The reverse order must fail the same way.
	if err := g.Exclude("Galal", "Green"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}
	if err := g.Require("Galal", "Green"); !errors.As(err, &contra) {
		t.Fatalf("Require after Exclude = %v, want ContradictionError", err)
	}
	rel, _ = g.RelationOf("Galal", "Green")
	if rel != RelFalse {
		t.Errorf("prior fact lost: relation = %s, want false", rel)
	}
}

// TestAssertion_Atomic checks that a contradiction anywhere in a
// multi-value assertion leaves the whole grid untouched.
func TestAssertion_Atomic(t *testing.T) {
	g := testGrid(t)
	if err := g.Require("Brita", "Blue"); err != nil {
		t.Fatalf("Require failed: %v", err)
	}
	// Galal/Aries would be fine on its own; Brita/Blue contradicts.
	if err := g.Exclude("Galal", "Aries", "Brita", "Blue"); err == nil {
		t.Fatalf("Exclude accepted a contradicting assertion")
	}
	rel, _ := g.RelationOf("Galal", "Aries")
	if rel != RelUnknown {
		t.Errorf("partial mutation: relation(Galal, Aries) = %s, want unknown", rel)
	}
}

func TestAssertion_Idempotent(t *testing.T) {
	g := testGrid(t)
	for i := 0; i < 2; i++ {
		if err := g.Require("Brita", "Blue"); err != nil {
			t.Fatalf("Require round %d failed: %v", i+1, err)
		}
		if err := g.Exclude("Galal", "Virgo"); err != nil {
			t.Fatalf("Exclude round %d failed: %v", i+1, err)
		}
	}
	if len(g.facts) != 2 {
		t.Errorf("re-assertion changed state: %d facts, want 2", len(g.facts))
	}
}

func TestAssertion_AmbiguousLabelRejected(t *testing.T) {
	g := testGrid(t)
	err := g.Exclude("Violet", "Aries")
	var ambig *AmbiguousValueError
	if !errors.As(err, &ambig) {
		t.Fatalf("Exclude(Violet, ...) = %v, want AmbiguousValueError", err)
	}
}

func TestRequireOne_ExcludesNonOptions(t *testing.T) {
	g := testGrid(t)
	if err := g.RequireOne("Brita", []string{"Blue", "Green"}); err != nil {
		t.Fatalf("RequireOne failed: %v", err)
	}
	// The non-option color is excluded immediately...
	rel, _ := g.RelationOf("Brita", "color:Violet")
	if rel != RelFalse {
		t.Errorf("relation(Brita, color:Violet) = %s, want false", rel)
	}
	// ...but neither option is forced while both are open.
	for _, opt := range []string{"Blue", "Green"} {
		rel, _ := g.RelationOf("Brita", opt)
		if rel != RelUnknown {
			t.Errorf("relation(Brita, %s) = %s, want unknown", opt, rel)
		}
	}
}

// TestRequireOne_PromotesLastOption checks the local propagation: when
// all but one option is already false, the survivor is set true.
func TestRequireOne_PromotesLastOption(t *testing.T) {
	g := testGrid(t)
	if err := g.Exclude("Brita", "Blue"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}
	if err := g.RequireOne("Brita", []string{"Blue", "Green"}); err != nil {
		t.Fatalf("RequireOne failed: %v", err)
	}
	rel, _ := g.RelationOf("Brita", "Green")
	if rel != RelTrue {
		t.Errorf("relation(Brita, Green) = %s, want true", rel)
	}
}

func TestRequireOne_AllOptionsExcludedContradicts(t *testing.T) {
	g := testGrid(t)
	if err := g.Exclude("Brita", "Blue"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}
	if err := g.Exclude("Brita", "Green"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}
	err := g.RequireOne("Brita", []string{"Blue", "Green"})
	var contra *ContradictionError
	if !errors.As(err, &contra) {
		t.Fatalf("RequireOne with all options false = %v, want ContradictionError", err)
	}
}

func TestRequireOne_Validation(t *testing.T) {
	g := testGrid(t)
	if err := g.RequireOne("Brita", []string{"Blue", "Aries"}); err == nil {
		t.Errorf("options from two categories accepted")
	}
	if err := g.RequireOne("Brita", []string{"Galal"}); err == nil {
		t.Errorf("options from the value's own category accepted")
	}
	if err := g.RequireOne("Brita", nil); err == nil {
		t.Errorf("empty options accepted")
	}
}
