package sat

import (
	"testing"
)

func TestBool_DistinctVariables(t *testing.T) {
	s := New()
	a := s.Bool("a")
	b := s.Bool("b")
	if a == b {
		t.Fatalf("Bool returned the same literal twice: %v", a)
	}
	if s.Name(a) != "a" || s.Name(b.Neg()) != "b" {
		t.Errorf("names not preserved: %q, %q", s.Name(a), s.Name(b.Neg()))
	}
}

func TestSolve_UnitPropagation(t *testing.T) {
	s := New()
	a := s.Bool("a")
	b := s.Bool("b")
	s.AddClause(a)
	s.AddClause(a.Neg(), b)

	m, err := s.Solve(nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !m.Value(a) || !m.Value(b) {
		t.Errorf("model a=%v b=%v, want both true", m.Value(a), m.Value(b))
	}
	if m.Value(b.Neg()) {
		t.Errorf("negated literal read true in a model where the variable is true")
	}
}

func TestSolve_Unsatisfiable(t *testing.T) {
	s := New()
	a := s.Bool("a")
	s.AddClause(a)
	s.AddClause(a.Neg())

	if _, err := s.Solve(nil); err != ErrUnsatisfiable {
		t.Fatalf("Solve = %v, want ErrUnsatisfiable", err)
	}
}

// TestSolve_ExtraClausesNotRetained solves once with a pinning extra
// clause and once without; the pin must not persist.
func TestSolve_ExtraClausesNotRetained(t *testing.T) {
	s := New()
	a := s.Bool("a")
	s.AddClause(a)

	if _, err := s.Solve([][]Lit{{a.Neg()}}); err != ErrUnsatisfiable {
		t.Fatalf("Solve with contradicting extra = %v, want ErrUnsatisfiable", err)
	}
	m, err := s.Solve(nil)
	if err != nil {
		t.Fatalf("Solve after extra failed: %v", err)
	}
	if !m.Value(a) {
		t.Errorf("model a=false, want true")
	}
}

// TestInt_ExactlyOne checks the one-hot encoding: in every model the
// variable takes exactly one value from its domain.
func TestInt_ExactlyOne(t *testing.T) {
	s := New()
	v, err := s.Int("v", []int{3, 5, 7})
	if err != nil {
		t.Fatalf("Int failed: %v", err)
	}

	m, err := s.Solve(nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	hot := 0
	for _, cand := range v.Values() {
		lit, ok := v.LitEq(cand)
		if !ok {
			t.Fatalf("LitEq(%d) missing", cand)
		}
		if m.Value(lit) {
			hot++
		}
	}
	if hot != 1 {
		t.Errorf("%d candidate literals true, want exactly 1", hot)
	}
	got := m.IntValue(v)
	if got != 3 && got != 5 && got != 7 {
		t.Errorf("IntValue = %d, not in domain", got)
	}
}

func TestInt_PinnedValue(t *testing.T) {
	s := New()
	v, err := s.Int("v", []int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Int failed: %v", err)
	}
	lit, ok := v.LitEq(3)
	if !ok {
		t.Fatalf("LitEq(3) missing")
	}
	s.AddClause(lit)

	m, err := s.Solve(nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got := m.IntValue(v); got != 3 {
		t.Errorf("IntValue = %d, want 3", got)
	}
}

func TestInt_EmptyDomain(t *testing.T) {
	s := New()
	if _, err := s.Int("v", nil); err == nil {
		t.Fatalf("Int accepted an empty domain")
	}
}

func TestInt_OutOfDomainLiteral(t *testing.T) {
	s := New()
	v, err := s.Int("v", []int{1, 2})
	if err != nil {
		t.Fatalf("Int failed: %v", err)
	}
	if _, ok := v.LitEq(9); ok {
		t.Errorf("LitEq(9) reported a literal for an out-of-domain value")
	}
}
