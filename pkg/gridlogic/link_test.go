package gridlogic

import (
	"strings"
	"testing"
)

func TestLink_Encoding(t *testing.T) {
	g, err := NewGrid(
		Enum("name", "Al", "Bo"),
		Enum("pet", "cat", "dog"),
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if err := g.Require("Al", "cat"); err != nil {
		t.Fatalf("Require failed: %v", err)
	}
	if err := g.Exclude("Bo", "cat"); err != nil {
		t.Fatalf("Exclude failed: %v", err)
	}

	want := "http://www.jsingler.de/apps/logikloeser/?language=en#(" +
		"at:s,ms:s,nc:2,ni:2,v:0," +
		"items:!(!(Al,Bo),!(cat,dog))," +
		"n:!(a1b0)," +
		"p:!(a0b0))"
	if got := g.Link(); got != want {
		t.Errorf("Link() =\n%s\nwant\n%s", got, want)
	}
}

// TestLink_Deterministic encodes the same state twice and from separately
// built grids; the output must be identical.
func TestLink_Deterministic(t *testing.T) {
	build := func() *Grid {
		g, err := NewGrid(
			Enum("name", "Al", "Bo", "Cy"),
			Enum("pet", "cat", "dog", "fox"),
			Enum("town", "Ayr", "Ely", "Uig"),
		)
		if err != nil {
			t.Fatalf("NewGrid failed: %v", err)
		}
		if err := g.Require("Al", "fox", "Ely"); err != nil {
			t.Fatalf("Require failed: %v", err)
		}
		if err := g.Exclude("Bo", "cat", "Uig"); err != nil {
			t.Fatalf("Exclude failed: %v", err)
		}
		return g
	}
	first := build().Link()
	if second := build().Link(); second != first {
		t.Errorf("encoding not deterministic:\n%s\n%s", first, second)
	}
	if third := build().Link(); third != first {
		t.Errorf("encoding not deterministic across runs")
	}
}

func TestLink_StripsNonWordCharacters(t *testing.T) {
	g, err := NewGrid(
		Enum("name", "St. Ives", "Bo-Bo"),
		Enum("pet", "cat", "dog"),
	)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	link := g.Link()
	if !strings.Contains(link, "!(StIves,BoBo)") {
		t.Errorf("labels not sanitized: %s", link)
	}
}
