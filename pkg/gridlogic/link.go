package gridlogic

import (
	"fmt"
	"regexp"
	"strings"
)

// Visualization export: a deterministic encoding of the grid's current
// facts into the jsingler.de logic-puzzle tool's URL fragment format.
// Categories are lettered a, b, c... in declared order; a known fact
// between value i of category a and value j of category b is encoded as
// "aibj" and listed under n (negative) or p (positive).

const linkBase = "http://www.jsingler.de/apps/logikloeser/?language=en#(%s)"

var nonWord = regexp.MustCompile(`\W`)

// Link returns a URL that displays the grid's current state on
// jsingler.de. Unknown cells are simply absent from the encoding, so the
// link works for in-progress and solved grids alike.
func (g *Grid) Link() string {
	return fmt.Sprintf(linkBase, g.linkParams())
}

func (g *Grid) linkParams() string {
	encl := func(entries []string) string {
		return "!(" + strings.Join(entries, ",") + ")"
	}
	items := make([]string, 0, len(g.cats.cats))
	for _, cat := range g.cats.cats {
		labels := make([]string, 0, len(cat.values))
		for _, v := range cat.values {
			// The tool's escaping is odd; stripping non-word characters
			// keeps the link intact.
			labels = append(labels, nonWord.ReplaceAllString(v.label, ""))
		}
		items = append(items, encl(labels))
	}
	params := []string{
		"at:s",
		"ms:s",
		fmt.Sprintf("nc:%d", len(g.cats.cats)),
		fmt.Sprintf("ni:%d", g.Size()),
		"v:0",
		"items:" + encl(items),
		"n:" + encl(g.linkEntries(RelFalse)),
		"p:" + encl(g.linkEntries(RelTrue)),
	}
	return strings.Join(params, ",")
}

// linkEntries encodes every cell currently equal to rel, in category
// order then index order.
func (g *Grid) linkEntries(rel Relation) []string {
	letter := func(i int) byte { return byte('a' + i) }
	var entries []string
	cats := g.cats.cats
	for i := 0; i < len(cats); i++ {
		for j := i + 1; j < len(cats); j++ {
			for _, a := range cats[i].values {
				for _, b := range cats[j].values {
					if g.facts[keyOf(a, b)] == rel {
						entries = append(entries, fmt.Sprintf("%c%d%c%d",
							letter(i), a.index, letter(j), b.index))
					}
				}
			}
		}
	}
	return entries
}
