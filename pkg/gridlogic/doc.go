// Package gridlogic compiles categorical logic-grid puzzles into SAT
// problems and reads concrete assignments back out.
//
// Version: 0.1.0
//
// A puzzle declares N categories. Exclusive categories carry a fixed set
// of labels and contribute exactly one value to each hidden row; numeric
// categories attach a bounded number to each row. The package offers two
// layers:
//
//   - Grid: a tri-state pairwise fact store. Declarative assertions
//     (Exclude, Require, RequireOne) record which values share a row and
//     which cannot, with only local closure (symmetry and same-category
//     exclusivity). Grid never searches.
//
//   - Problem: a solver-backed Grid. It synthesizes one boolean variable
//     per cross-category value pair and one bounded integer variable per
//     (value, numeric category) pair, emits the structural constraints
//     that keep this heavily redundant encoding mutually consistent,
//     compiles arbitrary user predicates into forbidding clauses by
//     exhaustive enumeration, and delegates the actual search to the SAT
//     engine behind the internal solver bridge. Solve returns the first
//     model found; multi-solution enumeration and uniqueness checking are
//     out of scope.
//
// Values are addressed by label. A bare label resolves only when it is
// unambiguous across all categories; otherwise the qualified
// "category:label" form is required.
package gridlogic

// Version represents the current version of the gridlogic compiler.
const Version = "0.1.0"
