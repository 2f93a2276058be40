// Package op is the registry of logical connectives.
//
// Each connective is an [Operator]: a name, an arity, an evaluation rule
// over two-valued logic and a renderer for every format in package format.
// Operators are created once as package level values and registered from
// init; the registry is read-only afterwards.
//
// # Registered Operators
//
//	name         arity  rule
//	and          2      a && b
//	or           2      a || b
//	xor          2      a != b
//	implication  2      !(a && !b)
//	eq           2      a == b
//	not          1      !a
//	True         0      true
//	False        0      false
//	start        1      a (marks the root of a generated tree)
//	parens       1      a (forces visual grouping)
//
// start and parens are wrappers: they never change the value of the
// expression they wrap and exist for presentation only.
//
// # Rendering
//
// Renderers receive the already rendered children in [Args]. String formats
// receive strings; the obj format receives [Object] values and literal
// names; the array format receives nested []any values.
//
// # Related Packages
//
//   - github.com/elogical/elogic/format - Render formats
//   - github.com/elogical/elogic/tree - Expression trees built from operators
package op
