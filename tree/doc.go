// Package tree provides the expression trees puzzles are made of.
//
// # Overview
//
// A tree is built from two kinds of [Node]:
//
//   - [*OpNode]: an operator from package op applied to exactly
//     op.Arity() children
//   - [*Literal]: a variable, named by one letter followed by digits
//     ("v0", "x12", "p")
//
// Trees are immutable once built. Accessors return copies, and nothing in
// this package changes a node after construction. A generated tree is
// replaced, never edited.
//
// Every OpNode also carries the free variable list of the whole expression
// it belongs to. The list is not structurally needed; renderers use it (the
// py format renders the root as a lambda over the variables).
//
// # Building Trees
//
//	v0, _ := tree.NewLiteral("v0")
//	v1, _ := tree.NewLiteral("v1")
//	and, err := tree.NewOp(op.And(), []string{"v0", "v1"}, v0, v1)
//
// NewLiteral fails with [ErrInvalidLiteral] for a malformed name and NewOp
// fails with [ErrArity] when the number of children does not match.
//
// # Evaluation
//
// Nodes evaluate against an [Env]. [Positional] maps v0, v1, ... to the
// entries of a row and [Named] maps arbitrary names. A name missing from
// the environment evaluates to false; evaluation never fails.
//
// # Rendering
//
// [Render] renders a tree in any format from package format. Children are
// rendered first and the results handed to the operator's renderer along
// with the depth of the node (the root is at -1).
//
//	s, err := tree.RenderString(and, format.TextFormat) // "v0 && v1"
//
// [Ops] lists the operators of a tree, [ToGraph] projects it into nodes
// and edges for diagrams and [Display] dumps it for diagnostics.
//
// # Related Packages
//
//   - github.com/elogical/elogic/op - Operators
//   - github.com/elogical/elogic/gen - Random trees
//   - github.com/elogical/elogic/synth - Satisfiable trees
package tree
