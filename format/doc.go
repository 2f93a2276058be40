// Package format names the output formats an expression tree can be
// rendered in.
//
// Every operator registered in package op supports every format listed by
// [AllFormats]. Rendering a tree in any other format fails with
// op.ErrUnsupportedFormat.
//
// # Usage
//
//	f, err := format.ParseFormat("tex")
//	if err != nil {
//	    // unknown format name
//	}
//	s, err := tree.RenderString(node, f)
//
// # Related Packages
//
//   - github.com/elogical/elogic/op - Operator registry and renderers
//   - github.com/elogical/elogic/tree - Expression trees
package format
