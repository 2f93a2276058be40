// Package encode writes puzzle data for terminals and for other processes.
//
// # Colors
//
// [Colors] maps operator display colors ("#rrggbb") to ANSI true-color
// printers built with github.com/fatih/color. The ansi render format of
// package op paints operator tokens through [DefaultColors].
//
// # Documents
//
// [Encode] writes any value as YAML (github.com/goccy/go-yaml) or JSON:
//
//	err := encode.Encode(snapshot, os.Stdout, encode.EncodeDoc(encode.JSONDoc))
//
// # Related Packages
//
//   - github.com/elogical/elogic/op - Operator registry and renderers
//   - github.com/elogical/elogic/puzzle - Puzzle snapshots
package encode
