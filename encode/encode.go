package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.doc {
	case JSONDoc:
		enc := json.NewEncoder(w)
		if !es.wire {
			enc.SetIndent("", strings.Repeat(" ", es.indent))
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		yopts := []yaml.EncodeOption{yaml.Indent(es.indent)}
		if es.wire {
			yopts = append(yopts, yaml.Flow(true))
		}
		enc := yaml.NewEncoder(w, yopts...)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
}

// MustString encodes v and panics on failure. It is meant for values whose
// encoding cannot fail, such as snapshots built by package puzzle.
func MustString(v any, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
