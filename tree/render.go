package tree

import (
	"fmt"
	"regexp"

	"github.com/elogical/elogic/debug"
	"github.com/elogical/elogic/format"
	"github.com/elogical/elogic/op"
)

var subscriptPattern = regexp.MustCompile(`^([a-zA-Z])(\d+)$`)

// Render renders n in format f. The root is rendered at depth -1.
func Render(n Node, f format.Format) (any, error) {
	v, err := n.renderAt(f, -1)
	if err != nil {
		return nil, err
	}
	if debug.Render() {
		debug.Logf("render %s: %v\n", f, v)
	}
	return v, nil
}

// RenderString renders n in a string format.
func RenderString(n Node, f format.Format) (string, error) {
	v, err := n.renderAt(f, -1)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s renders to %T, not a string", f, v)
	}
	return s, nil
}

func (n *OpNode) renderAt(f format.Format, depth int) (any, error) {
	results := make([]any, len(n.children))
	children := make([]fmt.Stringer, len(n.children))
	for i, c := range n.children {
		r, err := c.renderAt(f, depth+1)
		if err != nil {
			return nil, err
		}
		results[i] = r
		children[i] = c
	}
	return n.op.Render(f, op.Args{
		L:        results,
		Vars:     n.vars,
		Depth:    depth,
		Children: children,
		Color:    n.op.Color(),
	})
}

func (l *Literal) renderAt(f format.Format, _ int) (any, error) {
	switch f {
	case format.TexFormat:
		m := subscriptPattern.FindStringSubmatch(l.name)
		if m == nil {
			return l.name, nil
		}
		return m[1] + "_{" + m[2] + "}", nil
	case format.HTMLFormat:
		return l.html(), nil
	case format.TextFormat, format.ObjFormat, format.PyFormat, format.ArrayFormat,
		format.ExprFormat, format.ANSIFormat:
		return l.name, nil
	default:
		return nil, &op.UnsupportedFormatError{Operator: "literal " + l.name, Format: f}
	}
}

func (l *Literal) html() string {
	m := subscriptPattern.FindStringSubmatch(l.name)
	if m == nil {
		return `<span class="var" data-name="` + l.name + `">` + l.name + `</span>`
	}
	return `<span class="var" data-name="` + l.name + `">` + m[1] + "<sub>" + m[2] + "</sub></span>"
}
