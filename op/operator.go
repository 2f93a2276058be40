package op

import (
	"fmt"
	"strings"

	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/format"
)

type Operator interface {
	Name() string
	Arity() int
	Eval(args []bool) bool
	Render(f format.Format, a Args) (any, error)

	// Color is the display color as "#rrggbb", empty when the operator has
	// none.
	Color() string

	// Symbol is the unicode symbol used by the obj format.
	Symbol() string

	// Label is the html label used in graph projections.
	Label() string

	// Wrapper reports whether the operator is a presentation only pass
	// through (start, parens).
	Wrapper() bool
}

// Args is what a renderer is given for one operator node.
type Args struct {
	L        []any          // rendered children, in order
	Vars     []string       // free variables of the whole expression
	Depth    int            // depth of the node, the root is rendered at -1
	Children []fmt.Stringer // child subtrees
	Color    string
}

// S returns the i'th rendered child as a string.
func (a Args) S(i int) string {
	if s, ok := a.L[i].(string); ok {
		return s
	}
	return fmt.Sprint(a.L[i])
}

// Object is the generic object rendering of a node.
type Object struct {
	Name     string `json:"name" yaml:"name"`
	Children []any  `json:"children" yaml:"children"`
}

type operator struct {
	name    string
	arity   int
	color   string
	symbol  string
	label   string
	wrapper bool
}

func (o operator) Name() string { return o.name }
func (o operator) String() string { return o.name }
func (o operator) Arity() int { return o.arity }
func (o operator) Color() string { return o.color }
func (o operator) Symbol() string { return o.symbol }
func (o operator) Wrapper() bool { return o.wrapper }

func (o operator) Label() string {
	if o.label != "" {
		return o.label
	}
	return o.symbol
}

func texColor(color, template string) string {
	if color == "" {
		return template
	}
	return `\textcolor{` + color + `}{` + template + `}`
}

func paint(color, s string) string {
	return encode.DefaultColors().Color(color, s)
}

func htmlOp(entity string) string {
	return `<span class="op">` + entity + `</span>`
}

// binary renders the common infix shape of the two argument connectives.
// text, expr and ansi are handled by the caller since they differ per
// connective.
func binary(o Operator, f format.Format, a Args, tex, py, entity string) (any, error) {
	switch f {
	case format.TexFormat:
		return texColor(a.Color, a.S(0)+" "+tex+" "+a.S(1)), nil
	case format.ObjFormat:
		return Object{Name: o.Symbol(), Children: a.L}, nil
	case format.PyFormat:
		return a.S(0) + " " + py + " " + a.S(1), nil
	case format.ArrayFormat:
		return []any{o.Name(), a.L}, nil
	case format.HTMLFormat:
		return a.S(0) + " " + htmlOp(entity) + " " + a.S(1), nil
	default:
		return nil, unsupported(o, f)
	}
}

// infix renders "l tok r" for text and ansi, and "(l) etok (r)" for expr.
func infix(f format.Format, a Args, tok, etok string) (string, bool) {
	switch f {
	case format.TextFormat:
		return a.S(0) + " " + tok + " " + a.S(1), true
	case format.ANSIFormat:
		return a.S(0) + " " + paint(a.Color, tok) + " " + a.S(1), true
	case format.ExprFormat:
		return "(" + a.S(0) + ") " + etok + " (" + a.S(1) + ")", true
	default:
		return "", false
	}
}

func pyLambda(vars []string, body string) string {
	return "lambda " + strings.Join(vars, ", ") + ": " + body
}
