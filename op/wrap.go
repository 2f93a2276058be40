package op

import "github.com/elogical/elogic/format"

var (
	startOp  = &startOperator{operator{name: "start", arity: 1, symbol: "start", wrapper: true}}
	parensOp = &parensOperator{operator{name: "parens", arity: 1, symbol: "paren", wrapper: true}}
)

// Start marks the root of a generated expression.
func Start() Operator {
	return startOp
}

// Parens groups its child for display.
func Parens() Operator {
	return parensOp
}

type startOperator struct {
	operator
}

func (o *startOperator) Eval(l []bool) bool {
	return l[0]
}

func (o *startOperator) Render(f format.Format, a Args) (any, error) {
	switch f {
	case format.TextFormat, format.TexFormat, format.HTMLFormat, format.ExprFormat, format.ANSIFormat:
		return a.S(0), nil
	case format.ObjFormat:
		return Object{Name: o.symbol, Children: a.L}, nil
	case format.PyFormat:
		return pyLambda(a.Vars, a.S(0)), nil
	case format.ArrayFormat:
		return a.L, nil
	default:
		return nil, unsupported(o, f)
	}
}

type parensOperator struct {
	operator
}

func (o *parensOperator) Eval(l []bool) bool {
	return l[0]
}

func (o *parensOperator) Render(f format.Format, a Args) (any, error) {
	switch f {
	case format.TextFormat, format.TexFormat, format.HTMLFormat, format.ExprFormat, format.ANSIFormat, format.PyFormat:
		return "(" + a.S(0) + ")", nil
	case format.ObjFormat:
		return Object{Name: o.symbol, Children: a.L}, nil
	case format.ArrayFormat:
		return a.L, nil
	default:
		return nil, unsupported(o, f)
	}
}
