package op

import "github.com/elogical/elogic/format"

var notOp = &notOperator{operator{
	name:   "not",
	arity:  1,
	color:  "#FF605C",
	symbol: "¬",
	label:  htmlOp("&not;"),
}}

func Not() Operator {
	return notOp
}

type notOperator struct {
	operator
}

func (o *notOperator) Eval(l []bool) bool {
	return !l[0]
}

func (o *notOperator) Render(f format.Format, a Args) (any, error) {
	switch f {
	case format.TextFormat:
		return "!(" + a.S(0) + ")", nil
	case format.ANSIFormat:
		return paint(a.Color, "!(") + a.S(0) + paint(a.Color, ")"), nil
	case format.ExprFormat:
		return "!(" + a.S(0) + ")", nil
	case format.TexFormat:
		return texColor(a.Color, `\neg `+a.S(0)), nil
	case format.ObjFormat:
		return Object{Name: o.symbol, Children: a.L}, nil
	case format.PyFormat:
		return "(not " + a.S(0) + ")", nil
	case format.ArrayFormat:
		return []any{o.name, a.L}, nil
	case format.HTMLFormat:
		return o.label + a.S(0), nil
	default:
		return nil, unsupported(o, f)
	}
}
