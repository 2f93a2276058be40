package op

import "github.com/elogical/elogic/format"

var (
	trueOp  = &constOperator{operator: operator{name: "True", symbol: "1"}, value: true}
	falseOp = &constOperator{operator: operator{name: "False", symbol: "0"}, value: false}
)

func True() Operator {
	return trueOp
}

func False() Operator {
	return falseOp
}

// constOperator is a nullary connective with a fixed value.
type constOperator struct {
	operator
	value bool
}

func (o *constOperator) Eval([]bool) bool {
	return o.value
}

func (o *constOperator) Render(f format.Format, a Args) (any, error) {
	text := "false"
	py := "False"
	if o.value {
		text = "true"
		py = "True"
	}
	switch f {
	case format.TextFormat, format.ExprFormat, format.ArrayFormat:
		return text, nil
	case format.ANSIFormat:
		return paint(a.Color, text), nil
	case format.TexFormat:
		return texColor(a.Color, o.symbol), nil
	case format.ObjFormat:
		return Object{Name: o.symbol, Children: []any{}}, nil
	case format.PyFormat:
		return py, nil
	case format.HTMLFormat:
		return o.symbol, nil
	default:
		return nil, unsupported(o, f)
	}
}
