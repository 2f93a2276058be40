package op

import "github.com/elogical/elogic/format"

var xorOp = &xorOperator{operator{
	name:   "xor",
	arity:  2,
	color:  "#8B5A99",
	symbol: "⊕",
	label:  htmlOp("&oplus;"),
}}

func Xor() Operator {
	return xorOp
}

type xorOperator struct {
	operator
}

func (o *xorOperator) Eval(l []bool) bool {
	return l[0] != l[1]
}

func (o *xorOperator) Render(f format.Format, a Args) (any, error) {
	if s, ok := infix(f, a, "!==", "!="); ok {
		return s, nil
	}
	return binary(o, f, a, `\oplus`, "!=", "&oplus;")
}
