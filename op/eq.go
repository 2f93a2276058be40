package op

import "github.com/elogical/elogic/format"

var eqOp = &eqOperator{operator{
	name:   "eq",
	arity:  2,
	color:  "#402E32",
	symbol: "⟷",
	label:  htmlOp("&harr;"),
}}

func Eq() Operator {
	return eqOp
}

type eqOperator struct {
	operator
}

func (o *eqOperator) Eval(l []bool) bool {
	return l[0] == l[1]
}

func (o *eqOperator) Render(f format.Format, a Args) (any, error) {
	if s, ok := infix(f, a, "===", "=="); ok {
		return s, nil
	}
	return binary(o, f, a, `\leftrightarrow`, "==", "&harr;")
}
