package op

import "github.com/elogical/elogic/format"

var orOp = &orOperator{operator{
	name:   "or",
	arity:  2,
	color:  "#1b95af",
	symbol: "∨",
	label:  htmlOp("&or;"),
}}

func Or() Operator {
	return orOp
}

type orOperator struct {
	operator
}

func (o *orOperator) Eval(l []bool) bool {
	return l[0] || l[1]
}

func (o *orOperator) Render(f format.Format, a Args) (any, error) {
	if s, ok := infix(f, a, "||", "||"); ok {
		return s, nil
	}
	return binary(o, f, a, `\vee`, "or", "&or;")
}
