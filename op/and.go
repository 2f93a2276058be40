package op

import "github.com/elogical/elogic/format"

var andOp = &andOperator{operator{
	name:   "and",
	arity:  2,
	color:  "#7cb24a",
	symbol: "∧",
	label:  htmlOp("&and;"),
}}

func And() Operator {
	return andOp
}

type andOperator struct {
	operator
}

func (o *andOperator) Eval(l []bool) bool {
	return l[0] && l[1]
}

func (o *andOperator) Render(f format.Format, a Args) (any, error) {
	if s, ok := infix(f, a, "&&", "&&"); ok {
		return s, nil
	}
	return binary(o, f, a, `\wedge`, "and", "&and;")
}
