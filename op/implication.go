package op

import "github.com/elogical/elogic/format"

var implOp = &implOperator{operator{
	name:   "implication",
	arity:  2,
	color:  "#00745E",
	symbol: "→",
	label:  htmlOp("&rarr;"),
}}

func Implication() Operator {
	return implOp
}

type implOperator struct {
	operator
}

// Eval is false only for a true premise with a false conclusion.
func (o *implOperator) Eval(l []bool) bool {
	return !(l[0] && !l[1])
}

func (o *implOperator) Render(f format.Format, a Args) (any, error) {
	switch f {
	case format.TextFormat:
		return "!(" + a.S(0) + " && !" + a.S(1) + ")", nil
	case format.ANSIFormat:
		p := func(s string) string { return paint(a.Color, s) }
		return p("!(") + a.S(0) + " " + p("&&") + " " + p("!") + a.S(1) + p(")"), nil
	case format.ExprFormat:
		return "!((" + a.S(0) + ") && !(" + a.S(1) + "))", nil
	case format.PyFormat:
		return "not (" + a.S(0) + " and not " + a.S(1) + ")", nil
	}
	return binary(o, f, a, `\rightarrow`, "", "&rarr;")
}
