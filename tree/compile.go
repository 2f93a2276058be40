package tree

import (
	"fmt"

	"github.com/elogical/elogic/format"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is a tree compiled to an expr-lang program. It evaluates the
// same function as the tree through an independent evaluator.
type Program struct {
	prog   *vm.Program
	source string
	vars   []string
}

func Compile(n Node) (*Program, error) {
	src, err := RenderString(n, format.ExprFormat)
	if err != nil {
		return nil, err
	}
	vars := Vars(n)
	env := make(map[string]any, len(vars))
	for _, v := range vars {
		env[v] = false
	}
	prog, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Program{prog: prog, source: src, vars: vars}, nil
}

func (p *Program) Source() string {
	return p.source
}

// Eval runs the program. Variables missing from env are false.
func (p *Program) Eval(env Env) (bool, error) {
	m := make(map[string]any, len(p.vars))
	for _, v := range p.vars {
		m[v] = env != nil && env.Lookup(v)
	}
	out, err := expr.Run(p.prog, m)
	if err != nil {
		return false, fmt.Errorf("run %q: %w", p.source, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("run %q: got %T, want bool", p.source, out)
	}
	return b, nil
}
