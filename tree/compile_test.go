package tree

import (
	"testing"

	"github.com/elogical/elogic/op"
	"github.com/elogical/elogic/truth"
)

func TestCompileAgreesWithEval(t *testing.T) {
	vars := []string{"v0", "v1", "v2"}
	nodes := []Node{
		MustOp(op.Start(), vars, bin(op.Xor())),
		MustOp(op.Start(), vars, MustOp(op.Implication(), vars,
			MustOp(op.Parens(), vars, bin(op.Eq())),
			MustOp(op.Not(), vars, lit("v2")))),
		MustOp(op.Implication(), vars, bin(op.Or()), bin(op.And())),
		MustOp(op.Start(), vars, MustOp(op.Eq(), vars, MustOp(op.False(), nil), lit("v0"))),
		MustOp(op.Start(), nil, MustOp(op.True(), nil)),
	}
	rows, err := truth.Rows(len(vars))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range nodes {
		p, err := Compile(n)
		if err != nil {
			t.Fatalf("%s: %v", n, err)
		}
		for _, row := range rows {
			env := Named(truth.Env(vars, row))
			got, err := p.Eval(env)
			if err != nil {
				t.Fatalf("%s: %v", p.Source(), err)
			}
			if want := n.Eval(env); got != want {
				t.Errorf("%s under %v: program %v, tree %v", p.Source(), row, got, want)
			}
		}
	}
}
