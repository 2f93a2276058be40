package synth

import (
	"context"
	"fmt"
	"testing"

	"github.com/elogical/elogic/tree"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// circuit builds a gini circuit equivalent to a tree.
type circuit struct {
	c    *logic.C
	vars map[string]z.Lit
}

func newCircuit() *circuit {
	return &circuit{c: logic.NewC(), vars: map[string]z.Lit{}}
}

func (b *circuit) build(n tree.Node) z.Lit {
	switch x := n.(type) {
	case *tree.Literal:
		m, ok := b.vars[x.Name()]
		if !ok {
			m = b.c.Lit()
			b.vars[x.Name()] = m
		}
		return m
	case *tree.OpNode:
		args := make([]z.Lit, x.NumChildren())
		for i := range args {
			args[i] = b.build(x.Child(i))
		}
		switch x.Op().Name() {
		case "start", "parens":
			return args[0]
		case "True":
			return b.c.T
		case "False":
			return b.c.F
		case "not":
			return args[0].Not()
		case "and":
			return b.c.Ands(args...)
		case "or":
			return b.c.Ors(args...)
		case "implication":
			return b.c.Ors(args[0].Not(), args[1])
		case "xor":
			return b.xor(args[0], args[1])
		case "eq":
			return b.xor(args[0], args[1]).Not()
		}
	}
	panic(fmt.Sprintf("no circuit for %s", n))
}

func (b *circuit) xor(a, c z.Lit) z.Lit {
	return b.c.Ors(b.c.Ands(a, c.Not()), b.c.Ands(a.Not(), c))
}

// TestOracle checks every synthesized tree against an independent SAT
// solver: the formula is satisfiable and the returned row is a model.
func TestOracle(t *testing.T) {
	req := Request{SetSize: 2, MaxDepth: 3, Vars: []string{"v0", "v1", "v2"}}
	for seed := int64(0); seed < 100; seed++ {
		r, err := Synthesize(context.Background(), req, WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		b := newCircuit()
		f := b.build(r.Tree)
		g := gini.New()
		b.c.ToCnf(g)

		g.Assume(f)
		if g.Solve() != 1 {
			t.Fatalf("%s: solver says unsatisfiable", r.Tree)
		}

		assumed := []z.Lit{f}
		for i, name := range req.Vars {
			m, ok := b.vars[name]
			if !ok {
				continue
			}
			if !r.Solution[i] {
				m = m.Not()
			}
			assumed = append(assumed, m)
		}
		g.Assume(assumed...)
		if g.Solve() != 1 {
			t.Errorf("%s: %v is not a model", r.Tree, r.Solution)
		}
	}
}
