package gen

import (
	"fmt"

	"github.com/elogical/elogic/debug"
	"github.com/elogical/elogic/op"
	"github.com/elogical/elogic/tree"
)

const DefaultFillProb = 1.0

// MaxTreeDepth bounds Config.MaxDepth. With a fill probability of 1 a tree
// has on the order of 2^MaxDepth nodes.
const MaxTreeDepth = 16

type Config struct {
	// MaxDepth is the generation depth at which only variables are
	// placed. The start node is at depth 0.
	MaxDepth int

	Vars []string

	// FillProb is the probability that a slot between the first level and
	// MaxDepth holds a connective rather than a variable.
	FillProb float64

	// Allowed names the operators that may appear. Unknown names and the
	// start and parens wrappers are ignored. Nil means
	// op.DefaultWhitelist().
	Allowed []string
}

func (c *Config) Validate() error {
	if len(c.Vars) == 0 {
		return ErrNoVariables
	}
	for _, v := range c.Vars {
		if !tree.IsLiteralName(v) {
			return &tree.InvalidLiteralError{Name: v}
		}
	}
	if c.MaxDepth < 2 || c.MaxDepth > MaxTreeDepth {
		return fmt.Errorf("%w: got %d, want 2 to %d", ErrBadDepth, c.MaxDepth, MaxTreeDepth)
	}
	if c.FillProb < 0 || c.FillProb > 1 {
		return fmt.Errorf("%w: got %g", ErrBadFillProb, c.FillProb)
	}
	return nil
}

// Generator draws trees from a Rand. It is not safe for concurrent use
// unless its Rand is.
type Generator struct {
	Rand Rand
}

func New(seed int64) *Generator {
	return &Generator{Rand: newRand(seed)}
}

// NewRandom returns a Generator seeded from crypto/rand.
func NewRandom() (*Generator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Generate returns a random tree rooted at a start node.
func (g *Generator) Generate(cfg Config) (tree.Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all, branching := candidates(cfg.Allowed)
	if len(branching) == 0 {
		return nil, ErrNoOperators
	}
	b := &builder{
		r:         g.Rand,
		cfg:       &cfg,
		all:       all,
		branching: branching,
		nVars:     distinct(cfg.Vars),
		used:      map[string]bool{},
	}
	n, err := b.build(0)
	if err != nil {
		return nil, err
	}
	if debug.Gen() {
		debug.Logf("gen depth=%d fill=%g vars=%v: %s\n", cfg.MaxDepth, cfg.FillProb, cfg.Vars, n)
	}
	return n, nil
}

// candidates returns the allowed connectives sorted by name, and the
// subset of them with arity > 0.
func candidates(allowed []string) (all, branching []op.Operator) {
	if allowed == nil {
		allowed = op.DefaultWhitelist()
	}
	set := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		set[name] = true
	}
	for _, o := range op.Connectives() {
		if !set[o.Name()] {
			continue
		}
		all = append(all, o)
		if o.Arity() > 0 {
			branching = append(branching, o)
		}
	}
	return all, branching
}

func distinct(vars []string) int {
	seen := map[string]bool{}
	for _, v := range vars {
		seen[v] = true
	}
	return len(seen)
}

type builder struct {
	r         Rand
	cfg       *Config
	all       []op.Operator
	branching []op.Operator
	nVars     int
	used      map[string]bool // variables placed directly under a connective
}

func (b *builder) build(depth int) (tree.Node, error) {
	switch {
	case depth >= b.cfg.MaxDepth:
		return b.literal()
	case depth == 0:
		child, err := b.build(1)
		if err != nil {
			return nil, err
		}
		return tree.NewOp(op.Start(), b.cfg.Vars, child)
	case depth == 1 || b.r.Float64() < b.cfg.FillProb:
		return b.connective(depth)
	default:
		return b.literal()
	}
}

func (b *builder) literal() (tree.Node, error) {
	return tree.NewLiteral(b.cfg.Vars[b.r.Intn(len(b.cfg.Vars))])
}

func (b *builder) connective(depth int) (tree.Node, error) {
	list := b.all
	if depth == 1 || len(b.used) < b.nVars {
		list = b.branching
	}
	o := list[b.r.Intn(len(list))]
	if debug.Gen() {
		debug.Logf("gen depth %d: %s\n", depth, o.Name())
	}
	children := make([]tree.Node, o.Arity())
	for i := range children {
		c, err := b.build(depth + 1)
		if err != nil {
			return nil, err
		}
		if l, ok := c.(*tree.Literal); ok {
			b.used[l.Name()] = true
		}
		children[i] = c
	}
	n, err := tree.NewOp(o, b.cfg.Vars, children...)
	if err != nil {
		return nil, err
	}
	if depth > 1 && o.Arity() > 1 {
		return tree.NewOp(op.Parens(), b.cfg.Vars, n)
	}
	return n, nil
}
