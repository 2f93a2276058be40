package synth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/elogical/elogic/debug"
	"github.com/elogical/elogic/gen"
	"github.com/elogical/elogic/op"
	"github.com/elogical/elogic/tree"
	"github.com/elogical/elogic/truth"
)

// Request describes the puzzle to synthesize.
type Request struct {
	SetSize  int      `json:"setSize" yaml:"setSize"`
	MaxDepth int      `json:"maxDepth" yaml:"maxDepth"`
	Vars     []string `json:"vars" yaml:"vars"`
	Allowed  []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

// DefaultRequest returns the request used by the game when nothing is
// configured.
func DefaultRequest() Request {
	return Request{
		SetSize:  2,
		MaxDepth: 1,
		Vars:     []string{"v0", "v1", "v2"},
		Allowed:  op.DefaultWhitelist(),
	}
}

type Result struct {
	Tree tree.Node

	// Solution is a row of the truth table, positionally aligned with the
	// request variables, under which Tree is true.
	Solution []bool

	Attempts int
}

// Synthesize generates trees of depth req.MaxDepth below the start node
// until one is satisfied by a row of the truth table, scanning rows from
// last to first.
func Synthesize(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()
	res, err := synthesize(ctx, req, o)
	switch {
	case err == nil:
		o.metrics.observe(outcomeOK, res.Attempts, start)
	case errors.Is(err, ErrSynthesisTimeout):
		var te *SynthesisTimeoutError
		errors.As(err, &te)
		o.metrics.observe(outcomeTimeout, te.Attempts, start)
	default:
		o.metrics.observe(outcomeError, 0, start)
	}
	return res, err
}

func synthesize(ctx context.Context, req Request, o *synthOpts) (*Result, error) {
	cfg := gen.Config{
		MaxDepth: req.MaxDepth + 1,
		Vars:     req.Vars,
		FillProb: o.fillProb,
		Allowed:  req.Allowed,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	table, err := truth.Table(req.SetSize, len(req.Vars))
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	g := o.gen
	if g == nil {
		g, err = gen.NewRandom()
		if err != nil {
			return nil, err
		}
	}
	attempts := 0
	for {
		if o.maxAttempts > 0 && attempts >= o.maxAttempts {
			return nil, &SynthesisTimeoutError{Attempts: attempts}
		}
		if err := ctx.Err(); err != nil {
			return nil, &SynthesisTimeoutError{Attempts: attempts, Cause: err}
		}
		attempts++
		n, err := g.Generate(cfg)
		if err != nil {
			return nil, fmt.Errorf("synthesize: %w", err)
		}
		for i := len(table) - 1; i >= 0; i-- {
			row := table[i]
			if !n.Eval(tree.Named(truth.Env(req.Vars, row))) {
				continue
			}
			if debug.Synth() {
				debug.Logf("synth attempt %d: %s solved by row %d %v\n", attempts, n, i, row)
			}
			return &Result{Tree: n, Solution: slices.Clone(row), Attempts: attempts}, nil
		}
		if debug.Synth() {
			debug.Logf("synth attempt %d: %s unsatisfiable\n", attempts, n)
		}
	}
}
