// Package puzzle is what a game asks for: a satisfiable expression with
// an identity, a known solution and the means to grade an answer.
package puzzle

import (
	"context"
	"errors"
	"fmt"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/synth"
	"github.com/elogical/elogic/tree"
	"github.com/elogical/elogic/truth"

	"github.com/google/uuid"
)

var ErrAnswerLength = errors.New("answer length does not match variables")

type Puzzle struct {
	ID uuid.UUID

	// Level is the difficulty level the puzzle was made for, 0 when it
	// was made from an explicit config.
	Level int

	// Difficulty is the depth of the expression below its root, at least 1.
	Difficulty int

	Vars     []string
	Tree     tree.Node
	Solution []bool
	Attempts int
}

// New synthesizes a puzzle from cfg. opts are applied after the options
// derived from cfg.
func New(ctx context.Context, cfg config.Config, opts ...synth.Option) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := cfg.Context(ctx)
	defer cancel()
	req := cfg.Request()
	res, err := synth.Synthesize(ctx, req, append(cfg.SynthOptions(), opts...)...)
	if err != nil {
		return nil, err
	}
	return FromResult(req, res), nil
}

// NewLevel synthesizes a puzzle for a difficulty level.
func NewLevel(ctx context.Context, level int, opts ...synth.Option) (*Puzzle, error) {
	p, err := New(ctx, config.ForLevel(level), opts...)
	if err != nil {
		return nil, err
	}
	p.Level = min(max(level, 0), config.MaxLevel)
	return p, nil
}

// Batch synthesizes n puzzles concurrently.
func Batch(ctx context.Context, n int, cfg config.Config, opts ...synth.Option) ([]*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := cfg.Context(ctx)
	defer cancel()
	req := cfg.Request()
	results, err := synth.Batch(ctx, n, req, append(cfg.SynthOptions(), opts...)...)
	if err != nil {
		return nil, err
	}
	res := make([]*Puzzle, len(results))
	for i, r := range results {
		res[i] = FromResult(req, r)
	}
	return res, nil
}

func FromResult(req synth.Request, r *synth.Result) *Puzzle {
	return &Puzzle{
		ID:         uuid.New(),
		Difficulty: req.MaxDepth,
		Vars:       req.Vars,
		Tree:       r.Tree,
		Solution:   r.Solution,
		Attempts:   r.Attempts,
	}
}

// Grade is the outcome of an answer, in the shape the scoring side
// records it.
type Grade struct {
	PuzzleID uuid.UUID `json:"puzzleId" yaml:"puzzleId"`
	Correct  bool      `json:"correct" yaml:"correct"`

	// MatchesSolution reports whether the answer is the stored solution.
	// A correct answer may be another satisfying row.
	MatchesSolution bool `json:"matchesSolution" yaml:"matchesSolution"`

	Answer     []bool   `json:"answer" yaml:"answer"`
	Solution   []bool   `json:"solution" yaml:"solution"`
	Ops        []string `json:"ops" yaml:"ops"`
	Level      int      `json:"level" yaml:"level"`
	Difficulty int      `json:"difficulty" yaml:"difficulty"`
}

// Grade evaluates the expression under answer, positionally aligned
// with p.Vars.
func (p *Puzzle) Grade(answer []bool) (*Grade, error) {
	if len(answer) != len(p.Vars) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAnswerLength, len(answer), len(p.Vars))
	}
	ops, err := tree.Ops(p.Tree)
	if err != nil {
		return nil, err
	}
	matches := true
	for i := range answer {
		if answer[i] != p.Solution[i] {
			matches = false
			break
		}
	}
	return &Grade{
		PuzzleID:        p.ID,
		Correct:         p.Tree.Eval(tree.Named(truth.Env(p.Vars, answer))),
		MatchesSolution: matches,
		Answer:          answer,
		Solution:        p.Solution,
		Ops:             ops,
		Level:           p.Level,
		Difficulty:      p.Difficulty,
	}, nil
}
