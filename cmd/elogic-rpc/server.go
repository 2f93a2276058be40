package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/debug"
	"github.com/elogical/elogic/format"
	"github.com/elogical/elogic/op"
	"github.com/elogical/elogic/puzzle"
	"github.com/elogical/elogic/synth"
	"github.com/elogical/elogic/truth"

	"github.com/google/uuid"
	"go.lsp.dev/jsonrpc2"
)

const (
	MethodPuzzleNew   = "puzzle.new"
	MethodPuzzleGrade = "puzzle.grade"
	MethodTable       = "table"
	MethodOperators   = "operators"
)

// maxPuzzles bounds the puzzles kept for grading. The oldest is dropped
// first.
const maxPuzzles = 1024

var errUnknownPuzzle = errors.New("unknown puzzle")

type Server struct {
	cfg     config.Config
	metrics *synth.Metrics

	mu      sync.Mutex
	puzzles map[uuid.UUID]*puzzle.Puzzle
	order   []uuid.UUID
}

func NewServer(cfg config.Config, m *synth.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		metrics: m,
		puzzles: map[uuid.UUID]*puzzle.Puzzle{},
	}
}

func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if debug.RPC() {
			debug.Logf("%s <- %s %s\n", serverName, req.Method(), req.Params())
		}
		var (
			res any
			err error
		)
		switch req.Method() {
		case MethodPuzzleNew:
			res, err = s.newPuzzle(ctx, req.Params())
		case MethodPuzzleGrade:
			res, err = s.grade(req.Params())
		case MethodTable:
			res, err = s.table(req.Params())
		case MethodOperators:
			res = operators()
		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
		if err != nil {
			if debug.RPC() {
				debug.Logf("%s -> %s error: %v\n", serverName, req.Method(), err)
			}
			return reply(ctx, nil, rpcError(err))
		}
		return reply(ctx, res, nil)
	}
}

func rpcError(err error) error {
	switch {
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, puzzle.ErrAnswerLength),
		errors.Is(err, errUnknownPuzzle),
		errors.Is(err, format.ErrBadFormat),
		errors.Is(err, truth.ErrBadBase),
		errors.Is(err, truth.ErrBadArity),
		errors.Is(err, truth.ErrTooLarge),
		errors.Is(err, errBadParams):
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	default:
		return jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
	}
}

var errBadParams = errors.New("bad params")

func decode(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("%w: %w", errBadParams, err)
	}
	return nil
}

type NewPuzzleParams struct {
	Level     *int     `json:"level,omitempty"`
	SetSize   int      `json:"setSize,omitempty"`
	MaxDepth  int      `json:"maxDepth,omitempty"`
	Vars      []string `json:"vars,omitempty"`
	Operators []string `json:"operators,omitempty"`
	Seed      int64    `json:"seed,omitempty"`
	Formats   []string `json:"formats,omitempty"`
}

func (p *NewPuzzleParams) config(base config.Config) config.Config {
	c := base
	if p.Level != nil {
		l := config.ForLevel(*p.Level)
		c.MaxDepth = l.MaxDepth
		c.Vars = l.Vars
	}
	if p.SetSize != 0 {
		c.SetSize = p.SetSize
	}
	if p.MaxDepth != 0 {
		c.MaxDepth = p.MaxDepth
	}
	if len(p.Vars) != 0 {
		c.Vars = p.Vars
	}
	if len(p.Operators) != 0 {
		c.Operators = p.Operators
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	return c
}

func (s *Server) newPuzzle(ctx context.Context, raw json.RawMessage) (*puzzle.Snapshot, error) {
	params := &NewPuzzleParams{}
	if err := decode(raw, params); err != nil {
		return nil, err
	}
	formats := make([]format.Format, len(params.Formats))
	for i, name := range params.Formats {
		f, err := format.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats[i] = f
	}
	p, err := puzzle.New(ctx, params.config(s.cfg), synth.WithMetrics(s.metrics))
	if err != nil {
		return nil, err
	}
	if params.Level != nil {
		p.Level = min(max(*params.Level, 0), config.MaxLevel)
	}
	snap, err := p.Snapshot(formats...)
	if err != nil {
		return nil, err
	}
	s.keep(p)
	return snap, nil
}

func (s *Server) keep(p *puzzle.Puzzle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[p.ID] = p
	s.order = append(s.order, p.ID)
	if len(s.order) > maxPuzzles {
		delete(s.puzzles, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *Server) lookup(id uuid.UUID) *puzzle.Puzzle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puzzles[id]
}

type GradeParams struct {
	ID     string `json:"id"`
	Answer []bool `json:"answer"`
}

func (s *Server) grade(raw json.RawMessage) (*puzzle.Grade, error) {
	params := &GradeParams{}
	if err := decode(raw, params); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(params.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q: %w", errBadParams, params.ID, err)
	}
	p := s.lookup(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", errUnknownPuzzle, id)
	}
	return p.Grade(params.Answer)
}

type TableParams struct {
	Vars int `json:"vars"`
	Base int `json:"base,omitempty"`
}

type TableResult struct {
	Vars []string `json:"vars"`
	Rows [][]bool `json:"rows"`
}

func (s *Server) table(raw json.RawMessage) (*TableResult, error) {
	params := &TableParams{Base: 2}
	if err := decode(raw, params); err != nil {
		return nil, err
	}
	rows, err := truth.Table(params.Base, params.Vars)
	if err != nil {
		return nil, err
	}
	return &TableResult{Vars: config.VarNames(params.Vars), Rows: rows}, nil
}

type OperatorInfo struct {
	Name    string `json:"name"`
	Arity   int    `json:"arity"`
	Symbol  string `json:"symbol"`
	Label   string `json:"label"`
	Color   string `json:"color,omitempty"`
	Wrapper bool   `json:"wrapper,omitempty"`
}

func operators() []OperatorInfo {
	ops := op.Operators()
	res := make([]OperatorInfo, len(ops))
	for i, o := range ops {
		res[i] = OperatorInfo{
			Name:    o.Name(),
			Arity:   o.Arity(),
			Symbol:  o.Symbol(),
			Label:   o.Label(),
			Color:   o.Color(),
			Wrapper: o.Wrapper(),
		}
	}
	return res
}
