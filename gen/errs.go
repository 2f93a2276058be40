package gen

import "errors"

var (
	ErrNoVariables = errors.New("no variables")
	ErrNoOperators = errors.New("no allowed operator of arity > 0")
	ErrBadDepth    = errors.New("max depth out of range")
	ErrBadFillProb = errors.New("fill probability must be in [0, 1]")
)
