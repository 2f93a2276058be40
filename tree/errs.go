package tree

import (
	"errors"
	"fmt"

	"github.com/elogical/elogic/op"
)

var (
	ErrInvalidLiteral    = errors.New("invalid literal")
	ErrArity             = errors.New("arity mismatch")
	ErrUnsupportedFormat = op.ErrUnsupportedFormat
)

type InvalidLiteralError struct {
	Name string
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("%s: %q must be a letter followed by digits", ErrInvalidLiteral, e.Name)
}

func (e *InvalidLiteralError) Is(target error) bool {
	return target == ErrInvalidLiteral
}
