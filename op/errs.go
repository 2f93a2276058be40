package op

import (
	"errors"
	"fmt"

	"github.com/elogical/elogic/format"
)

var (
	ErrOperatorExists    = errors.New("operator exists")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrBadOperator       = errors.New("bad operator")
)

// UnsupportedFormatError reports a render request in a format an operator
// has no renderer for.
type UnsupportedFormatError struct {
	Operator string
	Format   format.Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: operator %q cannot render %s", ErrUnsupportedFormat, e.Operator, e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

func unsupported(o Operator, f format.Format) error {
	return &UnsupportedFormatError{Operator: o.Name(), Format: f}
}
