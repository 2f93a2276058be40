package synth

import (
	"errors"
	"fmt"
)

var ErrSynthesisTimeout = errors.New("synthesis timeout")

// SynthesisTimeoutError reports that no satisfiable tree was found within
// the attempt or time bound. Cause is the context error, if any.
type SynthesisTimeoutError struct {
	Attempts int
	Cause    error
}

func (e *SynthesisTimeoutError) Error() string {
	msg := fmt.Sprintf("no satisfiable expression after %d attempts", e.Attempts)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SynthesisTimeoutError) Is(target error) bool {
	return target == ErrSynthesisTimeout
}

func (e *SynthesisTimeoutError) Unwrap() error {
	return e.Cause
}
