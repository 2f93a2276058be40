package op

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Operator{}
)

func Register(o Operator) error {
	key := o.Name()
	if key == "" || strings.ContainsAny(key, " \t,") {
		return fmt.Errorf("%w: invalid name %q", ErrBadOperator, key)
	}
	if o.Arity() < 0 {
		return fmt.Errorf("%w: %s has negative arity", ErrBadOperator, key)
	}
	if o.Wrapper() && o.Arity() != 1 {
		return fmt.Errorf("%w: wrapper %s must have arity 1", ErrBadOperator, key)
	}
	mu.Lock()
	defer mu.Unlock()
	_, present := d[key]
	if present {
		return fmt.Errorf("%s: %w", key, ErrOperatorExists)
	}
	d[key] = o
	return nil
}

func init() {
	Register(And())
	Register(Or())
	Register(Not())
	Register(Xor())
	Register(Implication())
	Register(Eq())
	Register(True())
	Register(False())
	Register(Start())
	Register(Parens())
}

// Lookup returns the operator registered under name, or nil.
func Lookup(name string) Operator {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Operators returns every registered operator sorted by name.
func Operators() []Operator {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Operator, 0, len(d))
	for _, o := range d {
		res = append(res, o)
	}
	slices.SortFunc(res, func(a, b Operator) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return res
}

func Names() []string {
	ops := Operators()
	res := make([]string, len(ops))
	for i, o := range ops {
		res[i] = o.Name()
	}
	return res
}

// DefaultWhitelist is the operator set puzzles are generated from when the
// caller does not restrict it. It contains or and True, so generated
// expressions are satisfiable with overwhelming probability.
func DefaultWhitelist() []string {
	return []string{
		Or().Name(),
		Not().Name(),
		And().Name(),
		True().Name(),
		Xor().Name(),
		Implication().Name(),
		False().Name(),
		Eq().Name(),
		Start().Name(),
		Parens().Name(),
	}
}

// Connectives returns the registered operators that are not wrappers.
func Connectives() []Operator {
	return slices.DeleteFunc(Operators(), Operator.Wrapper)
}
