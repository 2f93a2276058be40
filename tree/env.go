package tree

import "strconv"

// Env assigns truth values to variable names.
type Env interface {
	Lookup(name string) bool
}

// Positional assigns the i'th entry to the variable "v<i>".
type Positional []bool

func (p Positional) Lookup(name string) bool {
	if len(name) < 2 || name[0] != 'v' {
		return false
	}
	i, err := strconv.Atoi(name[1:])
	if err != nil || i < 0 || i >= len(p) || name != "v"+strconv.Itoa(i) {
		return false
	}
	return p[i]
}

// Named assigns values by name.
type Named map[string]bool

func (n Named) Lookup(name string) bool {
	return n[name]
}
