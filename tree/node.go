package tree

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/elogical/elogic/format"
	"github.com/elogical/elogic/op"
)

var literalPattern = regexp.MustCompile(`^[a-zA-Z]\d*$`)

type Node interface {
	fmt.Stringer
	Eval(env Env) bool
	Render(f format.Format) (any, error)
	Children() []Node

	renderAt(f format.Format, depth int) (any, error)
}

type OpNode struct {
	op       op.Operator
	children []Node
	vars     []string
}

// NewOp applies o to children. vars is the free variable list of the
// expression the node belongs to.
func NewOp(o op.Operator, vars []string, children ...Node) (*OpNode, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil operator", ErrArity)
	}
	if len(children) != o.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d children, got %d", ErrArity, o.Name(), o.Arity(), len(children))
	}
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: %s child %d is nil", ErrArity, o.Name(), i)
		}
	}
	return &OpNode{
		op:       o,
		children: slices.Clone(children),
		vars:     slices.Clone(vars),
	}, nil
}

// MustOp is NewOp for arguments known to be valid.
func MustOp(o op.Operator, vars []string, children ...Node) *OpNode {
	n, err := NewOp(o, vars, children...)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *OpNode) Op() op.Operator { return n.op }
func (n *OpNode) Vars() []string { return slices.Clone(n.vars) }
func (n *OpNode) Children() []Node { return slices.Clone(n.children) }
func (n *OpNode) Child(i int) Node { return n.children[i] }
func (n *OpNode) NumChildren() int { return len(n.children) }
func (n *OpNode) IsWrapper() bool { return n.op.Wrapper() }
func (n *OpNode) String() string { return stringOf(n) }
func (n *OpNode) Render(f format.Format) (any, error) {
	return Render(n, f)
}

func (n *OpNode) Eval(env Env) bool {
	results := make([]bool, len(n.children))
	for i, c := range n.children {
		results[i] = c.Eval(env)
	}
	return n.op.Eval(results)
}

type Literal struct {
	name string
}

func NewLiteral(name string) (*Literal, error) {
	if !literalPattern.MatchString(name) {
		return nil, &InvalidLiteralError{Name: name}
	}
	return &Literal{name: name}, nil
}

func MustLiteral(name string) *Literal {
	l, err := NewLiteral(name)
	if err != nil {
		panic(err)
	}
	return l
}

// IsLiteralName reports whether name is a valid variable name.
func IsLiteralName(name string) bool {
	return literalPattern.MatchString(name)
}

func (l *Literal) Name() string { return l.name }
func (l *Literal) Children() []Node { return nil }
func (l *Literal) String() string { return l.name }
func (l *Literal) Render(f format.Format) (any, error) {
	return Render(l, f)
}

// Eval looks the variable up in env. Unknown variables are false.
func (l *Literal) Eval(env Env) bool {
	if env == nil {
		return false
	}
	return env.Lookup(l.name)
}

func stringOf(n Node) string {
	s, err := RenderString(n, format.TextFormat)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}
