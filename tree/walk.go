package tree

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	if o, ok := n.(*OpNode); ok {
		for _, c := range o.children {
			walk(c, depth+1, fn)
		}
	}
}

// Vars returns the distinct variable names referenced by n in order of
// first appearance.
func Vars(n Node) []string {
	seen := map[string]bool{}
	var res []string
	Walk(n, func(n Node, _ int) bool {
		if l, ok := n.(*Literal); ok && !seen[l.name] {
			seen[l.name] = true
			res = append(res, l.name)
		}
		return true
	})
	return res
}

// Depth is the number of nodes on the longest path from n to a leaf.
func Depth(n Node) int {
	res := 0
	Walk(n, func(_ Node, d int) bool {
		res = max(res, d+1)
		return true
	})
	return res
}

// Size is the number of nodes in n.
func Size(n Node) int {
	res := 0
	Walk(n, func(Node, int) bool {
		res++
		return true
	})
	return res
}

// Unwrap strips start and parens wrappers from the top of n.
func Unwrap(n Node) Node {
	for {
		o, ok := n.(*OpNode)
		if !ok || !o.op.Wrapper() {
			return n
		}
		n = o.children[0]
	}
}
