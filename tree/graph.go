package tree

const defaultGraphColor = "#000000"

type GraphNode struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

type GraphEdge struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// GraphLeaf is a distinct variable of the graph.
type GraphLeaf struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

type Graph struct {
	Nodes  []GraphNode `json:"nodes" yaml:"nodes"`
	Edges  []GraphEdge `json:"edges" yaml:"edges"`
	Leaves []GraphLeaf `json:"leaves" yaml:"leaves"`
}

const (
	OperatorKind = "operator"
	LiteralKind  = "literal"
)

// ToGraph projects n into a node/edge list for diagrams.
//
// start and parens wrappers are elided. Ids are assigned in pre-order from
// 0, every node but the root has exactly one incoming edge. Operators are
// colored with their own color; literals and constants take the color of
// the operator they are an argument of. Leaves lists each variable once,
// in order of first appearance.
func ToGraph(n Node) Graph {
	g := &grapher{
		inherited: map[int]string{},
		seen:      map[string]bool{},
	}
	g.visit(n, 0, "")
	return g.res
}

type grapher struct {
	res       Graph
	next      int
	inherited map[int]string // node id -> color of the enclosing operator
	seen      map[string]bool
}

func (g *grapher) visit(n Node, id int, parentColor string) {
	n = Unwrap(n)
	g.inherited[id] = parentColor
	switch x := n.(type) {
	case *Literal:
		color := orDefault(g.inherited[id])
		label := x.html()
		g.res.Nodes = append(g.res.Nodes, GraphNode{
			ID:    id,
			Label: label,
			Kind:  LiteralKind,
			Name:  x.name,
			Color: color,
		})
		if !g.seen[x.name] {
			g.seen[x.name] = true
			g.res.Leaves = append(g.res.Leaves, GraphLeaf{Name: x.name, Label: label, Color: color})
		}
	case *OpNode:
		color := x.op.Color()
		if x.op.Arity() == 0 {
			color = g.inherited[id]
		}
		g.res.Nodes = append(g.res.Nodes, GraphNode{
			ID:    id,
			Label: x.op.Label(),
			Kind:  OperatorKind,
			Name:  x.op.Name(),
			Color: orDefault(color),
		})
		for _, c := range x.children {
			g.next++
			cid := g.next
			g.res.Edges = append(g.res.Edges, GraphEdge{From: id, To: cid})
			g.visit(c, cid, x.op.Color())
		}
	}
}

func orDefault(color string) string {
	if color == "" {
		return defaultGraphColor
	}
	return color
}
