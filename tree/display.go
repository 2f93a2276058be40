package tree

import (
	"strings"
)

// Display returns an indented dump of n:
//
//	(defn expression [v0 v1]
//	  (start
//	    (and
//	      v0
//	      v1
//	    )
//	  )
//	)
func Display(n Node, indent int) string {
	vars := Vars(n)
	if o, ok := n.(*OpNode); ok && len(o.vars) != 0 {
		vars = o.vars
	}
	b := &strings.Builder{}
	b.WriteString("(defn expression [" + strings.Join(vars, " ") + "]\n")
	display(b, n, 1, indent)
	b.WriteString(")\n")
	return b.String()
}

func display(b *strings.Builder, n Node, depth, indent int) {
	space := strings.Repeat(" ", depth*indent)
	switch x := n.(type) {
	case *Literal:
		b.WriteString(space + x.name + "\n")
	case *OpNode:
		b.WriteString(space + "(" + x.op.Name() + "\n")
		for _, c := range x.children {
			display(b, c, depth+1, indent)
		}
		b.WriteString(space + ")\n")
	}
}
