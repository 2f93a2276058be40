package tree

import (
	"fmt"

	"github.com/elogical/elogic/format"
)

// Ops lists the operators of n from the outside in, in pre-order, with
// variables left out. Wrappers (start, parens) do not appear and the
// constants appear as "true" and "false".
//
//	Ops(not(and(v0, v1))) == []string{"not", "and"}
func Ops(n Node) ([]string, error) {
	v, err := Render(n, format.ArrayFormat)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, tok := range flatten(v, nil) {
		if IsLiteralName(tok) {
			continue
		}
		res = append(res, tok)
	}
	return res, nil
}

func flatten(v any, dst []string) []string {
	switch x := v.(type) {
	case []any:
		for _, e := range x {
			dst = flatten(e, dst)
		}
	case string:
		dst = append(dst, x)
	case nil:
	default:
		dst = append(dst, fmt.Sprint(x))
	}
	return dst
}
