package tree

import (
	"testing"

	"github.com/elogical/elogic/op"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func textDiff(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, true)
	t.Errorf("text mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func TestDisplay(t *testing.T) {
	n := MustOp(op.Start(), vars2, MustOp(op.Not(), vars2, bin(op.And())))
	want := `(defn expression [v0 v1]
  (start
    (not
      (and
        v0
        v1
      )
    )
  )
)
`
	textDiff(t, want, Display(n, 2))
}

func TestDisplayLiteral(t *testing.T) {
	want := "(defn expression [x3]\n    x3\n)\n"
	textDiff(t, want, Display(lit("x3"), 4))
}
