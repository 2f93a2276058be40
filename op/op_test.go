package op

import (
	"errors"
	"strings"
	"testing"

	"github.com/elogical/elogic/format"
	"github.com/google/go-cmp/cmp"
)

type evalTest struct {
	op   Operator
	rule func(a, b bool) bool
}

func TestEvalTruthTables(t *testing.T) {
	tests := []evalTest{
		{And(), func(a, b bool) bool { return a && b }},
		{Or(), func(a, b bool) bool { return a || b }},
		{Xor(), func(a, b bool) bool { return a != b }},
		{Implication(), func(a, b bool) bool { return !(a && !b) }},
		{Eq(), func(a, b bool) bool { return a == b }},
	}
	bools := []bool{false, true}
	for _, tt := range tests {
		for _, a := range bools {
			for _, b := range bools {
				got := tt.op.Eval([]bool{a, b})
				if want := tt.rule(a, b); got != want {
					t.Errorf("%s(%v, %v) = %v, want %v", tt.op.Name(), a, b, got, want)
				}
			}
		}
	}
	for _, a := range bools {
		if Not().Eval([]bool{a}) != !a {
			t.Errorf("not(%v) wrong", a)
		}
		if Start().Eval([]bool{a}) != a || Parens().Eval([]bool{a}) != a {
			t.Errorf("wrappers must pass %v through", a)
		}
	}
	if !True().Eval(nil) || False().Eval(nil) {
		t.Errorf("constants wrong")
	}
}

func argsFor(o Operator, f format.Format) Args {
	a := Args{Vars: []string{"v0", "v1"}, Color: o.Color()}
	for i := 0; i < o.Arity(); i++ {
		name := []string{"v0", "v1"}[i]
		if f == format.ArrayFormat || f == format.ObjFormat {
			a.L = append(a.L, any(name))
			continue
		}
		a.L = append(a.L, name)
	}
	return a
}

func TestEveryOperatorRendersEveryFormat(t *testing.T) {
	for _, o := range Operators() {
		for _, f := range format.AllFormats() {
			v, err := o.Render(f, argsFor(o, f))
			if err != nil {
				t.Errorf("%s/%s: %v", o.Name(), f, err)
				continue
			}
			if f.IsString() {
				if _, ok := v.(string); !ok {
					t.Errorf("%s/%s: got %T, want string", o.Name(), f, v)
				}
			}
		}
	}
}

func TestRenderText(t *testing.T) {
	tests := map[Operator]string{
		And():         "v0 && v1",
		Or():          "v0 || v1",
		Xor():         "v0 !== v1",
		Implication(): "!(v0 && !v1)",
		Eq():          "v0 === v1",
		Not():         "!(v0)",
		True():        "true",
		False():       "false",
		Parens():      "(v0)",
		Start():       "v0",
	}
	for o, want := range tests {
		got, err := o.Render(format.TextFormat, argsFor(o, format.TextFormat))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: got %q, want %q", o.Name(), got, want)
		}
	}
}

func TestRenderTex(t *testing.T) {
	got, err := And().Render(format.TexFormat, argsFor(And(), format.TexFormat))
	if err != nil {
		t.Fatal(err)
	}
	if want := `\textcolor{#7cb24a}{v0 \wedge v1}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got, _ = True().Render(format.TexFormat, Args{})
	if got != "1" {
		t.Errorf("uncolored constant: got %q", got)
	}
}

func TestRenderPy(t *testing.T) {
	got, _ := Start().Render(format.PyFormat, Args{L: []any{"v0 and v1"}, Vars: []string{"v0", "v1"}})
	if want := "lambda v0, v1: v0 and v1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got, _ = Implication().Render(format.PyFormat, argsFor(Implication(), format.PyFormat))
	if want := "not (v0 and not v1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderStructured(t *testing.T) {
	got, _ := Or().Render(format.ObjFormat, argsFor(Or(), format.ObjFormat))
	want := Object{Name: "∨", Children: []any{"v0", "v1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("obj (-want +got):\n%s", diff)
	}
	arr, _ := Not().Render(format.ArrayFormat, argsFor(Not(), format.ArrayFormat))
	if diff := cmp.Diff([]any{"not", []any{"v0"}}, arr); diff != "" {
		t.Errorf("array (-want +got):\n%s", diff)
	}
	arr, _ = Parens().Render(format.ArrayFormat, argsFor(Parens(), format.ArrayFormat))
	if diff := cmp.Diff([]any{"v0"}, arr); diff != "" {
		t.Errorf("parens array must be transparent (-want +got):\n%s", diff)
	}
}

func TestRenderANSI(t *testing.T) {
	got, _ := And().Render(format.ANSIFormat, argsFor(And(), format.ANSIFormat))
	s := got.(string)
	if !strings.HasPrefix(s, "v0 ") || !strings.HasSuffix(s, " v1") {
		t.Errorf("operands must stay unpainted: %q", s)
	}
	if !strings.Contains(s, "\x1b[") || !strings.Contains(s, "&&") {
		t.Errorf("operator token must be painted: %q", s)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := And().Render(format.Format(99), argsFor(And(), format.TextFormat))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) || ufe.Operator != "and" {
		t.Fatalf("got %#v", err)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range DefaultWhitelist() {
		if Lookup(name) == nil {
			t.Errorf("%s not registered", name)
		}
	}
	if Lookup("nand") != nil {
		t.Errorf("unexpected operator")
	}
	if err := Register(And()); !errors.Is(err, ErrOperatorExists) {
		t.Errorf("got %v, want ErrOperatorExists", err)
	}
	names := Names()
	if len(names) != 10 {
		t.Fatalf("got %d operators: %v", len(names), names)
	}
	if names[0] != "False" || names[len(names)-1] != "xor" {
		t.Errorf("names not sorted: %v", names)
	}
	for _, o := range Connectives() {
		if o.Wrapper() {
			t.Errorf("%s is a wrapper", o.Name())
		}
	}
}

type badOperator struct{ operator }

func (badOperator) Eval([]bool) bool { return false }
func (badOperator) Render(format.Format, Args) (any, error) {
	return nil, nil
}

func TestRegisterRejects(t *testing.T) {
	for _, o := range []Operator{
		badOperator{operator{name: ""}},
		badOperator{operator{name: "a b"}},
		badOperator{operator{name: "neg", arity: -1}},
		badOperator{operator{name: "wrap", arity: 2, wrapper: true}},
	} {
		if err := Register(o); !errors.Is(err, ErrBadOperator) {
			t.Errorf("Register(%q) = %v, want ErrBadOperator", o.Name(), err)
		}
	}
}
