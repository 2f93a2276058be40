package synth

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/elogical/elogic/gen"
	"github.com/elogical/elogic/tree"
	"github.com/elogical/elogic/truth"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// zeros always picks the first candidate and always fills.
type zeros struct{}

func (zeros) Intn(int) int { return 0 }
func (zeros) Float64() float64 { return 0 }

func satisfied(t *testing.T, req Request, r *Result) {
	t.Helper()
	if len(r.Solution) != len(req.Vars) {
		t.Fatalf("solution %v has wrong length", r.Solution)
	}
	if !r.Tree.Eval(tree.Named(truth.Env(req.Vars, r.Solution))) {
		t.Fatalf("%s is false under %v", r.Tree, r.Solution)
	}
}

func TestSynthesizeSatisfies(t *testing.T) {
	ctx := context.Background()
	reqs := []Request{
		DefaultRequest(),
		{SetSize: 2, MaxDepth: 3, Vars: []string{"v0", "v1", "v2", "v3"}},
		{SetSize: 2, MaxDepth: 2, Vars: []string{"p", "q"}, Allowed: []string{"xor", "eq", "not"}},
		{SetSize: 4, MaxDepth: 2, Vars: []string{"v0", "v1"}, Allowed: []string{"implication", "False"}},
	}
	for _, req := range reqs {
		for seed := int64(0); seed < 50; seed++ {
			r, err := Synthesize(ctx, req, WithSeed(seed))
			if err != nil {
				t.Fatalf("%+v seed %d: %v", req, seed, err)
			}
			satisfied(t, req, r)
			if r.Attempts < 1 {
				t.Errorf("attempts = %d", r.Attempts)
			}
		}
	}
}

func TestSynthesizeScansLastRowFirst(t *testing.T) {
	req := Request{SetSize: 2, MaxDepth: 1, Vars: []string{"v0", "v1"}, Allowed: []string{"or", "and"}}
	for seed := int64(0); seed < 20; seed++ {
		r, err := Synthesize(context.Background(), req, WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(r.Solution, []bool{true, true}) {
			t.Errorf("%s: solution %v, want the all true row", r.Tree, r.Solution)
		}
	}
}

func TestSynthesizeMaxAttempts(t *testing.T) {
	// With the first candidate always chosen, the tree is
	// (v0 && v0) && false, which no row satisfies.
	req := Request{SetSize: 2, MaxDepth: 2, Vars: []string{"v0"}, Allowed: []string{"and", "False"}}
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	_, err := Synthesize(context.Background(), req,
		WithGenerator(&gen.Generator{Rand: zeros{}}),
		WithMaxAttempts(5),
		WithMetrics(m))
	if !errors.Is(err, ErrSynthesisTimeout) {
		t.Fatalf("got %v", err)
	}
	var te *SynthesisTimeoutError
	if !errors.As(err, &te) || te.Attempts != 5 || te.Cause != nil {
		t.Fatalf("got %#v", err)
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues(outcomeTimeout)); got != 1 {
		t.Errorf("timeout count = %g", got)
	}
}

func TestSynthesizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Synthesize(ctx, DefaultRequest(), WithSeed(1), WithMaxAttempts(0))
	if !errors.Is(err, ErrSynthesisTimeout) || !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestSynthesizeBadRequest(t *testing.T) {
	cases := []struct {
		req  Request
		want error
	}{
		{Request{SetSize: 1, MaxDepth: 1, Vars: []string{"v0"}}, truth.ErrBadBase},
		{Request{SetSize: 2, MaxDepth: 1}, gen.ErrNoVariables},
		{Request{SetSize: 2, MaxDepth: 0, Vars: []string{"v0"}}, gen.ErrBadDepth},
		{Request{SetSize: 2, MaxDepth: 1, Vars: []string{"v0"}, Allowed: []string{"True"}}, gen.ErrNoOperators},
	}
	for _, c := range cases {
		if _, err := Synthesize(context.Background(), c.req, WithSeed(0)); !errors.Is(err, c.want) {
			t.Errorf("%+v: got %v, want %v", c.req, err, c.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	for seed := int64(0); seed < 3; seed++ {
		if _, err := Synthesize(context.Background(), DefaultRequest(), WithSeed(seed), WithMetrics(m)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := Synthesize(context.Background(), Request{}, WithMetrics(m)); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues(outcomeOK)); got != 3 {
		t.Errorf("ok = %g", got)
	}
	if got := testutil.ToFloat64(m.results.WithLabelValues(outcomeError)); got != 1 {
		t.Errorf("error = %g", got)
	}
	if n := testutil.CollectAndCount(m.attempts); n != 1 {
		t.Errorf("attempts collected %d series", n)
	}
}

func TestNilMetrics(t *testing.T) {
	if _, err := Synthesize(context.Background(), DefaultRequest(), WithSeed(9), WithMetrics(nil)); err != nil {
		t.Fatal(err)
	}
}

func TestBatch(t *testing.T) {
	req := Request{SetSize: 2, MaxDepth: 2, Vars: []string{"v0", "v1", "v2"}}
	a, err := Batch(context.Background(), 16, req, WithSeed(100))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Batch(context.Background(), 16, req, WithSeed(100))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		satisfied(t, req, a[i])
		if a[i].Tree.String() != b[i].Tree.String() {
			t.Errorf("%d: %s != %s", i, a[i].Tree, b[i].Tree)
		}
	}
	if _, err := Batch(context.Background(), 4, Request{SetSize: 2, MaxDepth: 1}); !errors.Is(err, gen.ErrNoVariables) {
		t.Errorf("got %v", err)
	}
	r, err := Batch(context.Background(), 3, req)
	if err != nil || len(r) != 3 {
		t.Fatalf("got %v %v", r, err)
	}
}
