package main

import (
	"errors"
	"testing"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/format"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParseAnswer(t *testing.T) {
	cases := map[string][]bool{
		"101":          {true, false, true},
		"1,0,1":        {true, false, true},
		"1 0":          {true, false},
		"t,F,true":     {true, false, true},
		"0":            {false},
		"false, true ": {false, true},
	}
	for in, want := range cases {
		got, err := parseAnswer(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", in, diff)
		}
	}
	for _, in := range []string{"", "102", "yes", ","} {
		if _, err := parseAnswer(in); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestGenApply(t *testing.T) {
	level := 6
	g := &GenConfig{Vars: 2, Ops: "and,or", Seed: 4, Level: &level}
	got, err := g.apply(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default()
	want.MaxDepth = 3
	want.Vars = []string{"v0", "v1"}
	want.Operators = []string{"and", "or"}
	want.Seed = 4
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, g := range []*GenConfig{{Ops: "nand"}, {Depth: 40}, {Vars: 63}} {
		if _, err := g.apply(config.Default()); !errors.Is(err, cli.ErrUsage) || !errors.Is(err, config.ErrInvalid) {
			t.Errorf("%+v: got %v", g, err)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got, err := parseFormats("text, tex,obj")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]format.Format{format.TextFormat, format.TexFormat, format.ObjFormat}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := parseFormats("text,bogus"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestBits(t *testing.T) {
	if got := bits([]bool{true, false, false}); got != "100" {
		t.Errorf("got %s", got)
	}
}
