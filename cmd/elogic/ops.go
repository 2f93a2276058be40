package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/op"

	"github.com/scott-cotton/cli"
)

type opInfo struct {
	Name    string `json:"name" yaml:"name"`
	Arity   int    `json:"arity" yaml:"arity"`
	Symbol  string `json:"symbol" yaml:"symbol"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
	Wrapper bool   `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`
}

func listOps(cfg *OpsConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		return err
	}
	ops := op.Operators()
	infos := make([]opInfo, len(ops))
	for i, o := range ops {
		infos[i] = opInfo{
			Name:    o.Name(),
			Arity:   o.Arity(),
			Symbol:  o.Symbol(),
			Color:   o.Color(),
			Wrapper: o.Wrapper(),
		}
	}
	if cfg.docs() {
		return encode.Encode(infos, cc.Out, cfg.encOpts()...)
	}
	colored := cfg.colored(cc.Out)
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		name := info.Name
		if colored {
			name = encode.DefaultColors().Color(info.Color, name)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", name, info.Arity, info.Symbol, info.Color)
	}
	return tw.Flush()
}
