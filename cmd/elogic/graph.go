package main

import (
	"context"
	"io"

	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/puzzle"
	"github.com/elogical/elogic/tree"

	"github.com/scott-cotton/cli"
)

func graph(cfg *GraphConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Graph.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := genConfig(cfg.MainConfig, &cfg.Gen)
	if err != nil {
		return err
	}
	p, err := puzzle.New(context.Background(), c)
	if err != nil {
		return err
	}
	if cfg.Display {
		_, err := io.WriteString(cc.Out, tree.Display(p.Tree, cfg.Indent))
		return err
	}
	return encode.Encode(tree.ToGraph(p.Tree), cc.Out, cfg.encOpts()...)
}
