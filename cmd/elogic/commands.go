package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "elogic").
		WithSynopsis("elogic [opts] command [opts]").
		WithDescription("elogic generates satisfiable boolean puzzles.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return elogicMain(cfg, cc, args)
		}).
		WithSubs(
			PuzzleCommand(cfg),
			TableCommand(cfg),
			OpsCommand(cfg),
			GradeCommand(cfg),
			GraphCommand(cfg))
}

func PuzzleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PuzzleConfig{MainConfig: mainCfg, N: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Gen.opts()...)
	return cli.NewCommandAt(&cfg.Puzzle, "puzzle").
		WithAliases("p").
		WithSynopsis("puzzle [-n N] [-level L] [-depth D] [-vars V] [-ops o1,o2] [-seed S] [-f fmts]").
		WithDescription(puzzleDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return makePuzzles(cfg, cc, args)
		})
}

const puzzleDescription = `puzzle synthesizes random expressions together with a row of the truth
table which satisfies them.

Without -j or -y, each puzzle is printed on one line per requested rendering
followed by its solution as 0s and 1s. With -j or -y a document is printed
per puzzle holding its id, renderings, operator sequence, graph and solution.

Settings are read from -config, or from ELOGIC_* environment variables, and
then overridden by flags.`

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg, Vars: 3, Base: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t").
		WithSynopsis("table [-vars N] [-base B]").
		WithDescription("print a truth table").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return table(cfg, cc, args)
		})
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithSynopsis("ops").
		WithDescription("list the registered operators").
		WithRun(func(cc *cli.Context, args []string) error {
			return listOps(cfg, cc, args)
		})
}

func GradeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GradeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Gen.opts()...)
	return cli.NewCommandAt(&cfg.Grade, "grade").
		WithAliases("g").
		WithSynopsis("grade -seed S [gen opts] answer").
		WithDescription("regenerate the puzzle for a seed and grade an answer such as 101 or 1,0,1").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return grade(cfg, cc, args)
		})
}

func GraphCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GraphConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Gen.opts()...)
	return cli.NewCommandAt(&cfg.Graph, "graph").
		WithSynopsis("graph [-d] [gen opts]").
		WithDescription("print the node/edge graph of a synthesized expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return graph(cfg, cc, args)
		})
}
