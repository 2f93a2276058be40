package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='yaml config file (default from ELOGIC_* env)'"`
	Color   bool   `cli:"name=color desc='render in color'"`
	WireOut bool   `cli:"name=wire desc='output documents in compact format'"`

	J bool `cli:"name=j aliases=json desc='output json documents'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml documents'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// docs reports whether output is a yaml or json document rather than
// plain lines.
func (cfg *MainConfig) docs() bool {
	return cfg.J || cfg.Y
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	doc := encode.YAMLDoc
	if cfg.J {
		doc = encode.JSONDoc
	}
	return []encode.EncodeOption{
		encode.EncodeDoc(doc),
		encode.EncodeWire(cfg.WireOut),
	}
}

// colored reports whether plain output to w should use ansi colors:
// when -color is given, or when it is not and w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) textFormat(w io.Writer) format.Format {
	if cfg.colored(w) {
		return format.ANSIFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) load() (config.Config, error) {
	c, err := config.Resolve(cfg.Config)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return c, nil
}

// GenConfig holds the flags shared by commands that synthesize a puzzle.
type GenConfig struct {
	Depth int    `cli:"name=depth desc='max depth below the root'"`
	Vars  int    `cli:"name=vars desc='number of variables v0..'"`
	Ops   string `cli:"name=ops desc='comma separated allowed operators'"`
	Seed  int    `cli:"name=seed desc='generation seed (0 for random)'"`

	Level *int
}

func (g *GenConfig) opts() []*cli.Opt {
	opts, err := cli.StructOpts(g)
	if err != nil {
		panic(err)
	}
	return append(opts, &cli.Opt{
		Name:        "level",
		Description: fmt.Sprintf("difficulty level 0..%d, overrides -depth and -vars defaults", config.MaxLevel),
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
			n, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("%w: bad level %q", cli.ErrUsage, a)
			}
			g.Level = &n
			return n, nil
		}), "(level)"),
	})
}

// apply layers the flags over c.
func (g *GenConfig) apply(c config.Config) (config.Config, error) {
	if g.Level != nil {
		l := config.ForLevel(*g.Level)
		c.MaxDepth = l.MaxDepth
		c.Vars = l.Vars
	}
	if g.Depth > 0 {
		c.MaxDepth = g.Depth
	}
	if g.Vars > 0 {
		c.Vars = config.VarNames(g.Vars)
	}
	if g.Ops != "" {
		c.Operators = strings.Split(g.Ops, ",")
	}
	if g.Seed != 0 {
		c.Seed = int64(g.Seed)
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return c, nil
}

type PuzzleConfig struct {
	*MainConfig
	Gen GenConfig

	N       int    `cli:"name=n desc='number of puzzles'"`
	Formats string `cli:"name=f desc='comma separated renderings: text tex html py obj array expr ansi'"`

	Puzzle *cli.Command
}

func (cfg *PuzzleConfig) formats(w io.Writer) ([]format.Format, error) {
	if cfg.Formats == "" {
		if cfg.docs() {
			return nil, nil
		}
		return []format.Format{cfg.textFormat(w)}, nil
	}
	return parseFormats(cfg.Formats)
}

func parseFormats(v string) ([]format.Format, error) {
	var res []format.Format
	for _, s := range strings.Split(v, ",") {
		f, err := format.ParseFormat(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, f)
	}
	return res, nil
}

type TableConfig struct {
	*MainConfig

	Vars int `cli:"name=vars desc='number of variables'"`
	Base int `cli:"name=base desc='set size'"`

	Table *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

type GradeConfig struct {
	*MainConfig
	Gen GenConfig

	Grade *cli.Command
}

type GraphConfig struct {
	*MainConfig
	Gen GenConfig

	Display bool `cli:"name=d desc='show an indented tree dump instead of the graph'"`
	Indent  int  `cli:"name=indent desc='indent of the tree dump'"`

	Graph *cli.Command
}
