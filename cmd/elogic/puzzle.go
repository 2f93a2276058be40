package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/format"
	"github.com/elogical/elogic/puzzle"
	"github.com/elogical/elogic/tree"

	"github.com/scott-cotton/cli"
)

func makePuzzles(cfg *PuzzleConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Puzzle.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.N < 1 {
		return fmt.Errorf("%w: -n must be positive", cli.ErrUsage)
	}
	c, err := genConfig(cfg.MainConfig, &cfg.Gen)
	if err != nil {
		return err
	}
	formats, err := cfg.formats(cc.Out)
	if err != nil {
		return err
	}
	ps, err := puzzle.Batch(context.Background(), cfg.N, c)
	if err != nil {
		return err
	}
	for i, p := range ps {
		if cfg.docs() {
			if i > 0 && !cfg.J {
				io.WriteString(cc.Out, "---\n")
			}
			if err := p.Encode(cc.Out, formats, cfg.encOpts()...); err != nil {
				return fmt.Errorf("error encoding puzzle %d: %w", i, err)
			}
			continue
		}
		if err := writePuzzle(cc.Out, p, formats); err != nil {
			return err
		}
	}
	return nil
}

func genConfig(cfg *MainConfig, g *GenConfig) (config.Config, error) {
	c, err := cfg.load()
	if err != nil {
		return config.Config{}, err
	}
	return g.apply(c)
}

func writePuzzle(w io.Writer, p *puzzle.Puzzle, formats []format.Format) error {
	for _, f := range formats {
		v, err := tree.Render(p.Tree, f)
		if err != nil {
			return err
		}
		s, ok := v.(string)
		if !ok {
			s = strings.TrimSpace(encode.MustString(v, encode.EncodeDoc(encode.JSONDoc), encode.EncodeWire(true)))
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s = %s\n", strings.Join(p.Vars, " "), bits(p.Solution))
	return err
}

func bits(row []bool) string {
	b := make([]byte, len(row))
	for i, v := range row {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}
