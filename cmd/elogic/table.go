package main

import (
	"fmt"
	"strings"

	"github.com/elogical/elogic/config"
	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/truth"

	"github.com/scott-cotton/cli"
)

func table(cfg *TableConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	rows, err := truth.Table(cfg.Base, cfg.Vars)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	vars := config.VarNames(cfg.Vars)
	if cfg.docs() {
		doc := struct {
			Vars []string `json:"vars" yaml:"vars"`
			Rows [][]bool `json:"rows" yaml:"rows"`
		}{vars, rows}
		return encode.Encode(doc, cc.Out, cfg.encOpts()...)
	}
	if _, err := fmt.Fprintln(cc.Out, strings.Join(vars, " ")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(cc.Out, bits(row)); err != nil {
			return err
		}
	}
	return nil
}
