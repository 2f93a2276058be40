package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/puzzle"

	"github.com/scott-cotton/cli"
)

func grade(cfg *GradeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grade.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gen.Seed == 0 {
		return fmt.Errorf("%w: grade requires -seed", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: grade requires an answer", cli.ErrUsage)
	}
	answer, err := parseAnswer(strings.Join(args, ","))
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
	if cfg.Gen.Level != nil {
		p.Level = *cfg.Gen.Level
	}
	g, err := p.Grade(answer)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.docs() {
		return encode.Encode(g, cc.Out, cfg.encOpts()...)
	}
	verdict := "incorrect"
	if g.Correct {
		verdict = "correct"
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n%s = %s: %s (solution %s)\n",
		p.Tree, strings.Join(p.Vars, " "), bits(answer), verdict, bits(p.Solution))
	return err
}

// parseAnswer reads an assignment written as 0s and 1s, optionally
// separated by commas or spaces; t/f and true/false are accepted too.
func parseAnswer(v string) ([]bool, error) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 1 && strings.Trim(fields[0], "01") == "" {
		fields = strings.Split(fields[0], "")
	}
	res := make([]bool, 0, len(fields))
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "1", "t", "true":
			res = append(res, true)
		case "0", "f", "false":
			res = append(res, false)
		default:
			return nil, fmt.Errorf("%w: bad answer value %q", cli.ErrUsage, f)
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: empty answer", cli.ErrUsage)
	}
	return res, nil
}
