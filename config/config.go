// Package config holds the settings puzzles are generated with.
//
// Settings come from defaults, a YAML file or ELOGIC_* environment
// variables. Command line flags are layered on top by the commands.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/elogical/elogic/gen"
	"github.com/elogical/elogic/op"
	"github.com/elogical/elogic/synth"
	"github.com/elogical/elogic/tree"
	"github.com/elogical/elogic/truth"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

var ErrInvalid = errors.New("invalid config")

// Upper bounds accepted by Validate. A full tree of depth MaxDepth has
// about 2^(MaxDepth+1) nodes, and a puzzle evaluates SetSize^len(Vars) rows.
const (
	MaxDepthLimit = 8
	MaxVars       = 16
)

type Config struct {
	SetSize     int           `env:"ELOGIC_SET_SIZE"     envDefault:"2"        yaml:"setSize"`
	MaxDepth    int           `env:"ELOGIC_MAX_DEPTH"    envDefault:"1"        yaml:"maxDepth"`
	Vars        []string      `env:"ELOGIC_VARS"         envDefault:"v0,v1,v2" envSeparator:"," yaml:"vars"`
	Operators   []string      `env:"ELOGIC_OPERATORS"    envSeparator:","      yaml:"operators,omitempty"`
	FillProb    float64       `env:"ELOGIC_FILL_PROB"    envDefault:"1"        yaml:"fillProb"`
	MaxAttempts int           `env:"ELOGIC_MAX_ATTEMPTS" envDefault:"1000"     yaml:"maxAttempts"`
	Timeout     time.Duration `env:"ELOGIC_TIMEOUT"      envDefault:"5s"       yaml:"timeout"`

	// Seed makes generation reproducible. 0 draws a seed from crypto/rand.
	Seed int64 `env:"ELOGIC_SEED" yaml:"seed,omitempty"`
}

func Default() Config {
	return Config{
		SetSize:     2,
		MaxDepth:    1,
		Vars:        VarNames(3),
		FillProb:    gen.DefaultFillProb,
		MaxAttempts: synth.DefaultMaxAttempts,
		Timeout:     5 * time.Second,
	}
}

// FromEnv reads the configuration from the environment, with Default
// values for unset variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML file over Default.
func Load(path string) (Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path when it is not empty and the environment otherwise,
// then validates the result.
func Resolve(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	if path == "" {
		cfg, err = FromEnv()
	} else {
		cfg, err = Load(path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.SetSize < 2 {
		bad("setSize %d < 2", c.SetSize)
	}
	if c.MaxDepth < 1 {
		bad("maxDepth %d < 1", c.MaxDepth)
	}
	if c.MaxDepth > MaxDepthLimit {
		bad("maxDepth %d > %d", c.MaxDepth, MaxDepthLimit)
	}
	if len(c.Vars) == 0 {
		bad("no vars")
	}
	if len(c.Vars) > MaxVars {
		bad("%d vars > %d", len(c.Vars), MaxVars)
	} else if c.SetSize >= 2 {
		if _, err := truth.Size(c.SetSize, len(c.Vars)); err != nil {
			bad("setSize %d with %d vars: %v", c.SetSize, len(c.Vars), err)
		}
	}
	seen := map[string]bool{}
	for _, v := range c.Vars {
		if !tree.IsLiteralName(v) {
			bad("var %q is not a letter followed by digits", v)
		}
		if seen[v] {
			bad("duplicate var %q", v)
		}
		seen[v] = true
	}
	branching := false
	for _, name := range c.Operators {
		o := op.Lookup(name)
		if o == nil {
			bad("unknown operator %q", name)
			continue
		}
		if o.Arity() > 0 && !o.Wrapper() {
			branching = true
		}
	}
	if len(c.Operators) != 0 && !branching {
		bad("operators %v have no connective of arity > 0", c.Operators)
	}
	if c.FillProb < 0 || c.FillProb > 1 {
		bad("fillProb %g not in [0, 1]", c.FillProb)
	}
	if c.MaxAttempts < 0 {
		bad("maxAttempts %d < 0", c.MaxAttempts)
	}
	if c.Timeout < 0 {
		bad("timeout %s < 0", c.Timeout)
	}
	return errors.Join(errs...)
}

// Request is the synthesis request described by c. An empty operator list
// means op.DefaultWhitelist().
func (c *Config) Request() synth.Request {
	r := synth.Request{
		SetSize:  c.SetSize,
		MaxDepth: c.MaxDepth,
		Vars:     c.Vars,
		Allowed:  c.Operators,
	}
	if len(r.Allowed) == 0 {
		r.Allowed = op.DefaultWhitelist()
	}
	return r
}

func (c *Config) SynthOptions() []synth.Option {
	opts := []synth.Option{
		synth.WithMaxAttempts(c.MaxAttempts),
		synth.WithFillProb(c.FillProb),
	}
	if c.Seed != 0 {
		opts = append(opts, synth.WithSeed(c.Seed))
	}
	return opts
}

// Context bounds ctx by c.Timeout when it is positive.
func (c *Config) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return context.WithCancel(ctx)
}

const MaxLevel = 9

// ForLevel returns Default adjusted to a difficulty level in [0, MaxLevel].
// Depth grows every third level and the variable count every second one.
func ForLevel(level int) Config {
	level = min(max(level, 0), MaxLevel)
	cfg := Default()
	cfg.MaxDepth = min(1+level/3, 4)
	cfg.Vars = VarNames(min(2+level/2, 5))
	return cfg
}

// VarNames returns v0 .. v{n-1}.
func VarNames(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = "v" + strconv.Itoa(i)
	}
	return res
}
