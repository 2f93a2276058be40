package synth

import "github.com/elogical/elogic/gen"

const DefaultMaxAttempts = 1000

type synthOpts struct {
	gen         *gen.Generator
	seed        *int64
	metrics     *Metrics
	maxAttempts int
	fillProb    float64
}

func defaultOpts() *synthOpts {
	return &synthOpts{
		maxAttempts: DefaultMaxAttempts,
		fillProb:    gen.DefaultFillProb,
	}
}

type Option func(*synthOpts)

// WithGenerator sets the generator trees are drawn from. It is used by a
// single call at a time; Batch replaces it per task.
func WithGenerator(g *gen.Generator) Option {
	return func(o *synthOpts) { o.gen = g }
}

// WithSeed draws trees from a generator seeded with seed. Batch task i
// uses seed+i.
func WithSeed(seed int64) Option {
	return func(o *synthOpts) {
		o.seed = &seed
		o.gen = gen.New(seed)
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *synthOpts) { o.metrics = m }
}

// WithMaxAttempts bounds the number of generated trees. n <= 0 removes the
// bound, leaving only the context.
func WithMaxAttempts(n int) Option {
	return func(o *synthOpts) { o.maxAttempts = n }
}

func WithFillProb(p float64) Option {
	return func(o *synthOpts) { o.fillProb = p }
}
