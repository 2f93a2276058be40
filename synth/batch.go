package synth

import (
	"context"
	"runtime"

	"github.com/elogical/elogic/gen"

	"golang.org/x/sync/errgroup"
)

// Batch synthesizes n puzzles concurrently. Each task draws from its own
// generator: seeded with seed+i when WithSeed is given, from crypto/rand
// otherwise. The first error cancels the remaining tasks.
func Batch(ctx context.Context, n int, req Request, opts ...Option) ([]*Result, error) {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	res := make([]*Result, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		eg.Go(func() error {
			g, err := taskGenerator(o, i)
			if err != nil {
				return err
			}
			r, err := Synthesize(ctx, req, append(opts[:len(opts):len(opts)], WithGenerator(g))...)
			if err != nil {
				return err
			}
			res[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func taskGenerator(o *synthOpts, i int) (*gen.Generator, error) {
	if o.seed != nil {
		return gen.New(*o.seed + int64(i)), nil
	}
	return gen.NewRandom()
}
