// Package parallel provides bounded fan-out helpers for row-wise evaluation.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return WithWorkers(runtime.NumCPU())
}

// WithWorkers returns a config using n workers. n <= 0 means one per CPU;
// n == 1 disables parallelism.
func WithWorkers(n int) Config {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // Rows are the unit of work; each row is already O(cols).
	}
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for
// each, concurrently when cfg allows it. The first error cancels ctx for the
// remaining chunks and is returned.
// Falls back to a single sequential call if parallelism is disabled or n is too small.
func ForRange(ctx context.Context, n int, f func(start, end int) error, cfg Config) error {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		return f(0, n)
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(start, end)
		})
	}
	return g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(ctx context.Context, n int, f func(i int) error, cfg Config) error {
	return ForRange(ctx, n, func(start, end int) error {
		for i := start; i < end; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}, cfg)
}
