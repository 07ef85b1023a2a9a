package elementify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type batchConfig struct {
	concurrency int
}

// BatchOption configures SegmentAll.
type BatchOption func(*batchConfig)

// WithConcurrency sets how many words are segmented at once. Values below one
// fall back to GOMAXPROCS.
func WithConcurrency(n int) BatchOption {
	return func(c *batchConfig) {
		c.concurrency = n
	}
}

// SegmentAll segments every word concurrently and returns the results in the
// order of words. The context is checked before each word; the first error
// cancels the words that have not started yet.
func SegmentAll(ctx context.Context, s *Segmenter, words []string, opts ...BatchOption) ([]Result, error) {
	cfg := &batchConfig{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Elementify(word)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
