// Package parallel decodes large inputs across several goroutines while
// keeping results in input order.
package parallel

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wallaceicy06/go-fixedschema"
)

// Options controls a parallel decode.
type Options struct {
	// Workers bounds the goroutines decoding a chunk. Defaults to GOMAXPROCS.
	Workers int
	// ChunkSize is the number of lines read before a chunk is decoded.
	// Defaults to 1024.
	ChunkSize int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = 1024
	}
	return o
}

// DecodeAll behaves like (*fixedwidth.Decoder).DecodeAll but decodes each
// chunk of lines concurrently. Results are yielded in input order with
// lines numbered from 1. If ctx is cancelled the sequence yields ctx's
// error once and stops. Lines are read one chunk at a time, so stopping
// early leaves the rest of the input unread.
func DecodeAll(ctx context.Context, d *fixedwidth.Decoder, lines iter.Seq[string], opts Options) iter.Seq2[fixedwidth.Result, error] {
	opts = opts.withDefaults()
	return func(yield func(fixedwidth.Result, error) bool) {
		chunk := make([]string, 0, opts.ChunkSize)
		first := 1

		flush := func() bool {
			results, err := decodeChunk(ctx, d, chunk, first, opts.Workers)
			if err != nil {
				yield(fixedwidth.Result{}, err)
				return false
			}
			for _, res := range results {
				if !yield(res, nil) {
					return false
				}
			}
			first += len(chunk)
			chunk = chunk[:0]
			return true
		}

		for line := range lines {
			chunk = append(chunk, line)
			if len(chunk) == opts.ChunkSize && !flush() {
				return
			}
		}
		if len(chunk) > 0 {
			flush()
		}
	}
}

// decodeChunk splits chunk into one contiguous span per worker. Each
// goroutine writes only its own span of results.
func decodeChunk(ctx context.Context, d *fixedwidth.Decoder, chunk []string, first, workers int) ([]fixedwidth.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]fixedwidth.Result, len(chunk))
	span := (len(chunk) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(chunk); start += span {
		end := min(start+span, len(chunk))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				rec, err := d.DecodeLine(chunk[i], first+i)
				results[i] = fixedwidth.Result{Line: first + i, Record: rec, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
