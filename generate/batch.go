package generate

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/mhvk/erfagen"
	"github.com/mhvk/erfagen/log"
)

// Batch extracts every enumerated function from sourcePath. Each
// extraction reads immutable input and writes only its own model, so
// the batch fans out across a bounded worker group; results keep header
// order. The first failure cancels the group and is returned as is.
func (e *Extractor) Batch(ctx context.Context, sourcePath string, funcs []HeaderFunc) ([]*erfagen.Function, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "generate.Batch")
	defer span.End()

	// Anchors only apply to a combined source file; in the
	// one-file-per-function layout each file holds a single true
	// definition and needs no disambiguation.
	combined := true
	if info, err := os.Stat(sourcePath); err == nil && info.IsDir() {
		combined = false
	}

	out := make([]*erfagen.Function, len(funcs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, hf := range funcs {
		i, hf := i, hf
		g.Go(func() error {
			_, span := otel.Tracer(tracerName).Start(ctx, "generate.Function."+hf.Name)
			defer span.End()

			anchor := ""
			if combined {
				anchor = hf.MatchLine
			}
			fn, err := e.Function(hf.Name, sourcePath, anchor)
			if err != nil {
				return err
			}
			log.Debug().Str("function", hf.Name).Int("args", len(fn.Args)).Msg("extracted")
			out[i] = fn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
