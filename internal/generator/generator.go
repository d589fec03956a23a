// Package generator coordinates table construction, vector computation and
// report emission for one generation run.
package generator

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/report"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/vector"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/crc"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

var (
	ErrGeneratorClosed = stdErrors.New("operation failed: cannot use closed generator")
)

// Generator owns the CRC table for one configuration and turns input words
// into emitted vector files. The table is built once and shared read-only.
type Generator struct {
	closed   atomic.Bool
	table    *crc.Table
	renderer *report.Renderer
	options  *options.Options
	log      *zap.SugaredLogger
}

// New creates a generator for the given configuration.
func New(log *zap.SugaredLogger, opts *options.Options) *Generator {
	log.Infow(
		"Initializing generator",
		"polynomial", fmt.Sprintf("0x%08X", opts.Polynomial),
		"inputs", len(opts.Inputs),
		"outputPath", opts.OutputPath,
	)

	return &Generator{
		table:    crc.MakeTable(opts.Polynomial),
		renderer: report.New(opts),
		options:  opts,
		log:      log,
	}
}

// Vectors computes one vector per configured input word, in order.
func (g *Generator) Vectors(ctx context.Context) ([]vector.Vector, error) {
	if g.closed.Load() {
		return nil, ErrGeneratorClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vectors := vector.ComputeAll(g.table, g.options.Inputs)

	for _, v := range vectors {
		g.log.Debugw(
			"Computed vector",
			"input", fmt.Sprintf("0x%08X", v.Input),
			"crc32", fmt.Sprintf("0x%08X", v.CRC),
		)
	}

	return vectors, nil
}

// Render computes all vectors and writes the report to w.
func (g *Generator) Render(ctx context.Context, w io.Writer) error {
	vectors, err := g.Vectors(ctx)
	if err != nil {
		return err
	}
	return g.renderer.Render(w, vectors)
}

// Generate computes all vectors and writes the report to the configured
// output path. The computed vectors are returned even though they are also
// in the file, so callers can assert on them directly.
func (g *Generator) Generate(ctx context.Context) ([]vector.Vector, error) {
	vectors, err := g.Vectors(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.renderer.Write(g.options.OutputPath, vectors); err != nil {
		g.log.Errorw("Vector file write failed", "path", g.options.OutputPath, "error", err)
		return nil, err
	}

	g.log.Infow(
		"Test vectors generated successfully",
		"path", g.options.OutputPath,
		"count", len(vectors),
	)
	return vectors, nil
}

// Close marks the generator unusable. Safe to call more than once.
func (g *Generator) Close() error {
	g.closed.Store(true)
	return nil
}
