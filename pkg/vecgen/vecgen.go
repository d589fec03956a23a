// Package vecgen generates CRC-32 test vectors for hardware testbenches.
//
// An Instance wraps one generator configuration: a reflected polynomial, an
// ordered set of 32-bit input words and an output path. Generate writes the
// vector file; Vectors returns the computed values without touching disk.
package vecgen

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/generator"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/vector"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/logger"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

// Instance represents a configured test-vector generator.
type Instance struct {
	mu        sync.Mutex
	generator *generator.Generator
	options   *options.Options
	log       *zap.SugaredLogger
}

// NewInstance creates and initializes a generator instance with the
// specified configuration.
func NewInstance(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	defaultOpts := options.DefaultOptions()
	for _, opt := range opts {
		opt(&defaultOpts)
	}

	log := logger.New(service, defaultOpts.Debug)

	if err := validateOptions(&defaultOpts); err != nil {
		return nil, err
	}

	gen := generator.New(log, &defaultOpts)

	log.Infow(
		"Vector generator instance initialized successfully",
		"service", service,
		"outputPath", defaultOpts.OutputPath,
		"inputs", len(defaultOpts.Inputs),
	)

	return &Instance{generator: gen, options: &defaultOpts, log: log}, nil
}

// Vectors computes one vector per configured input word without writing.
func (i *Instance) Vectors(ctx context.Context) ([]vector.Vector, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.generator.Vectors(ctx)
}

// Render computes all vectors and writes the report to w.
func (i *Instance) Render(ctx context.Context, w io.Writer) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.generator.Render(ctx, w)
}

// Generate computes all vectors and writes the vector file to the
// configured output path.
func (i *Instance) Generate(ctx context.Context) ([]vector.Vector, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.generator.Generate(ctx)
}

// Close releases the instance. Further operations fail.
func (i *Instance) Close() error {
	i.log.Infow("Close request received")

	i.mu.Lock()
	defer i.mu.Unlock()
	return i.generator.Close()
}
