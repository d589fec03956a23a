// Package options provides configuration for the test-vector generator.
package options

import "strings"

// Options defines the configuration for one generator instance.
type Options struct {
	// OutputPath is where the vector file is written.
	//
	// Default: "test_vectors.txt"
	OutputPath string `json:"outputPath"`

	// Inputs are the 32-bit input words to checksum, in order. Each word is
	// expanded least-significant byte first before checksumming.
	//
	// Default: the six-word testbench set (see DefaultInputs).
	Inputs []uint32 `json:"inputs"`

	// Polynomial is the CRC-32 generator polynomial in reflected form.
	//
	// Default: 0xEDB88320 (standard CRC-32 per ISO/IEC 3309)
	Polynomial uint32 `json:"polynomial"`

	// Verilog controls whether the Verilog task-call section is emitted.
	//
	// Default: true
	Verilog bool `json:"verilog"`

	// Binary controls whether per-test binary expansion rows are emitted.
	//
	// Default: true
	Binary bool `json:"binary"`

	// Debug enables debug-level logging.
	Debug bool `json:"debug"`
}

type OptionFunc func(*Options)

// WithDefaultOptions applies the predefined default configuration values.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := DefaultOptions()
		o.OutputPath = opts.OutputPath
		o.Inputs = opts.Inputs
		o.Polynomial = opts.Polynomial
		o.Verilog = opts.Verilog
		o.Binary = opts.Binary
	}
}

// WithOutputPath sets the vector file destination.
func WithOutputPath(path string) OptionFunc {
	return func(o *Options) {
		path = strings.TrimSpace(path)
		if path != "" {
			o.OutputPath = path
		}
	}
}

// WithInputs replaces the input word set. The words are copied, so later
// mutation of the caller's slice does not affect the generator.
func WithInputs(words ...uint32) OptionFunc {
	return func(o *Options) {
		if len(words) != 0 {
			o.Inputs = append([]uint32(nil), words...)
		}
	}
}

// WithPolynomial sets the reflected generator polynomial.
func WithPolynomial(poly uint32) OptionFunc {
	return func(o *Options) {
		if poly != 0 {
			o.Polynomial = poly
		}
	}
}

// WithoutVerilogSection omits the task-call section from the report.
func WithoutVerilogSection() OptionFunc {
	return func(o *Options) {
		o.Verilog = false
	}
}

// WithoutBinaryRows omits the binary expansion rows from the report.
func WithoutBinaryRows() OptionFunc {
	return func(o *Options) {
		o.Binary = false
	}
}

// WithDebugLogging enables debug-level logging.
func WithDebugLogging() OptionFunc {
	return func(o *Options) {
		o.Debug = true
	}
}
