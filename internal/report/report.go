// Package report renders computed CRC vectors as the testbench vector file:
// a human-readable section per test followed by Verilog task-call lines the
// testbench can paste verbatim.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/vector"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/errors"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/filesys"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

// Renderer produces the vector file contents for one input set.
type Renderer struct {
	verilog bool
	binary  bool
}

// New creates a renderer honoring the report sections configured in opts.
func New(opts *options.Options) *Renderer {
	return &Renderer{verilog: opts.Verilog, binary: opts.Binary}
}

// printer accumulates the first write error so render code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Render writes the full report for vectors to w. Vectors appear in order;
// test numbering starts at 1 to match the testbench's convention.
func (r *Renderer) Render(w io.Writer, vectors []vector.Vector) error {
	p := &printer{w: w}

	p.printf("// Test vectors for Verilog testbench\n")
	p.printf("// Format: Input_Data, Expected_CRC32\n\n")

	for i, v := range vectors {
		p.printf("Test %d:\n", i+1)
		p.printf("  Input:    0x%08X\n", v.Input)
		p.printf("  CRC32:    0x%08X\n", v.CRC)
		if r.binary {
			p.printf("  Binary:   %s\n", vector.BinaryString(v.Input))
		}
		p.printf("\n")
	}

	if r.verilog {
		p.printf("\n// Verilog testbench task calls:\n")
		for _, v := range vectors {
			p.printf("calculate_crc(32'h%08X, 32'h%08X);\n", v.Input, v.CRC)
		}
	}

	return p.err
}

// Write renders vectors and atomically writes the report to path, creating
// the parent directory if needed. Checksum computation has already finished
// by the time Write runs, so an I/O failure never corrupts vector values.
func (r *Renderer) Write(path string, vectors []vector.Vector) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, vectors); err != nil {
		return errors.NewReportError(err, errors.ErrReportRenderFailed, "Failed to render test vector report").
			WithStage("render").
			WithPath(path)
	}

	dir := filepath.Dir(path)
	if err := filesys.CreateDir(dir, 0o755); err != nil {
		return errors.NewReportError(err, errors.ErrIOCreateFailed, "Failed to create output directory").
			WithStage("mkdir").
			WithPath(dir)
	}

	if err := filesys.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return errors.NewReportError(err, errors.ErrReportWriteFailed, "Failed to write test vector file").
			WithStage("write").
			WithPath(path).
			WithDetail("bytes", buf.Len())
	}

	return nil
}
