package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/vector"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/errors"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

var testVectors = []vector.Vector{
	{Input: 0x12345678, CRC: 0xAF6D87D2},
	{Input: 0xDEADBEEF, CRC: 0x1A5A601F},
}

func TestRender(t *testing.T) {
	opts := options.DefaultOptions()
	r := New(&opts)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, testVectors))

	want := strings.Join([]string{
		"// Test vectors for Verilog testbench",
		"// Format: Input_Data, Expected_CRC32",
		"",
		"Test 1:",
		"  Input:    0x12345678",
		"  CRC32:    0xAF6D87D2",
		"  Binary:   00010010 00110100 01010110 01111000",
		"",
		"Test 2:",
		"  Input:    0xDEADBEEF",
		"  CRC32:    0x1A5A601F",
		"  Binary:   11011110 10101101 10111110 11101111",
		"",
		"",
		"// Verilog testbench task calls:",
		"calculate_crc(32'h12345678, 32'hAF6D87D2);",
		"calculate_crc(32'hDEADBEEF, 32'h1A5A601F);",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestRenderWithoutSections(t *testing.T) {
	opts := options.DefaultOptions()
	options.WithoutVerilogSection()(&opts)
	options.WithoutBinaryRows()(&opts)
	r := New(&opts)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, testVectors))

	out := sb.String()
	assert.NotContains(t, out, "Binary:")
	assert.NotContains(t, out, "calculate_crc(")
	assert.Contains(t, out, "Test 2:")
	assert.Contains(t, out, "  CRC32:    0x1A5A601F")
}

func TestRenderEmptyVectorSet(t *testing.T) {
	opts := options.DefaultOptions()
	r := New(&opts)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, nil))

	assert.Contains(t, sb.String(), "// Test vectors for Verilog testbench")
	assert.NotContains(t, sb.String(), "Test 1:")
}

func TestWrite(t *testing.T) {
	opts := options.DefaultOptions()
	r := New(&opts)

	path := filepath.Join(t.TempDir(), "vectors", "test_vectors.txt")
	require.NoError(t, r.Write(path, testVectors))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, testVectors))
	assert.Equal(t, sb.String(), string(data))
}

func TestWriteDirBlockedByFile(t *testing.T) {
	opts := options.DefaultOptions()
	r := New(&opts)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := r.Write(filepath.Join(blocker, "test_vectors.txt"), testVectors)
	require.Error(t, err)

	rerr, ok := errors.AsReportError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrIOCreateFailed, rerr.Code())
	assert.Equal(t, "mkdir", rerr.Stage())
	assert.Equal(t, blocker, rerr.Path())
}
