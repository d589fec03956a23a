package vecgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/internal/generator"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/errors"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

func TestGenerateEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_vectors.txt")

	gen, err := NewInstance(context.Background(), "vecgen-test", options.WithOutputPath(path))
	require.NoError(t, err)
	defer gen.Close()

	vectors, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, vectors, len(options.DefaultInputs))
	assert.Equal(t, uint32(0x2144DF1C), vectors[0].CRC)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "// Test vectors for Verilog testbench")
	assert.Contains(t, content, "calculate_crc(32'hDEADBEEF, 32'h1A5A601F);")
	assert.Contains(t, content, "calculate_crc(32'h55555555, 32'h6B2DC0BD);")
}

func TestRenderMatchesGeneratedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_vectors.txt")

	gen, err := NewInstance(
		context.Background(), "vecgen-test",
		options.WithOutputPath(path),
		options.WithInputs(0xCAFEBABE, 0x00000001),
	)
	require.NoError(t, err)
	defer gen.Close()

	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, gen.Render(context.Background(), &sb))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), sb.String())
}

func TestVectorsWithCustomPolynomial(t *testing.T) {
	// Castagnoli in reflected form; CRC32-C of four zero bytes.
	gen, err := NewInstance(
		context.Background(), "vecgen-test",
		options.WithPolynomial(0x82F63B78),
		options.WithInputs(0x00000000),
	)
	require.NoError(t, err)
	defer gen.Close()

	vectors, err := gen.Vectors(context.Background())
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, uint32(0x48674BC7), vectors[0].CRC)
}

func TestNewInstanceRejectsTooManyInputs(t *testing.T) {
	words := make([]uint32, options.MaxInputs+1)

	_, err := NewInstance(
		context.Background(), "vecgen-test",
		options.WithInputs(words...),
	)
	require.Error(t, err)

	verr, ok := errors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrValidationInvalidData, verr.Code())
	assert.Equal(t, "inputs", verr.Field())
	assert.Equal(t, options.MaxInputs+1, verr.Provided())
}

func TestClosedInstance(t *testing.T) {
	gen, err := NewInstance(context.Background(), "vecgen-test")
	require.NoError(t, err)
	require.NoError(t, gen.Close())

	_, err = gen.Vectors(context.Background())
	assert.ErrorIs(t, err, generator.ErrGeneratorClosed)
}
