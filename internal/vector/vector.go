// Package vector computes CRC test vectors over fixed-size input words.
package vector

import (
	"strings"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/crc"
)

// WordSize is the number of bytes in one input word.
const WordSize = 4

// Vector pairs an input word with its expected CRC-32.
type Vector struct {
	Input uint32 `json:"input"`
	CRC   uint32 `json:"crc32"`
}

// LittleEndianBytes expands word into its four bytes, least-significant byte
// first, which is the order the hardware consumes them in. Extraction uses
// explicit shifts so the result never depends on host memory layout.
func LittleEndianBytes(word uint32) [WordSize]byte {
	return [WordSize]byte{
		byte(word),
		byte(word >> 8),
		byte(word >> 16),
		byte(word >> 24),
	}
}

// Compute returns the vector for one input word using the given table.
func Compute(t *crc.Table, word uint32) Vector {
	b := LittleEndianBytes(word)
	return Vector{Input: word, CRC: crc.Checksum(b[:], t)}
}

// ComputeAll returns one vector per word, preserving input order.
func ComputeAll(t *crc.Table, words []uint32) []Vector {
	vectors := make([]Vector, 0, len(words))
	for _, word := range words {
		vectors = append(vectors, Compute(t, word))
	}
	return vectors
}

// BinaryString renders word as 32 bits, most-significant bit first, with a
// space between bytes.
func BinaryString(word uint32) string {
	var sb strings.Builder
	sb.Grow(35)

	for i := 31; i >= 0; i-- {
		sb.WriteByte('0' + byte(word>>uint(i)&1))
		if i%8 == 0 && i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
