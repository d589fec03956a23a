// Package crc implements the reflected, table-driven CRC-32 used by the
// hardware testbench: polynomial 0x04C11DB7 (0xEDB88320 in reflected form),
// initial value 0xFFFFFFFF and a final complement, per ISO/IEC 3309.
package crc

// DefaultPoly is the standard CRC-32 generator polynomial in reflected form.
const DefaultPoly uint32 = 0xEDB88320

// Table holds the 256-entry per-byte transition function for one polynomial.
// A Table is immutable once built and may be shared by any number of
// concurrent readers; each checksum computation keeps its own accumulator.
type Table [256]uint32

// MakeTable builds the lookup table for the given reflected polynomial.
// Entry i is the result of dividing the byte value i by the polynomial,
// processed low bit first. MakeTable is deterministic: the same polynomial
// always yields a bit-identical table.
func MakeTable(poly uint32) *Table {
	var t Table
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// Update extends crc with the bytes in data. crc must be the value returned
// by a previous Update or Checksum call (or zero to start a new checksum),
// so a word can be checksummed one extracted byte at a time.
func Update(crc uint32, t *Table, data []byte) uint32 {
	crc = ^crc
	for _, b := range data {
		crc = crc>>8 ^ t[byte(crc)^b]
	}
	return ^crc
}

// Checksum returns the CRC-32 of data. A zero-length input yields 0x00000000.
func Checksum(data []byte, t *Table) uint32 {
	return Update(0, t, data)
}

// Verify reports whether data checksums to expected.
func Verify(data []byte, expected uint32, t *Table) bool {
	return Checksum(data, t) == expected
}
