package options

const (
	// DefaultOutputPath is the vector file written when none is configured.
	DefaultOutputPath string = "test_vectors.txt"

	// DefaultPolynomial is the standard CRC-32 polynomial in reflected form.
	DefaultPolynomial uint32 = 0xEDB88320

	// MaxInputs bounds the input word set for a single run.
	MaxInputs int = 4096
)

// DefaultInputs is the input word set exercised by the hardware testbench.
var DefaultInputs = []uint32{
	0x00000000,
	0xFFFFFFFF,
	0x12345678,
	0xDEADBEEF,
	0xAAAAAAAA,
	0x55555555,
}

var defaultOptions = Options{
	OutputPath: DefaultOutputPath,
	Polynomial: DefaultPolynomial,
	Verilog:    true,
	Binary:     true,
}

// DefaultOptions returns a copy of the default configuration.
func DefaultOptions() Options {
	opts := defaultOptions
	opts.Inputs = append([]uint32(nil), DefaultInputs...)
	return opts
}
