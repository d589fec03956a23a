// Command vecgen writes CRC-32 test vectors for the Verilog testbench.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/errors"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/vecgen"
)

func main() {
	out := flag.String("out", options.DefaultOutputPath, "vector file path")
	inputs := flag.String("inputs", "", "comma-separated 32-bit input words in hex (default: built-in testbench set)")
	poly := flag.String("poly", fmt.Sprintf("%08X", options.DefaultPolynomial), "reflected CRC-32 generator polynomial in hex")
	toStdout := flag.Bool("stdout", false, "print the report to stdout instead of writing a file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	opts := []options.OptionFunc{options.WithOutputPath(*out)}
	if *debug {
		opts = append(opts, options.WithDebugLogging())
	}

	polynomial, err := parseWord(*poly)
	if err != nil {
		log.Fatalf("invalid -poly value %q: %v", *poly, err)
	}
	opts = append(opts, options.WithPolynomial(polynomial))

	if *inputs != "" {
		words, err := parseWords(*inputs)
		if err != nil {
			log.Fatalf("invalid -inputs value: %v", err)
		}
		opts = append(opts, options.WithInputs(words...))
	}

	gen, err := vecgen.NewInstance(context.Background(), "vecgen", opts...)
	if err != nil {
		if verr, ok := errors.AsValidationError(err); ok {
			log.Printf("Code: %v", verr.Code())
			log.Printf("Field: %v", verr.Field())
			log.Printf("Provided: %v", verr.Provided())
			log.Printf("Expected: %v", verr.Expected())
		}
		log.Fatalf("instance create error: %v", err)
	}

	defer func() {
		if err := gen.Close(); err != nil {
			log.Fatalf("instance close error: %v", err)
		}
	}()

	if *toStdout {
		if err := gen.Render(context.Background(), os.Stdout); err != nil {
			log.Fatalf("render error: %v", err)
		}
		return
	}

	vectors, err := gen.Generate(context.Background())
	if err != nil {
		if rerr, ok := errors.AsReportError(err); ok {
			log.Printf("Code: %v", rerr.Code())
			log.Printf("Stage: %v", rerr.Stage())
			log.Printf("Path: %v", rerr.Path())
		}
		log.Fatalf("generate error: %v", err)
	}

	fmt.Printf("Test vectors generated successfully! (%d vectors)\n", len(vectors))
	fmt.Printf("File saved to: %s\n", *out)
}

func parseWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func parseWords(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	words := make([]uint32, 0, len(parts))
	for _, part := range parts {
		word, err := parseWord(part)
		if err != nil {
			return nil, fmt.Errorf("bad word %q: %w", part, err)
		}
		words = append(words, word)
	}
	return words, nil
}
