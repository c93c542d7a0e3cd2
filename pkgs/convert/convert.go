// Package convert runs the full listing-to-binary pipeline: sequence the raw
// lines, normalize escape notation, encode each line to bytes, then compute
// per-line verification codes and assemble the program image.
package convert

import (
	"bufio"
	"io"
	"strings"

	"github.com/retroforge/typein/pkgs/assembler"
	"github.com/retroforge/typein/pkgs/checksum"
	"github.com/retroforge/typein/pkgs/errors"
	"github.com/retroforge/typein/pkgs/escape"
	"github.com/retroforge/typein/pkgs/listing"
	"github.com/retroforge/typein/pkgs/scanner"
)

// Record pairs a line number with its two-letter verification code, in
// program order.
type Record struct {
	Number int
	Code   string
}

// Options selects the magazine checksum variant and the target machine's
// BASIC load address.
type Options struct {
	Variant  checksum.Variant
	LoadAddr uint16
}

// Result holds everything one conversion produces.
type Result struct {
	Program   []scanner.EncodedLine
	Checksums []Record
	Image     []byte
}

// ReadLines reads a magazine listing, dropping blank lines, stripping
// trailing whitespace, and lower-casing - the form the rest of the pipeline
// expects.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrInputRead, "reading listing", err)
	}
	return lines, nil
}

// Convert runs the pipeline over raw listing lines in one forward pass,
// stopping at the first error with no partial result. Line sequencing is
// validated across the whole listing before any line is encoded.
func Convert(raw []string, opts Options) (*Result, error) {
	// Reject an unknown variant before doing any work.
	if _, err := checksum.Code(opts.Variant, 0, nil); err != nil {
		return nil, err
	}

	lines, err := listing.Sequence(raw)
	if err != nil {
		return nil, err
	}

	// Escape validation is total over the program text before encoding.
	canonical := make([]listing.SourceLine, len(lines))
	for i, ln := range lines {
		if canonical[i], err = escape.Normalize(ln); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Program:   make([]scanner.EncodedLine, len(canonical)),
		Checksums: make([]Record, len(canonical)),
	}
	for i, ln := range canonical {
		encoded := scanner.Encode(ln)
		code, err := checksum.Code(opts.Variant, encoded.Number, encoded.Bytes)
		if err != nil {
			return nil, err
		}
		result.Program[i] = encoded
		result.Checksums[i] = Record{Number: encoded.Number, Code: code}
	}

	result.Image = assembler.Assemble(result.Program, opts.LoadAddr)
	return result, nil
}
