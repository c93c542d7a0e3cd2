// Package listing splits raw magazine listing lines into line numbers and
// statement text and enforces the strict ascending line-number order a
// Commodore BASIC program requires.
package listing

import (
	"strings"

	"github.com/retroforge/typein/pkgs/errors"
)

// SourceLine is one listing entry: its BASIC line number and the statement
// text with the number and surrounding whitespace stripped. Lines are not
// modified after creation.
type SourceLine struct {
	Number int
	Text   string
}

// SplitLineNumber splits a raw line into its leading decimal line number and
// the remaining text. ok is false when the line has no leading digit run.
func SplitLineNumber(line string) (ln SourceLine, ok bool) {
	line = strings.TrimLeft(line, " \t")

	digits := 0
	number := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		number = number*10 + int(line[digits]-'0')
		digits++
	}
	if digits == 0 {
		return SourceLine{}, false
	}

	return SourceLine{
		Number: number,
		Text:   strings.TrimLeft(line[digits:], " \t"),
	}, true
}

// Sequence splits every raw line and validates the line-number order in a
// single left-to-right pass, stopping at the first violation.
//
// A line without a leading number yields ErrMissingLineNumber reporting the
// last good line number (0 if none yet). A line whose number is not strictly
// greater than its predecessor yields ErrLineSequence reporting the
// predecessor, the entry the typist most likely got wrong.
func Sequence(raw []string) ([]SourceLine, error) {
	lines := make([]SourceLine, 0, len(raw))
	prev := 0

	for _, line := range raw {
		ln, ok := SplitLineNumber(line)
		if !ok {
			return nil, errors.NewMissingLineNumberError(prev)
		}
		if ln.Number <= prev {
			return nil, errors.NewSequenceError(prev)
		}
		lines = append(lines, ln)
		prev = ln.Number
	}

	return lines, nil
}
