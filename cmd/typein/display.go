package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/retroforge/typein/pkgs/convert"
)

// Each grid cell is 12 characters: padding to a 7-wide "number code" field,
// two separating spaces, and a 3-space gutter.
const cellWidth = 12

// PrintChecksums renders the verification codes as a column-major grid sized
// to the display width, then the line count. Purely presentational; the
// records arrive in program order and stay that way within each column.
func PrintChecksums(w io.Writer, records []convert.Record, width int) {
	columns := width / cellWidth
	if columns < 1 {
		columns = 1
	}
	rows := (len(records) + columns - 1) / columns

	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			idx := i + j*rows
			if idx >= len(records) {
				continue
			}
			num := strconv.Itoa(records[idx].Number)
			code := records[idx].Code
			pad := 7 - len(num) - len(code)
			if pad < 0 {
				pad = 0
			}
			fmt.Fprintf(w, "%s %s %s   ", strings.Repeat(" ", pad), num, code)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nLines: %d\n", len(records))
}

// terminalWidth reports the stdout width, falling back to 80 columns when
// stdout is not a terminal.
func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
