package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/retroforge/typein/pkgs/convert"
	"github.com/retroforge/typein/pkgs/errors"
)

// WriteBinary writes the program image to path. The file is created
// exclusively; when it already exists, confirm decides whether to replace
// it. A nil confirm replaces without asking (watch mode).
func WriteBinary(path string, image []byte, confirm func(string) bool) error {
	fmt.Printf("Writing binary output file %q...\n", path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if !os.IsExist(err) {
			return errors.Wrap(errors.ErrOutputWrite, "creating binary file", err)
		}
		if confirm != nil && !confirm(path) {
			fmt.Printf("File %q not overwritten.\n", path)
			return nil
		}
		if f, err = os.Create(path); err != nil {
			return errors.Wrap(errors.ErrOutputWrite, "replacing binary file", err)
		}
	}

	if _, err := f.Write(image); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrOutputWrite, "writing binary file", err)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrOutputWrite, "closing binary file", err)
	}

	fmt.Printf("File %q written successfully.\n", path)
	return nil
}

// WriteChecksumFile writes one "{number} {code}" line per record plus a
// trailing line count, for offline comparison against the magazine page.
func WriteChecksumFile(path string, records []convert.Record) error {
	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "%d %s\n", rec.Number, rec.Code)
	}
	fmt.Fprintf(&b, "\nLines: %d\n", len(records))

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(errors.ErrOutputWrite, "writing checksum file", err)
	}
	return nil
}
