// Command typein converts a textual transcription of a Commodore BASIC
// type-in program, as printed in Ahoy magazine, into a .prg binary loadable
// on real hardware or an emulator, plus the per-line verification codes the
// magazine printed beside each line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/retroforge/typein/pkgs/checksum"
	"github.com/retroforge/typein/pkgs/convert"
	"github.com/retroforge/typein/pkgs/errors"
)

func main() {
	var (
		source   string
		loadAddr string
		watch    bool
	)

	rootCmd := &cobra.Command{
		Use:   "typein [flags] <input-file>",
		Short: "Tokenize Commodore BASIC type-in listings from Ahoy magazine",
		Long: `Tokenize Commodore BASIC type-in listings from Ahoy magazine.

Reads a transcription of a magazine listing, verifies line numbering and
special-character notation, and writes two files next to the input: a .prg
binary image loadable on a C64/VIC-20 or emulator, and a .chk file of
per-line verification codes matching the ones printed in the magazine.

Issues prior to November 1984 used underlined/overlined characters for
Shift-key and Commodore-key entries; type those as {s a}, {s *}, {c a} and
so on. Keys with no modern equivalent: {ep} (British pound), {up_arrow},
{left_arrow}, {pi}, {s return}, {s space}, {c ep}, {s up_arrow}.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], source, loadAddr, watch)
		},
	}

	rootCmd.Flags().StringVarP(&source, "source", "s", "ahoy2",
		"Magazine source format: ahoy1 (Mar-May 1984), ahoy2 (Jun 1984-Apr 1987), ahoy3 (May 1987-)")
	rootCmd.Flags().StringVarP(&loadAddr, "loadaddr", "l", "0x0801",
		"BASIC load address: 0x0801 C64, 0x1001 VIC20, 0x0401 VIC20+3K, 0x1201 VIC20+8K")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-run the conversion whenever the input file changes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, source, loadAddr string, watch bool) error {
	variant, err := checksum.ParseVariant(source)
	if err != nil {
		return withFormatSuggestion(err, source)
	}

	addr, err := parseLoadAddr(loadAddr)
	if err != nil {
		return err
	}

	opts := convert.Options{Variant: variant, LoadAddr: addr}
	if watch {
		return watchAndConvert(path, opts)
	}
	return convertFile(path, opts, promptOverwrite)
}

// convertFile runs one conversion pass and writes both output files plus the
// console checksum grid. confirm decides whether an existing .prg may be
// replaced; nil means overwrite silently.
func convertFile(path string, opts convert.Options, confirm func(string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrInputRead,
			"file read failed - please check source file name and path", err)
	}
	raw, err := convert.ReadLines(f)
	f.Close()
	if err != nil {
		return err
	}

	result, err := convert.Convert(raw, opts)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	if err := WriteBinary(stem+".prg", result.Image, confirm); err != nil {
		return err
	}
	if err := WriteChecksumFile(stem+".chk", result.Checksums); err != nil {
		return err
	}

	fmt.Println("Line Checksums:")
	fmt.Println()
	PrintChecksums(os.Stdout, result.Checksums, terminalWidth())
	return nil
}

// parseLoadAddr parses a 16-bit hex load address like 0x0801.
func parseLoadAddr(s string) (uint16, error) {
	addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid load address %q: expected a 16-bit hex value like 0x0801", s)
	}
	return uint16(addr), nil
}

// withFormatSuggestion appends the closest supported source-format name to
// an unsupported-format error.
func withFormatSuggestion(err error, source string) error {
	ranks := fuzzy.RankFindFold(source, checksum.VariantNames())
	if len(ranks) == 0 {
		return err
	}
	sort.Sort(ranks)
	return fmt.Errorf("%w (did you mean %q?)", err, ranks[0].Target)
}

// promptOverwrite asks on stdin before an existing output file is replaced.
func promptOverwrite(path string) bool {
	fmt.Printf("Output file %q already exists. Overwrite? (Y = yes) ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
