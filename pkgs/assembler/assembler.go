// Package assembler folds encoded program lines into the flat binary image
// a Commodore machine loads: a two-byte load address, then each line as a
// linked-list record pointing at its successor, closed by a zero-address
// sentinel.
package assembler

import (
	"encoding/binary"

	"github.com/retroforge/typein/pkgs/scanner"
)

// Load addresses for the supported target machines. Which one applies is
// configuration; the assembler treats the address as an opaque 16-bit start.
const (
	LoadAddrC64      uint16 = 0x0801
	LoadAddrVIC20    uint16 = 0x1001
	LoadAddrVIC20_3K uint16 = 0x0401
	LoadAddrVIC20_8K uint16 = 0x1201
)

// Assemble chains the encoded lines into a program image starting at
// loadAddr. Each record is [next_lo, next_hi, number_lo, number_hi,
// bytes...] where next is the address immediately after this record's own
// byte run - the address the interpreter jumps to for the following line.
// Lines must already be in ascending number order.
func Assemble(lines []scanner.EncodedLine, loadAddr uint16) []byte {
	size := 4 // load address + sentinel
	for _, ln := range lines {
		size += 4 + len(ln.Bytes)
	}

	image := make([]byte, 0, size)
	image = binary.LittleEndian.AppendUint16(image, loadAddr)

	addr := loadAddr
	for _, ln := range lines {
		next := addr + 4 + uint16(len(ln.Bytes))
		image = binary.LittleEndian.AppendUint16(image, next)
		image = binary.LittleEndian.AppendUint16(image, uint16(ln.Number))
		image = append(image, ln.Bytes...)
		addr = next
	}

	// zero next-line address: end of program
	return append(image, 0, 0)
}
