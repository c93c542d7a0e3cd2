// Package scanner encodes canonical listing text into the byte form the
// Commodore BASIC interpreter stores in memory: one byte per keyword, petcat
// escape, or literal character, with a terminating zero.
package scanner

import (
	"strings"

	"github.com/retroforge/typein/pkgs/charset"
	"github.com/retroforge/typein/pkgs/listing"
)

// EncodedLine is the byte encoding of one program line. Bytes always ends
// with a single 0 terminator.
type EncodedLine struct {
	Number int
	Bytes  []byte
}

// Encode scans a canonical line and returns its byte encoding.
func Encode(ln listing.SourceLine) EncodedLine {
	return EncodedLine{Number: ln.Number, Bytes: Scan(ln.Text)}
}

// Scan consumes line text left to right, one byte per step, and appends the
// 0 terminator. Two state flags thread through the scan: inQuotes toggles on
// every quote byte and suspends keyword matching; inRemark is set when the
// REM token is emitted and never clears, so everything after a remark stays
// literal even past a later quote.
func Scan(text string) []byte {
	inQuotes := false
	inRemark := false
	bytes := make([]byte, 0, len(text)+1)

	for text != "" {
		b, rest := scanOne(text, !(inQuotes || inRemark))
		bytes = append(bytes, b)
		text = rest

		if b == charset.Quote {
			inQuotes = !inQuotes
		}
		if b == charset.Rem {
			inRemark = true
		}
	}

	return append(bytes, 0)
}

// scanOne matches the start of text against the token tables in priority
// order and returns the encoded byte and the unconsumed remainder. There is
// no backtracking; the first match is final.
func scanOne(text string, tokenize bool) (byte, string) {
	// Petcat escapes and shifted/Commodore-key escapes are recognized in
	// every state, including inside quotes and remarks.
	for _, tok := range charset.PetcatTokens {
		if strings.HasPrefix(text, tok.Text) {
			return tok.Code, text[len(tok.Text):]
		}
	}
	for _, tok := range charset.ShiftCommodoreTokens {
		if strings.HasPrefix(text, tok.Text) {
			return tok.Code, text[len(tok.Text):]
		}
	}

	// BASIC keywords tokenize only outside quotes and remarks.
	if tokenize {
		for _, tok := range charset.BasicTokens {
			if strings.HasPrefix(text, tok.Text) {
				return tok.Code, text[len(tok.Text):]
			}
		}
	}

	// Literal character. PETSCII has no lowercase tier where ASCII does, so
	// lowercase letters shift down to the uppercase-range codes. The shift
	// is range-guarded rather than a general case fold.
	b := text[0]
	if b >= 'a' && b <= 'z' {
		b -= 32
	}
	return b, text[1:]
}
