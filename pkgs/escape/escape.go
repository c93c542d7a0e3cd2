// Package escape rewrites Ahoy magazine special-character notation into
// canonical petcat escape tokens and validates that every brace or bracket
// on a line belongs to a well-formed escape span.
package escape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/retroforge/typein/pkgs/charset"
	"github.com/retroforge/typein/pkgs/errors"
	"github.com/retroforge/typein/pkgs/listing"
)

// Span grammar, matched greedily left to right:
//   - repeat form  {N "X"}  with an optional space after the count
//   - simple form  {X}
// The first character of the payload may be anything (including a brace left
// over from bracket rewriting); the rest runs lazily to the first closing
// brace without crossing an opening one.
var (
	spanPattern    = regexp.MustCompile(`\{\d+\s?".[^{]*?"\}|\{.[^{]*?\}`)
	repeatPattern  = regexp.MustCompile(`^\{(\d+)\s?".+?"\}$`)
	payloadPattern = regexp.MustCompile(`"(.+?)"`)
	loosePattern   = regexp.MustCompile(`[{}]`)
)

// Normalize rewrites one line of listing text to canonical form: brackets
// become braces, Ahoy codes become petcat tokens, and repeat literals are
// expanded in place. The text outside recognized spans passes through
// untouched. Returns ErrLooseBrace when a brace is not part of any span.
//
// Normalize is idempotent: canonical petcat tokens have no entry in the Ahoy
// map and survive a second pass unchanged.
func Normalize(ln listing.SourceLine) (listing.SourceLine, error) {
	// Ahoy printed both brackets and braces over the years; they are
	// interchangeable in source listings.
	text := strings.NewReplacer("[", "{", "]", "}").Replace(ln.Text)

	spans := spanPattern.FindAllStringIndex(text, -1)

	// Every brace must sit inside a recognized span. A brace in a gap means
	// an unmatched delimiter or one nested where it cannot belong.
	last := 0
	for _, span := range spans {
		if loosePattern.MatchString(text[last:span[0]]) {
			return listing.SourceLine{}, errors.NewLooseBraceError(ln.Number)
		}
		last = span[1]
	}
	if loosePattern.MatchString(text[last:]) {
		return listing.SourceLine{}, errors.NewLooseBraceError(ln.Number)
	}

	if len(spans) == 0 {
		return listing.SourceLine{Number: ln.Number, Text: text}, nil
	}

	// Interleave the untouched gaps with the substituted spans in original
	// order.
	var out strings.Builder
	last = 0
	for _, span := range spans {
		out.WriteString(text[last:span[0]])
		out.WriteString(substitute(text[span[0]:span[1]]))
		last = span[1]
	}
	out.WriteString(text[last:])

	return listing.SourceLine{Number: ln.Number, Text: out.String()}, nil
}

// substitute maps one recognized span to its canonical replacement text.
func substitute(span string) string {
	// Exact Ahoy code, e.g. {WH} or {CLEAR}.
	if token, ok := charset.AhoyToPetcat[strings.ToUpper(span)]; ok {
		return token
	}

	// Repeat form {N "X"}: the payload is expanded N times, mapped through
	// the Ahoy table when it is a known code and kept as literal text when
	// it is not.
	if repeatPattern.MatchString(span) {
		count, _ := strconv.Atoi(repeatPattern.FindStringSubmatch(span)[1])
		payload := payloadPattern.FindStringSubmatch(span)[1]
		if token, ok := charset.AhoyToPetcat[strings.ToUpper(payload)]; ok {
			payload = token
		}
		return strings.Repeat(payload, count)
	}

	// Unrecognized simple span: pass through as literal text.
	return span
}
