// Package text translates between the two legacy colour code conventions used in chat text.
//
// A colour code is a marker character followed by a single character from the code alphabet:
//
//	0-9 a-f   Colours
//	k         Obfuscated
//	l         Bold
//	m         Strikethrough
//	n         Underline
//	o         Italic
//	r         Reset
//
// The alphabet is case insensitive. Two markers are in use: the Trigger marker ('&') which is easy to type, and the
// Native marker ('§') which is what clients actually render.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Markers used to indicate that the following character is a colour code
const (
	Trigger = '&'
	Native  = '\u00a7' // §
)

// CodeAlphabet holds every character that is valid directly after a marker
const CodeAlphabet = "0123456789AaBbCcDdEeFfKkLlMmNnOoRr"

// IsCode returns whether or not the given rune is part of the code alphabet
func IsCode(r rune) bool {
	return strings.ContainsRune(CodeAlphabet, r)
}

// TranslateAlternateColourCodes replaces every from marker that is directly followed by a character in the code
// alphabet with the to marker, and lower cases the code character. Everything else, including bytes that are not
// valid UTF-8, is copied as is.
//
// The scan is a single left to right pass that only ever tests the characters it is currently on, meaning markers
// written by this function are never themselves translated. The returned string has the same number of runes as the
// input.
func TranslateAlternateColourCodes(from, to rune, in string) string {
	out := strings.Builder{}
	out.Grow(len(in))

	cur, size := utf8.DecodeRuneInString(in)
	raw := in[:size]

	for pos := size; raw != ""; {
		next, nextSize := utf8.DecodeRuneInString(in[pos:])
		nextRaw := in[pos : pos+nextSize]

		if isMarker(cur, size, from) && IsCode(next) {
			out.WriteRune(to)

			// codes are all ASCII
			next = unicode.ToLower(next)
			nextRaw = string(next)
		} else {
			out.WriteString(raw)
		}

		cur, size, raw = next, nextSize, nextRaw
		pos += nextSize
	}

	return out.String()
}

// isMarker returns whether a decoded rune of the given size is the marker. Invalid bytes never are
func isMarker(r rune, size int, marker rune) bool {
	return r == marker && (r != utf8.RuneError || size > 1)
}

// Colourise converts Trigger codes to Native codes
func Colourise(in string) string { return TranslateAlternateColourCodes(Trigger, Native, in) }

// Decolourise converts Native codes to Trigger codes
func Decolourise(in string) string { return TranslateAlternateColourCodes(Native, Trigger, in) }

// ColourisePtr is Colourise for text that may be absent. nil is returned as nil
func ColourisePtr(in *string) *string {
	if in == nil {
		return nil
	}

	out := Colourise(*in)

	return &out
}

// DecolourisePtr is Decolourise for text that may be absent. nil is returned as nil
func DecolourisePtr(in *string) *string {
	if in == nil {
		return nil
	}

	out := Decolourise(*in)

	return &out
}

// StripCodes removes every marker and code pair from the given string. A marker with no valid code after it is kept,
// as is everything else
func StripCodes(marker rune, in string) string {
	out := strings.Builder{}

	for i := 0; i < len(in); {
		r, size := utf8.DecodeRuneInString(in[i:])
		if isMarker(r, size, marker) {
			if code, codeSize := utf8.DecodeRuneInString(in[i+size:]); IsCode(code) {
				i += size + codeSize
				continue
			}
		}

		out.WriteString(in[i : i+size])
		i += size
	}

	return out.String()
}

// JoinNewline joins the given lines with newlines
func JoinNewline(lines ...string) string {
	return strings.Join(lines, "\n")
}
