// Package position translates byte offsets produced by the scanner back
// into line/character coordinates in the original document, for consumers
// that report diagnostics. Lines are 0-based; characters are UTF-16 code
// units, matching editor protocol positions.
package position

import (
	"strings"
	"unicode/utf8"
)

// Position is a 0-based line and UTF-16 character offset within a document
type Position struct {
	Line      uint32
	Character uint32
}

// OffsetToPosition converts a byte offset into source to a Position.
// Offsets past the end of source clamp to the final position.
func OffsetToPosition(source string, byteOffset int) Position {
	if byteOffset < 0 {
		byteOffset = 0
	}
	if byteOffset > len(source) {
		byteOffset = len(source)
	}

	prefix := source[:byteOffset]
	line := strings.Count(prefix, "\n")

	lineStart := strings.LastIndexByte(prefix, '\n') + 1

	return Position{
		Line:      uint32(line),                                  //nolint:gosec // G115: line counts are bounded by document length
		Character: uint32(StringLengthUTF16(prefix[lineStart:])), //nolint:gosec // G115: column counts are bounded by document length
	}
}

// ByteOffsetToUTF16 converts a byte offset within s to a UTF-16 code unit
// offset. Offsets that land mid-rune clamp to the start of that rune.
func ByteOffsetToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	units := 0
	at := 0
	for at < byteOffset {
		r, size := utf8.DecodeRuneInString(s[at:])
		if size == 0 || at+size > byteOffset {
			break
		}
		units += utf16RuneLen(r)
		at += size
	}
	return units
}

// UTF16ToByteOffset converts a UTF-16 code unit offset to a byte offset
// within s. Offsets that land inside a surrogate pair clamp to the start
// of the rune.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	at := 0
	for at < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[at:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte: count as one unit and move on
			at++
			units++
			continue
		}

		runeLen := utf16RuneLen(r)
		if runeLen == 2 && units+1 == utf16Col {
			break
		}

		units += runeLen
		at += size
	}
	return at
}

// utf16RuneLen mirrors utf16.RuneLen, which is unavailable before Go 1.23:
// it returns the number of 16-bit words in the UTF-16 encoding of r, or -1
// if r cannot be encoded in UTF-16.
func utf16RuneLen(r rune) int {
	switch {
	case 0 <= r && r < 0xD800, 0xE000 <= r && r < 0x10000:
		return 1
	case 0x10000 <= r && r <= 0x10FFFF:
		return 2
	default:
		return -1
	}
}

// StringLengthUTF16 returns the length of s in UTF-16 code units
func StringLengthUTF16(s string) int {
	units := 0
	for _, r := range s {
		units += utf16RuneLen(r)
	}
	return units
}
