package mpx

import "strings"

const (
	scriptStart  = "<script"
	scriptEnd    = "</script>"
	commentStart = "<!--"
	commentEnd   = "-->"
)

// findScriptStart returns the offset of the next `<script` occurrence at or
// after from that is not enclosed by an HTML comment, or -1 if none remains.
// A candidate counts as commented-out when the nearest `<!--` before it is
// closed by a `-->` that lies past the candidate; the search then resumes
// after that `-->`.
func findScriptStart(source string, from int) int {
	for {
		rel := strings.Index(source[from:], scriptStart)
		if rel < 0 {
			return -1
		}
		candidate := from + rel

		open := strings.LastIndex(source[:candidate], commentStart)
		if open >= 0 {
			if rel := strings.Index(source[open+1:], commentEnd); rel >= 0 {
				closed := open + 1 + rel
				if closed > candidate {
					from = closed + len(commentEnd)
					continue
				}
			}
		}

		return candidate
	}
}

type angleState int

const (
	angleNormal angleState = iota
	angleSingleQuote
	angleDoubleQuote
)

// findClosingAngle returns the offset of the `>` that terminates the tag
// whose attribute list begins at from, or -1 if the document ends first.
// Single- and double-quoted spans are opaque: a `>` inside them does not
// terminate the tag. Quotes have no escape handling; a quoted span ends at
// the next matching quote character.
func findClosingAngle(source string, from int) int {
	state := angleNormal
	for i := from; i < len(source); i++ {
		switch state {
		case angleNormal:
			switch source[i] {
			case '>':
				return i
			case '\'':
				state = angleSingleQuote
			case '"':
				state = angleDoubleQuote
			}
		case angleSingleQuote:
			if source[i] == '\'' {
				state = angleNormal
			}
		case angleDoubleQuote:
			if source[i] == '"' {
				state = angleNormal
			}
		}
	}
	return -1
}
