// Package mpx extracts embedded <script> blocks from MPX single-file
// components so that each block can be handed to a downstream analyzer in
// isolation, tagged with its source language and its byte offset in the
// original document.
package mpx

import (
	"strings"
	"unicode"

	"bennypowers.dev/mpxscan/internal/log"
	"bennypowers.dev/mpxscan/sourcetype"
)

// defaultLangToken is assumed when a script tag carries no usable lang
// attribute. JSON config blocks (type="application/json", name="json")
// carry no lang attribute either and resolve through this token; telling
// their bodies apart from scripts is the consumer's concern.
const defaultLangToken = "mjs"

// Parser extracts script regions from MPX documents.
// The zero value is not usable; construct with New or NewWithRegistry.
type Parser struct {
	registry *sourcetype.Registry
}

// New creates a parser that resolves lang tokens via sourcetype.DefaultRegistry
func New() *Parser {
	return NewWithRegistry(sourcetype.DefaultRegistry)
}

// NewWithRegistry creates a parser that resolves lang tokens via registry
func NewWithRegistry(registry *sourcetype.Registry) *Parser {
	return &Parser{registry: registry}
}

// ParseScriptRegions scans an MPX document and returns its script regions
// in document order. MPX files can contain multiple <script> blocks (the
// component script plus JSON config blocks). Regions inside HTML comments
// are skipped, blocks with an unresolvable lang token are dropped, and an
// unterminated <script> tag ends the scan; none of these is an error, so
// an empty result only means no extractable blocks were found.
func (p *Parser) ParseScriptRegions(source string) []ScriptRegion {
	var regions []ScriptRegion
	cursor := 0

	for {
		region, ok := p.parseScript(source, &cursor)
		if !ok {
			break
		}
		regions = append(regions, region)
	}

	return regions
}

// parseScript extracts the next script region at or after *cursor.
// Retries (commented-out candidates, look-alike tag names, unknown lang
// tokens) re-enter the same loop with the cursor advanced; the cursor
// never moves backwards.
func (p *Parser) parseScript(source string, cursor *int) (ScriptRegion, bool) {
	for {
		start := findScriptStart(source, *cursor)
		if start < 0 {
			return ScriptRegion{}, false
		}
		*cursor = start + len(scriptStart)

		// A longer tag name like <script-view /> is an ordinary element
		rest := source[*cursor:]
		if rest == "" || (rest[0] != ' ' && rest[0] != '>') {
			continue
		}

		closing := findClosingAngle(source, *cursor)
		if closing < 0 {
			return ScriptRegion{}, false
		}

		token := extractLangAttribute(source[*cursor:closing])
		sourceType, err := p.registry.Resolve(token)
		if err != nil {
			log.Debug("Dropping script block at offset %d: %v", start, err)
			*cursor = closing + 1
			continue
		}

		// lang tokens without an x (js, cjs, ts, ...) never permit JSX,
		// even when the registry's default for the token does
		if !strings.ContainsRune(token, 'x') {
			sourceType = sourceType.WithJSX(false)
		}

		bodyStart := closing + 1

		end := strings.Index(source[bodyStart:], scriptEnd)
		if end < 0 {
			log.Debug("Unterminated <script> tag at offset %d; stopping scan", start)
			return ScriptRegion{}, false
		}
		bodyEnd := bodyStart + end
		*cursor = bodyEnd + len(scriptEnd)

		return ScriptRegion{
			Source: source[bodyStart:bodyEnd],
			Type:   sourceType,
			Start:  uint32(bodyStart), //nolint:gosec // G115: offsets are bounded by document length
		}, true
	}
}

// extractLangAttribute pulls the lang attribute value out of the raw tag
// interior (the text between `<script` and the tag's `>`), returning the
// default token when the attribute is absent or malformed.
//
// The lookup is a substring search for the literal text "lang", not a full
// attribute-name match: an attribute named data-lang, or the text "lang"
// inside another attribute's value, matches too. Known limitation, kept
// for parity with how MPX tooling reads the attribute.
func extractLangAttribute(interior string) string {
	interior = strings.TrimSpace(interior)

	langIndex := strings.Index(interior, "lang")
	if langIndex < 0 {
		return defaultLangToken
	}

	rest := strings.TrimLeftFunc(interior[langIndex+len("lang"):], unicode.IsSpace)
	if !strings.HasPrefix(rest, "=") {
		return defaultLangToken
	}
	rest = strings.TrimLeftFunc(rest[1:], unicode.IsSpace)
	if rest == "" {
		return defaultLangToken
	}

	switch quote := rest[0]; quote {
	case '"', '\'':
		rest = rest[1:]
		end := strings.IndexByte(rest, quote)
		if end < 0 {
			return defaultLangToken
		}
		return rest[:end]
	default:
		end := strings.IndexFunc(rest, func(r rune) bool {
			return unicode.IsSpace(r) || r == '>'
		})
		if end < 0 {
			return rest
		}
		return rest[:end]
	}
}
