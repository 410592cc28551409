// Package mpxscan extracts embedded script blocks from MPX single-file
// components. It is the extraction front end for lint/analysis pipelines:
// each extracted region carries its source text, a resolved language
// descriptor, and the byte offset of the text in the original document,
// so downstream diagnostics can be mapped back into document coordinates
// (see the position package).
package mpxscan

import (
	"path/filepath"
	"strings"

	"bennypowers.dev/mpxscan/parser/mpx"
	"bennypowers.dev/mpxscan/sourcetype"
)

// scriptLanguages maps language IDs to script-region extraction support
var scriptLanguages = map[string]bool{
	"mpx": true,
}

// IsSupportedLanguage returns true if the language ID supports script extraction
func IsSupportedLanguage(languageID string) bool {
	return scriptLanguages[languageID]
}

// LanguageIDForPath returns the language ID for a file path, or "" when the
// path's extension is not a supported component format
func LanguageIDForPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if scriptLanguages[ext] {
		return ext
	}
	return ""
}

// ScriptRegions extracts script regions from a document of the given
// language ID. Unsupported language IDs yield nil, not an error.
func ScriptRegions(content, languageID string) []mpx.ScriptRegion {
	return ScriptRegionsWithRegistry(content, languageID, sourcetype.DefaultRegistry)
}

// ScriptRegionsWithRegistry is ScriptRegions with a caller-supplied
// language token registry
func ScriptRegionsWithRegistry(content, languageID string, registry *sourcetype.Registry) []mpx.ScriptRegion {
	switch languageID {
	case "mpx":
		return mpx.NewWithRegistry(registry).ParseScriptRegions(content)
	default:
		return nil
	}
}

// ScriptRegionsForPath extracts script regions from a document, inferring
// the language ID from the file path's extension
func ScriptRegionsForPath(path, content string) []mpx.ScriptRegion {
	languageID := LanguageIDForPath(path)
	if languageID == "" {
		return nil
	}
	return ScriptRegions(content, languageID)
}
