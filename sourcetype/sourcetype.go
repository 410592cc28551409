package sourcetype

// Language identifies the scripting language of an extracted source
type Language int

const (
	// JavaScript covers plain ECMAScript sources
	JavaScript Language = iota
	// TypeScript covers typed sources, including the tsx variant
	TypeScript
)

// String returns the lowercase language name
func (l Language) String() string {
	switch l {
	case TypeScript:
		return "typescript"
	default:
		return "javascript"
	}
}

// ModuleKind identifies how a source participates in the module system
type ModuleKind int

const (
	// Module is an ECMAScript module (import/export)
	Module ModuleKind = iota
	// CommonJS is a require/module.exports source
	CommonJS
)

// String returns the lowercase module kind name
func (k ModuleKind) String() string {
	switch k {
	case CommonJS:
		return "commonjs"
	default:
		return "module"
	}
}

// SourceType describes the language of an extracted script region.
// JSX reports whether inline markup-like expression syntax is permitted
// within the source; the scanner may clear it based on the lang token.
type SourceType struct {
	Language   Language
	ModuleKind ModuleKind
	JSX        bool
}

// WithJSX returns a copy of the source type with the JSX flag set to jsx
func (t SourceType) WithJSX(jsx bool) SourceType {
	t.JSX = jsx
	return t
}

// IsTypeScript reports whether the source type is a TypeScript variant
func (t SourceType) IsTypeScript() bool {
	return t.Language == TypeScript
}

// String returns a compact description, e.g. "typescript/module+jsx"
func (t SourceType) String() string {
	s := t.Language.String() + "/" + t.ModuleKind.String()
	if t.JSX {
		s += "+jsx"
	}
	return s
}
