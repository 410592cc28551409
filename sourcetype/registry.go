package sourcetype

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownLanguage is returned by Resolve for tokens with no registered descriptor
var ErrUnknownLanguage = errors.New("unknown language token")

// Registry maps lang tokens to source type descriptors
type Registry struct {
	types map[string]SourceType
	mu    sync.RWMutex
}

// DefaultRegistry is the global token registry, preloaded with the
// standard ECMAScript and TypeScript extension tokens
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry preloaded with the built-in tokens.
// Plain JavaScript tokens permit JSX by default; the scanner demotes
// them when the token itself carries no x.
func NewRegistry() *Registry {
	r := &Registry{
		types: make(map[string]SourceType),
	}

	r.Register("js", SourceType{Language: JavaScript, ModuleKind: Module, JSX: true})
	r.Register("mjs", SourceType{Language: JavaScript, ModuleKind: Module, JSX: true})
	r.Register("cjs", SourceType{Language: JavaScript, ModuleKind: CommonJS, JSX: true})
	r.Register("jsx", SourceType{Language: JavaScript, ModuleKind: Module, JSX: true})
	r.Register("ts", SourceType{Language: TypeScript, ModuleKind: Module})
	r.Register("mts", SourceType{Language: TypeScript, ModuleKind: Module})
	r.Register("cts", SourceType{Language: TypeScript, ModuleKind: CommonJS})
	r.Register("tsx", SourceType{Language: TypeScript, ModuleKind: Module, JSX: true})

	return r
}

// Register adds or replaces the descriptor for a token
func (r *Registry) Register(token string, t SourceType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[token] = t
}

// Resolve returns the descriptor for a token.
// Returns an error wrapping ErrUnknownLanguage when the token is not registered.
func (r *Registry) Resolve(token string) (SourceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[token]
	if !ok {
		return SourceType{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, token)
	}
	return t, nil
}

// Tokens returns all registered tokens
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.types))
	for token := range r.types {
		tokens = append(tokens, token)
	}
	return tokens
}
