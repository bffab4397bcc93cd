package format

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-detailview/pkg/attr"
)

// Func turns a raw value into display text. Implementations decide escaping;
// the renderer inserts their output verbatim.
type Func func(value any) (string, error)

// Registry maps format kinds to formatter functions. The zero set of builtins
// covers text/html/raw plus the common scalar kinds; callers extend or
// replace entries per instance.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Func
	nullText   string
}

// Option customises a registry during construction.
type Option func(*Registry)

// WithNullText sets the text emitted for nil values, bypassing formatter
// dispatch. It is inserted verbatim, so markup is allowed.
func WithNullText(text string) Option {
	return func(r *Registry) {
		r.nullText = text
	}
}

// WithFormatter registers (or replaces) a formatter during construction.
func WithFormatter(kind string, fn Func) Option {
	return func(r *Registry) {
		r.register(kind, fn)
	}
}

// NewRegistry constructs a registry with the built-in formatters installed.
func NewRegistry(options ...Option) *Registry {
	reg := &Registry{
		formatters: make(map[string]Func),
	}
	reg.registerBuiltins()
	for _, opt := range options {
		if opt != nil {
			opt(reg)
		}
	}
	return reg
}

// Register adds or replaces a formatter for the given kind.
func (r *Registry) Register(kind string, fn Func) {
	r.register(kind, fn)
}

func (r *Registry) register(kind string, fn Func) {
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[trimmed] = fn
}

// Has reports whether a format kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.formatters[kind]
	return ok
}

// Kinds returns the registered format kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.formatters))
	for kind := range r.formatters {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Format renders a value through the named format kind. Nil values short to
// the configured null text without dispatching. Unknown kinds are a
// configuration error.
func (r *Registry) Format(value any, kind string) (string, error) {
	if value == nil {
		return r.nullText, nil
	}

	r.mu.RLock()
	fn, ok := r.formatters[kind]
	r.mu.RUnlock()
	if !ok {
		return "", attr.ConfigErrorf("format: unsupported format kind %q", kind)
	}
	return fn(value)
}
