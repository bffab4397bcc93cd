package attr

import (
	"regexp"
	"strings"
)

// FormatText is the format kind applied when a spec does not name one.
const FormatText = "text"

// Spec is the structured form of an attribute specification. Either Name must
// be set, or both Label and an explicit value; anything less cannot be
// resolved. Name may be a dotted path into nested records.
type Spec struct {
	// Name identifies the record field to read.
	Name string
	// Label overrides the derived display label when non-empty.
	Label string
	// Value is the explicit, pre-resolved value. It only applies when
	// HasValue is set, so zero values remain expressible.
	Value any
	// HasValue marks Value as explicitly supplied. An explicit value always
	// wins over re-reading the record, even when it is zero or nil.
	HasValue bool
	// Format names the format kind, defaulting to "text".
	Format string
	// Visible drops the spec from the output when set to false. Nil means
	// visible.
	Visible *bool
}

// WithValue returns a copy of the spec carrying an explicit value.
func (s Spec) WithValue(value any) Spec {
	s.Value = value
	s.HasValue = true
	return s
}

// Resolved is a fully computed attribute ready for rendering. It never reads
// back into the record.
type Resolved struct {
	Label  string
	Value  any
	Format string
}

// Bare string specs follow `name` or `name:format`, identifiers only, with
// optional whitespace around the colon.
var stringSpecPattern = regexp.MustCompile(`^(\w+)(?:\s*:\s*(\w+))?$`)

// ParseString parses a bare string spec into its structured form.
func ParseString(raw string) (Spec, error) {
	match := stringSpecPattern.FindStringSubmatch(raw)
	if match == nil {
		return Spec{}, ConfigErrorf("attr: malformed attribute specification %q", raw)
	}
	spec := Spec{Name: match[1], Format: strings.TrimSpace(match[2])}
	if spec.Format == "" {
		spec.Format = FormatText
	}
	return spec, nil
}
