package attr

import (
	"sort"
	"strings"

	"github.com/goliatone/go-detailview/internal/naming"
	"github.com/goliatone/go-detailview/pkg/record"
)

// LabelResolver derives a display label for a named field.
type LabelResolver func(rec record.Record, name string) string

// ValueResolver reads a named field off the record, including through any
// record-specific indirection such as nested records.
type ValueResolver func(rec record.Record, name string) any

// Option customises normalization.
type Option func(*config)

type config struct {
	labels LabelResolver
	values ValueResolver
}

// WithLabelResolver swaps the label resolution hook.
func WithLabelResolver(fn LabelResolver) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.labels = fn
		}
	}
}

// WithValueResolver swaps the value access hook.
func WithValueResolver(fn ValueResolver) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.values = fn
		}
	}
}

// DefaultLabelResolver prefers label metadata carried by the record and falls
// back to deriving a label from the field name. For dotted paths only the
// last segment is humanized.
func DefaultLabelResolver(rec record.Record, name string) string {
	if provider, ok := rec.(record.LabelProvider); ok {
		if label := provider.AttributeLabels()[name]; label != "" {
			return label
		}
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return naming.Humanize(name)
}

// DefaultValueResolver reads the named field, traversing dotted paths. A
// field the record does not expose resolves to nil.
func DefaultValueResolver(rec record.Record, name string) any {
	value, _ := record.Lookup(rec, name)
	return value
}

// Normalize turns a heterogeneous spec list (strings, Spec values, or
// map-shaped specs) into resolved attributes, preserving input order. A nil
// spec list derives one from the record: the record's declared attribute list
// when it offers one, otherwise its enumerable field names, sorted
// lexicographically either way. Invisible specs are dropped without leaving a
// gap. The resolved output never reads back into the record.
func Normalize(rec record.Record, specs []any, options ...Option) ([]Resolved, error) {
	if rec == nil {
		return nil, ConfigErrorf("attr: record is required")
	}

	cfg := config{
		labels: DefaultLabelResolver,
		values: DefaultValueResolver,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if specs == nil {
		specs = deriveSpecs(rec)
	}

	resolved := make([]Resolved, 0, len(specs))
	for i, raw := range specs {
		spec, err := coerceSpec(raw, i)
		if err != nil {
			return nil, err
		}
		if spec.Visible != nil && !*spec.Visible {
			continue
		}
		entry, err := resolve(rec, spec, cfg, i)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, entry)
	}
	return resolved, nil
}

func deriveSpecs(rec record.Record) []any {
	var names []string
	if lister, ok := rec.(record.AttributeLister); ok {
		names = lister.Attributes()
	} else {
		names = rec.FieldNames()
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	specs := make([]any, 0, len(names))
	for _, name := range names {
		specs = append(specs, Spec{Name: name, Format: FormatText})
	}
	return specs
}

func coerceSpec(raw any, index int) (Spec, error) {
	switch value := raw.(type) {
	case string:
		return ParseString(value)
	case Spec:
		return value, nil
	case *Spec:
		if value == nil {
			return Spec{}, ConfigErrorf("attr: spec %d is nil", index)
		}
		return *value, nil
	case map[string]any:
		return specFromMap(value, index)
	default:
		return Spec{}, ConfigErrorf("attr: spec %d has unsupported type %T", index, raw)
	}
}

func specFromMap(m map[string]any, index int) (Spec, error) {
	var spec Spec
	for key, value := range m {
		switch key {
		case "name":
			name, ok := value.(string)
			if !ok {
				return Spec{}, ConfigErrorf("attr: spec %d: name must be a string, got %T", index, value)
			}
			spec.Name = name
		case "label":
			label, ok := value.(string)
			if !ok {
				return Spec{}, ConfigErrorf("attr: spec %d: label must be a string, got %T", index, value)
			}
			spec.Label = label
		case "value":
			// Key presence, not truthiness, decides explicit-value
			// precedence. A stored zero or nil still counts.
			spec.Value = value
			spec.HasValue = true
		case "format":
			format, ok := value.(string)
			if !ok {
				return Spec{}, ConfigErrorf("attr: spec %d: format must be a string, got %T", index, value)
			}
			spec.Format = format
		case "visible":
			switch visible := value.(type) {
			case bool:
				spec.Visible = &visible
			case nil:
				hidden := false
				spec.Visible = &hidden
			default:
				return Spec{}, ConfigErrorf("attr: spec %d: visible must be a boolean, got %T", index, value)
			}
		default:
			return Spec{}, ConfigErrorf("attr: spec %d has unknown key %q", index, key)
		}
	}
	return spec, nil
}

func resolve(rec record.Record, spec Spec, cfg config, index int) (Resolved, error) {
	format := strings.TrimSpace(spec.Format)
	if format == "" {
		format = FormatText
	}

	if spec.Name == "" {
		if spec.Label == "" || !spec.HasValue {
			return Resolved{}, ConfigErrorf("attr: spec %d requires name, or both label and value", index)
		}
		return Resolved{Label: spec.Label, Value: spec.Value, Format: format}, nil
	}

	label := spec.Label
	if label == "" {
		label = cfg.labels(rec, spec.Name)
	}
	value := spec.Value
	if !spec.HasValue {
		value = cfg.values(rec, spec.Name)
	}
	return Resolved{Label: label, Value: value, Format: format}, nil
}
