package record

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Record is the capability surface the detail view needs from a data source:
// enumerate candidate field names and read a value by name. Adapters exist for
// maps and structs; anything else can implement the interface directly.
type Record interface {
	FieldNames() []string
	Field(name string) (any, bool)
}

// AttributeLister is implemented by records that declare the fixed set of
// attributes they want displayed, overriding plain field enumeration.
type AttributeLister interface {
	Attributes() []string
}

// LabelProvider supplies display labels keyed by field name. Records that
// carry their own label metadata implement this to override derived labels.
type LabelProvider interface {
	AttributeLabels() map[string]string
}

// FromAny coerces a value into a Record. Accepted shapes: an existing Record
// implementation, a map with string keys, or a struct (optionally behind
// pointers).
func FromAny(value any) (Record, error) {
	if value == nil {
		return nil, fmt.Errorf("record: value is required")
	}
	if rec, ok := value.(Record); ok {
		return rec, nil
	}
	if m, ok := value.(map[string]any); ok {
		return Map(m), nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("record: value is a nil pointer")
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("record: map keys must be strings, got %s", rv.Type().Key())
		}
		out := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		return newStructRecord(rv), nil
	default:
		return nil, fmt.Errorf("record: unsupported value type %T", value)
	}
}

// Map adapts a plain map to the Record interface.
type Map map[string]any

// FieldNames returns the map keys in sorted order so enumeration is
// deterministic regardless of map iteration.
func (m Map) FieldNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field reads a value by key. The second return reports key presence, so a
// stored nil is distinguishable from a missing key.
func (m Map) Field(name string) (any, bool) {
	value, ok := m[name]
	return value, ok
}

// Lookup reads a possibly dotted path off a record, traversing nested maps,
// structs and Record implementations segment by segment. A plain name is a
// single-segment path.
func Lookup(rec Record, path string) (any, bool) {
	segments := strings.Split(path, ".")
	value, ok := rec.Field(segments[0])
	if !ok {
		return nil, false
	}
	for _, segment := range segments[1:] {
		nested, err := FromAny(value)
		if err != nil {
			return nil, false
		}
		value, ok = nested.Field(segment)
		if !ok {
			return nil, false
		}
	}
	return value, true
}
