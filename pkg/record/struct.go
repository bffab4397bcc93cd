package record

import (
	"reflect"
	"strings"
)

// structRecord adapts a struct value. Exported fields are exposed under their
// json tag name when one is present, falling back to the Go field name.
// Fields tagged `json:"-"` are skipped.
type structRecord struct {
	value  reflect.Value
	names  []string
	fields map[string]reflect.StructField
}

func newStructRecord(rv reflect.Value) *structRecord {
	rec := &structRecord{
		value:  rv,
		fields: make(map[string]reflect.StructField),
	}
	for _, field := range reflect.VisibleFields(rv.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		if _, exists := rec.fields[name]; exists {
			continue
		}
		rec.names = append(rec.names, name)
		rec.fields[name] = field
	}
	return rec
}

func (r *structRecord) FieldNames() []string {
	return append([]string(nil), r.names...)
}

func (r *structRecord) Field(name string) (any, bool) {
	field, ok := r.fields[name]
	if !ok {
		return nil, false
	}
	value := r.value.FieldByIndex(field.Index)
	return value.Interface(), true
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
