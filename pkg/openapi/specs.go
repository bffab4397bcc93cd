package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-detailview/pkg/attr"
	"github.com/goliatone/go-detailview/pkg/format"
)

// SpecsFromDocument loads an OpenAPI document and derives attribute specs
// from the named component schema. This lets a detail view reuse the same
// schema metadata (titles, formats) that drives the rest of an API surface.
func SpecsFromDocument(ctx context.Context, payload []byte, component string) ([]any, error) {
	if len(payload) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(payload)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("openapi: schema %q not found", component)
	}
	return SpecsFromSchemaRef(ref)
}

// SpecsFromSchemaRef unwraps a schema reference.
func SpecsFromSchemaRef(ref *openapi3.SchemaRef) ([]any, error) {
	if ref == nil || ref.Value == nil {
		return nil, errors.New("openapi: schema reference is empty")
	}
	return SpecsFromSchema(ref.Value)
}

// SpecsFromSchema converts an object schema's properties into structured
// attribute specs: property title becomes the label, type/format pick the
// format kind, and writeOnly properties are hidden. Properties are emitted
// in sorted name order; the schema carries no meaningful ordering.
func SpecsFromSchema(schema *openapi3.Schema) ([]any, error) {
	if schema == nil {
		return nil, errors.New("openapi: schema is required")
	}
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: schema has no properties to display")
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]any, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			specs = append(specs, attr.Spec{Name: name, Format: format.KindText})
			continue
		}
		property := ref.Value

		spec := attr.Spec{
			Name:   name,
			Label:  property.Title,
			Format: formatKind(property),
		}
		if property.WriteOnly {
			hidden := false
			spec.Visible = &hidden
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func formatKind(schema *openapi3.Schema) string {
	switch schemaType(schema.Type) {
	case "boolean":
		return format.KindBoolean
	case "integer":
		return format.KindInteger
	case "number":
		return format.KindDecimal
	case "string":
		switch schema.Format {
		case "date":
			return format.KindDate
		case "date-time":
			return format.KindDatetime
		case "email":
			return format.KindEmail
		case "uri", "url":
			return format.KindURL
		default:
			return format.KindText
		}
	default:
		return format.KindText
	}
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
