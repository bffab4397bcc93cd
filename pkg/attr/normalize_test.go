package attr

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-detailview/pkg/record"
)

type profile struct {
	names  []string
	labels map[string]string
	values map[string]any
}

func (p profile) FieldNames() []string { return p.names }

func (p profile) Field(name string) (any, bool) {
	value, ok := p.values[name]
	return value, ok
}

func (p profile) Attributes() []string { return p.names }

func (p profile) AttributeLabels() map[string]string { return p.labels }

func TestNormalize_StringSpecs(t *testing.T) {
	rec := record.Map{"title": "Hi", "description": "<b>x</b>"}

	resolved, err := Normalize(rec, []any{"title", "description:html"})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := []Resolved{
		{Label: "Title", Value: "Hi", Format: "text"},
		{Label: "Description", Value: "<b>x</b>", Format: "html"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("resolved mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MalformedStringSpec(t *testing.T) {
	rec := record.Map{"a": 1}
	for _, input := range []string{"bad name", "a:b:c"} {
		if _, err := Normalize(rec, []any{input}); !IsConfigurationError(err) {
			t.Fatalf("Normalize(%q) err = %v, want ConfigurationError", input, err)
		}
	}
}

func TestNormalize_NilRecord(t *testing.T) {
	if _, err := Normalize(nil, []any{"a"}); !IsConfigurationError(err) {
		t.Fatalf("expected ConfigurationError for nil record")
	}
}

func TestNormalize_InvisibleSpecsDropped(t *testing.T) {
	rec := record.Map{"a": 1, "b": 2, "c": 3}
	hidden := false

	resolved, err := Normalize(rec, []any{
		"a",
		Spec{Name: "b", Visible: &hidden},
		map[string]any{"name": "c", "visible": false},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected hidden specs excluded, got %d entries", len(resolved))
	}
	if resolved[0].Label != "A" {
		t.Fatalf("unexpected surviving entry: %+v", resolved[0])
	}
}

func TestNormalize_ExplicitValuePrecedence(t *testing.T) {
	rec := record.Map{"age": 42}

	resolved, err := Normalize(rec, []any{
		Spec{Name: "age"}.WithValue(0),
		map[string]any{"name": "age", "value": nil},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// Key presence wins over re-deriving from the record, even for zero
	// and nil values.
	if resolved[0].Value != 0 {
		t.Fatalf("explicit zero value lost: got %v", resolved[0].Value)
	}
	if resolved[1].Value != nil {
		t.Fatalf("explicit nil value lost: got %v", resolved[1].Value)
	}
}

func TestNormalize_RecordValueWithoutExplicit(t *testing.T) {
	rec := record.Map{"age": 42}

	resolved, err := Normalize(rec, []any{Spec{Name: "age"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if resolved[0].Value != 42 {
		t.Fatalf("expected record-derived value, got %v", resolved[0].Value)
	}
}

func TestNormalize_RequiresNameOrLabelAndValue(t *testing.T) {
	rec := record.Map{"a": 1}

	cases := []struct {
		name string
		spec any
	}{
		{name: "empty struct spec", spec: Spec{}},
		{name: "label only", spec: Spec{Label: "Static"}},
		{name: "value only", spec: Spec{}.WithValue("x")},
		{name: "empty map spec", spec: map[string]any{}},
		{name: "map label only", spec: map[string]any{"label": "Static"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(rec, []any{tc.spec}); !IsConfigurationError(err) {
				t.Fatalf("err = %v, want ConfigurationError", err)
			}
		})
	}

	// Label plus explicit value needs no name at all.
	resolved, err := Normalize(rec, []any{Spec{Label: "Static", Format: "raw"}.WithValue("<hr>")})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []Resolved{{Label: "Static", Value: "<hr>", Format: "raw"}}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("resolved mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DerivedSpecsSorted(t *testing.T) {
	rec := record.Map{"b": 1, "a": 2}

	resolved, err := Normalize(rec, nil)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := []Resolved{
		{Label: "A", Value: 2, Format: "text"},
		{Label: "B", Value: 1, Format: "text"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("derived order mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptySpecListRendersNothing(t *testing.T) {
	resolved, err := Normalize(record.Map{"a": 1}, []any{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("empty (non-nil) spec list should yield no attributes, got %d", len(resolved))
	}
}

func TestNormalize_AttributeListerAndLabels(t *testing.T) {
	rec := profile{
		names:  []string{"email", "name"},
		labels: map[string]string{"email": "E-Mail Address"},
		values: map[string]any{"email": "ada@example.com", "name": "Ada"},
	}

	resolved, err := Normalize(rec, nil)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := []Resolved{
		{Label: "E-Mail Address", Value: "ada@example.com", Format: "text"},
		{Label: "Name", Value: "Ada", Format: "text"},
	}
	if diff := cmp.Diff(want, resolved); diff != "" {
		t.Fatalf("resolved mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DottedPathSpec(t *testing.T) {
	rec := record.Map{"owner": map[string]any{"email": "ada@example.com"}}

	resolved, err := Normalize(rec, []any{Spec{Name: "owner.email"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if resolved[0].Value != "ada@example.com" {
		t.Fatalf("dotted lookup failed: %+v", resolved[0])
	}
	if resolved[0].Label != "Email" {
		t.Fatalf("dotted label should humanize the last segment, got %q", resolved[0].Label)
	}
}

func TestNormalize_MissingFieldResolvesNil(t *testing.T) {
	resolved, err := Normalize(record.Map{"a": 1}, []any{Spec{Name: "ghost"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if resolved[0].Value != nil {
		t.Fatalf("missing field should resolve to nil, got %v", resolved[0].Value)
	}
}

func TestNormalize_CustomResolvers(t *testing.T) {
	rec := record.Map{"a": 1}

	resolved, err := Normalize(rec, []any{"a"},
		WithLabelResolver(func(record.Record, string) string { return "LABEL" }),
		WithValueResolver(func(record.Record, string) any { return "VALUE" }),
	)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if resolved[0].Label != "LABEL" || resolved[0].Value != "VALUE" {
		t.Fatalf("custom resolvers not applied: %+v", resolved[0])
	}
}
