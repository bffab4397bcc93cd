package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-detailview/pkg/attr"
)

const articleDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "test", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Article": {
        "type": "object",
        "properties": {
          "title": {"type": "string", "title": "Headline"},
          "published": {"type": "boolean"},
          "views": {"type": "integer"},
          "score": {"type": "number"},
          "createdAt": {"type": "string", "format": "date-time"},
          "authorEmail": {"type": "string", "format": "email"},
          "secret": {"type": "string", "writeOnly": true}
        }
      }
    }
  }
}`

func TestSpecsFromDocument(t *testing.T) {
	specs, err := SpecsFromDocument(context.Background(), []byte(articleDocument), "Article")
	if err != nil {
		t.Fatalf("SpecsFromDocument: %v", err)
	}

	hidden := false
	want := []any{
		attr.Spec{Name: "authorEmail", Format: "email"},
		attr.Spec{Name: "createdAt", Format: "datetime"},
		attr.Spec{Name: "published", Format: "boolean"},
		attr.Spec{Name: "score", Format: "decimal"},
		attr.Spec{Name: "secret", Format: "text", Visible: &hidden},
		attr.Spec{Name: "title", Label: "Headline", Format: "text"},
		attr.Spec{Name: "views", Format: "integer"},
	}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Fatalf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecsFromDocument_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := SpecsFromDocument(ctx, nil, "Article"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := SpecsFromDocument(ctx, []byte(articleDocument), "Missing"); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestSpecsFromSchema_RequiresProperties(t *testing.T) {
	if _, err := SpecsFromSchema(nil); err == nil {
		t.Fatalf("expected error for nil schema")
	}
}
