package dlist

import (
	"context"
	"testing"

	"github.com/goliatone/go-detailview/pkg/attr"
	"github.com/goliatone/go-detailview/pkg/format"
	"github.com/goliatone/go-detailview/pkg/render"
)

func TestRender_DefinitionList(t *testing.T) {
	renderer := New()
	view := render.View{Attributes: []attr.Resolved{
		{Label: "Title", Value: "Hi", Format: format.KindText},
		{Label: "Count", Value: 3, Format: format.KindInteger},
	}}

	out, err := renderer.Render(context.Background(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<dl class="detail-view">
<dt>Title</dt><dd>Hi</dd>
<dt>Count</dt><dd>3</dd>
</dl>`
	if string(out) != want {
		t.Fatalf("output mismatch:\n got: %s\nwant: %s", out, want)
	}
}

func TestRender_FormatErrorFailsWhole(t *testing.T) {
	renderer := New()
	view := render.View{Attributes: []attr.Resolved{
		{Label: "Bad", Value: "x", Format: "bogus"},
	}}

	if _, err := renderer.Render(context.Background(), view, render.RenderOptions{}); !attr.IsConfigurationError(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}
