package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-detailview/pkg/attr"
)

// View is the renderer input: the resolved attribute sequence for one record.
// It is self-contained; renderers never reach back into the source record.
type View struct {
	Attributes []attr.Resolved
}

// RenderOptions carry per-request data renderers may use without mutating
// their own configuration.
type RenderOptions struct {
	// Theme, when set, supplies resolved theme tokens and CSS variables the
	// renderer can fold into container attributes.
	Theme *theme.RendererConfig
}

// Renderer converts a view into a byte representation (HTML, text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}
