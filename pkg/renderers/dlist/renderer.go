package dlist

import (
	"context"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-detailview/pkg/format"
	"github.com/goliatone/go-detailview/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithContainerAttributes replaces the attributes emitted on the <dl>.
func WithContainerAttributes(attrs map[string]string) Option {
	return func(r *Renderer) {
		r.containerAttrs = attrs
	}
}

// WithFormatters swaps the format registry.
func WithFormatters(registry *format.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.formatters = registry
		}
	}
}

// Renderer emits resolved attributes as a definition list: one <dt>/<dd>
// pair per attribute. It shares the table renderer's formatting contract but
// not its row templating; callers needing custom rows use the table renderer.
type Renderer struct {
	containerAttrs map[string]string
	formatters     *format.Registry
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the definition-list renderer.
func New(options ...Option) *Renderer {
	renderer := &Renderer{
		containerAttrs: map[string]string{"class": "detail-view"},
		formatters:     format.NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(renderer)
		}
	}
	return renderer
}

func (r *Renderer) Name() string {
	return "list"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view render.View, _ render.RenderOptions) ([]byte, error) {
	fragments := make([]string, 0, len(view.Attributes))
	for _, attribute := range view.Attributes {
		formatted, err := r.formatters.Format(attribute.Value, attribute.Format)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, "<dt>"+attribute.Label+"</dt><dd>"+formatted+"</dd>")
	}

	var builder strings.Builder
	builder.WriteString("<dl")
	writeAttrs(&builder, r.containerAttrs)
	builder.WriteString(">\n")
	for _, fragment := range fragments {
		builder.WriteString(fragment)
		builder.WriteByte('\n')
	}
	builder.WriteString("</dl>")
	return []byte(builder.String()), nil
}

func writeAttrs(builder *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attrs[key]))
		builder.WriteByte('"')
	}
}
