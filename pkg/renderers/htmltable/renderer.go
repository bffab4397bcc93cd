package htmltable

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-detailview/pkg/attr"
	"github.com/goliatone/go-detailview/pkg/format"
	"github.com/goliatone/go-detailview/pkg/render"
	rendertemplate "github.com/goliatone/go-detailview/pkg/render/template"
	"github.com/goliatone/go-detailview/pkg/render/template/gotemplate"
)

// Defaults for the table renderer. The row template substitutes the literal
// {label} and {value} placeholders in a single pass; substituted text is
// never rescanned.
const (
	DefaultRowTemplate  = "<tr><th>{label}</th><td>{value}</td></tr>"
	DefaultContainerTag = "table"
)

// themeContainerClassToken names the go-theme token that overrides the
// container class when a theme is passed at render time.
const themeContainerClassToken = "detailview.containerClass"

// RowFunc renders one resolved attribute into a row fragment. The callback
// owns escaping and formatting entirely; format dispatch is bypassed.
type RowFunc func(attribute attr.Resolved, index int) (string, error)

// Option configures the renderer.
type Option func(*config)

type config struct {
	rowTemplate    string
	rowFunc        RowFunc
	templateRow    string
	templates      rendertemplate.TemplateRenderer
	containerTag   string
	containerAttrs map[string]string
	formatters     *format.Registry
}

// WithRowTemplate replaces the placeholder row template.
func WithRowTemplate(tpl string) Option {
	return func(cfg *config) {
		if tpl != "" {
			cfg.rowTemplate = tpl
		}
	}
}

// WithRowFunc renders rows through a callback instead of the template. The
// callback receives the resolved attribute and its zero-based index.
func WithRowFunc(fn RowFunc) Option {
	return func(cfg *config) {
		cfg.rowFunc = fn
	}
}

// WithTemplateRow renders rows through the template engine. The argument is
// either inline template content or a template name resolvable by the
// configured engine; the row context carries label, value and index, with
// the value already formatted (use the safe filter to keep its markup).
func WithTemplateRow(nameOrContent string) Option {
	return func(cfg *config) {
		cfg.templateRow = nameOrContent
	}
}

// WithTemplateRenderer injects a custom template engine for WithTemplateRow.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithContainerTag overrides the wrapping element.
func WithContainerTag(tag string) Option {
	return func(cfg *config) {
		if tag != "" {
			cfg.containerTag = tag
		}
	}
}

// WithContainerAttributes replaces the attributes emitted on the container.
func WithContainerAttributes(attrs map[string]string) Option {
	return func(cfg *config) {
		cfg.containerAttrs = cloneAttrs(attrs)
	}
}

// WithFormatters swaps the format registry used on the template path.
func WithFormatters(registry *format.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.formatters = registry
		}
	}
}

// Renderer emits the resolved attributes as rows inside a container element,
// one fragment per attribute, newline separated.
type Renderer struct {
	rowTemplate    string
	rowFunc        RowFunc
	templateRow    string
	templates      rendertemplate.TemplateRenderer
	containerTag   string
	containerAttrs map[string]string
	formatters     *format.Registry
}

var _ render.Renderer = (*Renderer)(nil)

var containerTagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// New constructs the table renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		rowTemplate:  DefaultRowTemplate,
		containerTag: DefaultContainerTag,
		containerAttrs: map[string]string{
			"class": "detail-view table",
		},
		formatters: format.NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.rowFunc != nil && cfg.templateRow != "" {
		return nil, attr.ConfigErrorf("htmltable: row callback and row template are mutually exclusive")
	}
	if !containerTagPattern.MatchString(cfg.containerTag) {
		return nil, attr.ConfigErrorf("htmltable: invalid container tag %q", cfg.containerTag)
	}

	if cfg.templateRow != "" && cfg.templates == nil {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("htmltable: configure template engine: %w", err)
		}
		cfg.templates = engine
	}

	return &Renderer{
		rowTemplate:    cfg.rowTemplate,
		rowFunc:        cfg.rowFunc,
		templateRow:    cfg.templateRow,
		templates:      cfg.templates,
		containerTag:   cfg.containerTag,
		containerAttrs: cfg.containerAttrs,
		formatters:     cfg.formatters,
	}, nil
}

func (r *Renderer) Name() string {
	return "table"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full container markup. All rows are built before any
// output is assembled, so a failing row yields an error and no partial
// markup.
func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	fragments := make([]string, 0, len(view.Attributes))
	for i, attribute := range view.Attributes {
		fragment, err := r.renderRow(attribute, i)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	attrs := r.resolveContainerAttrs(options)

	var builder strings.Builder
	builder.WriteByte('<')
	builder.WriteString(r.containerTag)
	writeAttrs(&builder, attrs)
	builder.WriteString(">\n")
	for _, fragment := range fragments {
		builder.WriteString(fragment)
		builder.WriteByte('\n')
	}
	builder.WriteString("</")
	builder.WriteString(r.containerTag)
	builder.WriteByte('>')

	return []byte(builder.String()), nil
}

func (r *Renderer) renderRow(attribute attr.Resolved, index int) (string, error) {
	if r.rowFunc != nil {
		return r.rowFunc(attribute, index)
	}

	formatted, err := r.formatters.Format(attribute.Value, attribute.Format)
	if err != nil {
		return "", err
	}

	if r.templateRow != "" {
		fragment, err := r.templates.Render(r.templateRow, map[string]any{
			"label": attribute.Label,
			"value": formatted,
			"index": index,
		})
		if err != nil {
			return "", attr.ConfigErrorf("htmltable: row template: %v", err)
		}
		return fragment, nil
	}

	replacer := strings.NewReplacer("{label}", attribute.Label, "{value}", formatted)
	return replacer.Replace(r.rowTemplate), nil
}

func (r *Renderer) resolveContainerAttrs(options render.RenderOptions) map[string]string {
	attrs := cloneAttrs(r.containerAttrs)
	if options.Theme == nil {
		return attrs
	}
	if class := strings.TrimSpace(options.Theme.Tokens[themeContainerClassToken]); class != "" {
		if attrs == nil {
			attrs = make(map[string]string, 1)
		}
		attrs["class"] = class
	}
	return attrs
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

func cloneAttrs(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
