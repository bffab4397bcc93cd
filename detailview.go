// Package detailview renders a single data record as a sequence of formatted
// label/value rows. A record (map, struct, or anything implementing
// record.Record) plus a declarative attribute spec list normalize into
// resolved attributes, which a registered renderer turns into markup.
package detailview

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-detailview/pkg/attr"
	"github.com/goliatone/go-detailview/pkg/record"
	"github.com/goliatone/go-detailview/pkg/render"
	"github.com/goliatone/go-detailview/pkg/renderers/dlist"
	"github.com/goliatone/go-detailview/pkg/renderers/htmltable"
)

// Spec is the structured attribute specification, re-exported for callers
// that only import the root package.
type Spec = attr.Spec

// Resolved is the computed {label, value, format} triple.
type Resolved = attr.Resolved

// Record is the capability interface detail views read from.
type Record = record.Record

// Option configures a View.
type Option func(*View)

// View wires the normalization and rendering stages together. Configure once,
// render many times; each Render call is independent and side-effect free.
type View struct {
	registry      *render.Registry
	rendererName  string
	normalizeOpts []attr.Option

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// WithRegistry replaces the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(v *View) {
		if registry != nil {
			v.registry = registry
		}
	}
}

// WithRenderer selects the renderer by name. The default registry registers
// "table" and "list".
func WithRenderer(name string) Option {
	return func(v *View) {
		if name != "" {
			v.rendererName = name
		}
	}
}

// WithLabelResolver overrides label resolution during normalization.
func WithLabelResolver(fn attr.LabelResolver) Option {
	return func(v *View) {
		v.normalizeOpts = append(v.normalizeOpts, attr.WithLabelResolver(fn))
	}
}

// WithValueResolver overrides value access during normalization.
func WithValueResolver(fn attr.ValueResolver) Option {
	return func(v *View) {
		v.normalizeOpts = append(v.normalizeOpts, attr.WithValueResolver(fn))
	}
}

// WithThemeSelector resolves the named theme/variant through go-theme on
// every render and hands the resulting renderer config to the renderer.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(v *View) {
		v.themeSelector = selector
		v.themeName = name
		v.themeVariant = variant
	}
}

// New constructs a View. The default registry carries the table and
// definition-list renderers, with the table renderer selected.
func New(options ...Option) (*View, error) {
	view := &View{rendererName: "table"}
	for _, opt := range options {
		if opt != nil {
			opt(view)
		}
	}

	if view.registry == nil {
		registry := render.NewRegistry()
		table, err := htmltable.New()
		if err != nil {
			return nil, fmt.Errorf("detailview: configure table renderer: %w", err)
		}
		registry.MustRegister(table)
		registry.MustRegister(dlist.New())
		view.registry = registry
	}

	if !view.registry.Has(view.rendererName) {
		return nil, fmt.Errorf("detailview: renderer %q not registered", view.rendererName)
	}
	return view, nil
}

// Render normalizes the record against the spec list and renders the result.
// A nil spec list derives the attributes from the record itself. All
// configuration problems surface as attr.ConfigurationError before any
// markup is produced.
func (v *View) Render(ctx context.Context, rec any, specs []any) ([]byte, error) {
	source, err := record.FromAny(rec)
	if err != nil {
		return nil, attr.ConfigErrorf("detailview: %v", err)
	}

	resolved, err := attr.Normalize(source, specs, v.normalizeOpts...)
	if err != nil {
		return nil, err
	}

	renderer, err := v.registry.Get(v.rendererName)
	if err != nil {
		return nil, err
	}

	options := render.RenderOptions{}
	if v.themeSelector != nil {
		selection, err := v.themeSelector.Select(v.themeName, v.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("detailview: select theme: %w", err)
		}
		options.Theme = buildRendererConfig(selection)
	}

	return renderer.Render(ctx, render.View{Attributes: resolved}, options)
}

// RenderHTML is the one-call convenience: build a View and render the record
// with it.
func RenderHTML(ctx context.Context, rec any, specs []any, options ...Option) ([]byte, error) {
	view, err := New(options...)
	if err != nil {
		return nil, err
	}
	return view.Render(ctx, rec, specs)
}
