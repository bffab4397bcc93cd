package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, View, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(stubRenderer{name: "table"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := reg.Get("table")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "table" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := reg.Register(stubRenderer{name: "table"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "table"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "list"})
	reg.MustRegister(stubRenderer{name: "table"})
	reg.MustRegister(stubRenderer{name: "cards"})

	if diff := cmp.Diff([]string{"cards", "list", "table"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("list") || reg.Has("grid") {
		t.Fatalf("Has gave wrong answers")
	}
}
