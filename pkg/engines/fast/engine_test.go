package fast_test

import (
	"testing"

	"github.com/goliatone/go-anyrender/pkg/engine"
	"github.com/goliatone/go-anyrender/pkg/engines/fast"
	"github.com/goliatone/go-anyrender/pkg/testsupport"
)

func newEngine(t *testing.T, options ...fast.Option) *fast.Engine {
	t.Helper()
	e, err := fast.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestRenderString(t *testing.T) {
	e := newEngine(t)

	got, err := e.RenderString(testsupport.Context(), "a = {{ a }}, b = {{b}}", engine.Context{"a": 1, "b": "bbb"}, engine.Options{})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "a = 1, b = bbb" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "a = 1, b = bbb", got)
	}
}

func TestRenderString_NoMarkers(t *testing.T) {
	e := newEngine(t)

	got, err := e.RenderString(testsupport.Context(), "aaa", engine.Context{"a": 1}, engine.Options{})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "aaa" {
		t.Fatalf("marker-free template must render verbatim, got %q", got)
	}
}

func TestRenderString_CustomTags(t *testing.T) {
	e := newEngine(t, fast.WithTags("[[", "]]"))

	got, err := e.RenderString(testsupport.Context(), "a = [[a]]", engine.Context{"a": "aaa"}, engine.Options{})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "a = aaa" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "a = aaa", got)
	}
}

func TestRenderString_UnclosedTag(t *testing.T) {
	e := newEngine(t)

	_, err := e.RenderString(testsupport.Context(), "a = {{ a", nil, engine.Options{})
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !engine.IsCompileError(err) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}

func TestRenderString_UndefinedTag(t *testing.T) {
	e := newEngine(t)

	if _, err := e.RenderString(testsupport.Context(), "{{missing}}", engine.Context{}, engine.Options{}); err == nil {
		t.Fatal("expected undefined tag to fail the render")
	}

	got, err := e.RenderString(testsupport.Context(), "{{missing}}", engine.Context{}, engine.Options{Safe: true})
	if err != nil {
		t.Fatalf("safe mode must not fail: %v", err)
	}
	if got != "{{missing}}" {
		t.Fatalf("safe mode must return the original content, got %q", got)
	}
}

func TestRenderFile(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "banner.ft", "deploying {{service}}")

	e := newEngine(t)
	got, err := e.RenderFile(testsupport.Context(), "banner.ft", engine.Context{"service": "api"}, engine.Options{
		SearchPaths: []string{workdir},
	})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if got != "deploying api" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "deploying api", got)
	}
}

func TestDescriptor(t *testing.T) {
	e := newEngine(t)

	if e.Name() != "fast" {
		t.Fatalf("unexpected name %q", e.Name())
	}
	if !e.Supports("banner.ft") {
		t.Fatal("engine must claim its declared extensions")
	}
	if e.Supports("page.j2") {
		t.Fatal("engine must not claim foreign extensions")
	}
}
