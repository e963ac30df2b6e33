package mustache_test

import (
	"testing"

	"github.com/goliatone/go-anyrender/pkg/engine"
	"github.com/goliatone/go-anyrender/pkg/engines/mustache"
	"github.com/goliatone/go-anyrender/pkg/testsupport"
)

func newEngine(t *testing.T) *mustache.Engine {
	t.Helper()
	e, err := mustache.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestRenderString(t *testing.T) {
	e := newEngine(t)

	got, err := e.RenderString(testsupport.Context(), "hello {{name}}", engine.Context{"name": "ada"}, engine.Options{})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "hello ada" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "hello ada", got)
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

func TestRenderString_CompileError(t *testing.T) {
	e := newEngine(t)

	_, err := e.RenderString(testsupport.Context(), "{{#section}}unclosed", nil, engine.Options{})
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !engine.IsCompileError(err) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}

func TestRenderString_Safe(t *testing.T) {
	e := newEngine(t)

	got, err := e.RenderString(testsupport.Context(), "{{#section}}unclosed", nil, engine.Options{Safe: true})
	if err != nil {
		t.Fatalf("safe mode must not fail: %v", err)
	}
	if got != "{{#section}}unclosed" {
		t.Fatalf("safe mode must return the original content, got %q", got)
	}
}

func TestRenderFile_WithPartial(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "user.mustache", "{{name}}")
	testsupport.WriteTemplate(t, workdir, "page.mustache", "hello {{>user}}!")

	e := newEngine(t)
	got, err := e.RenderFile(testsupport.Context(), "page.mustache", engine.Context{"name": "ada"}, engine.Options{
		SearchPaths: []string{workdir},
	})
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if got != "hello ada!" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "hello ada!", got)
	}
}

func TestRenderFile_Missing(t *testing.T) {
	e := newEngine(t)

	_, err := e.RenderFile(testsupport.Context(), "missing.mustache", nil, engine.Options{
		SearchPaths: []string{testsupport.Workdir(t)},
	})
	if !engine.IsTemplateNotFound(err) {
		t.Fatalf("expected TemplateNotFoundError, got %v", err)
	}
}

func TestDescriptor(t *testing.T) {
	e := newEngine(t)

	if e.Name() != "mustache" {
		t.Fatalf("unexpected name %q", e.Name())
	}
	if !e.Supports("page.mustache") || !e.Supports("page.ms") {
		t.Fatal("engine must claim its declared extensions")
	}
	if e.Supports("page.j2") {
		t.Fatal("engine must not claim foreign extensions")
	}
}
