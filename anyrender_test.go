package anyrender_test

import (
	"context"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	anyrender "github.com/goliatone/go-anyrender"
	"github.com/goliatone/go-anyrender/pkg/engine"
	"github.com/goliatone/go-anyrender/pkg/testsupport"
)

func TestRender_ExtensionDispatch(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "a.j2", "a = {{ a }}")

	got, err := anyrender.Render(testsupport.Context(), "a.j2", anyrender.Context{"a": "aaa"},
		anyrender.WithSearchPaths(workdir))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a = aaa" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "a = aaa", got)
	}
}

func TestRender_UnclaimedExtensionFallsBack(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "app.conf", "key = {{ value }}")

	got, err := anyrender.Render(testsupport.Context(), "app.conf", anyrender.Context{"value": 1},
		anyrender.WithSearchPaths(workdir))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "key = {{ value }}" {
		t.Fatalf("unclaimed extension must return file content unchanged, got %q", got)
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	_, err := anyrender.Render(testsupport.Context(), "missing.j2", nil,
		anyrender.WithSearchPaths(testsupport.Workdir(t)))
	if err == nil {
		t.Fatal("expected missing template to fail")
	}
	if !engine.IsTemplateNotFound(err) {
		t.Fatalf("expected TemplateNotFoundError, got %v", err)
	}
}

func TestRender_ExplicitEngine(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "vars.txt", "a = $a")

	got, err := anyrender.Render(testsupport.Context(), "vars.txt", anyrender.Context{"a": 1},
		anyrender.WithSearchPaths(workdir),
		anyrender.WithEngine("stringsub"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a = 1" {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", "a = 1", got)
	}
}

func TestRender_UnknownEngine(t *testing.T) {
	_, err := anyrender.Render(testsupport.Context(), "a.j2", nil, anyrender.WithEngine("nope"))
	if err == nil {
		t.Fatal("expected unknown engine to fail")
	}
}

func TestRenderString_FallbackVerbatim(t *testing.T) {
	content := `a = {{ a }}, b = "{{ b }}"`

	got, err := anyrender.RenderString(testsupport.Context(), content, anyrender.Context{"a": 1})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != content {
		t.Fatalf("without an explicit engine inline content must pass through, got %q", got)
	}
}

func TestRenderString_ExplicitEngine(t *testing.T) {
	got, err := anyrender.RenderString(testsupport.Context(), `a = {{ a }}, b = "{{ b }}"`,
		anyrender.Context{"a": 1, "b": "bbb"},
		anyrender.WithEngine("jinja"))
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	want := `a = 1, b = "bbb"`
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderString_SafeMode(t *testing.T) {
	got, err := anyrender.RenderString(testsupport.Context(), "$a", anyrender.Context{},
		anyrender.WithEngine("stringsub"),
		anyrender.WithSafe())
	if err != nil {
		t.Fatalf("safe mode must not fail: %v", err)
	}
	if got != "$a" {
		t.Fatalf("safe mode must return the original content, got %q", got)
	}

	_, err = anyrender.RenderString(testsupport.Context(), "$a", anyrender.Context{},
		anyrender.WithEngine("stringsub"))
	if !engine.IsCompileError(err) {
		t.Fatalf("without safe mode expected CompileError, got %v", err)
	}
}

func TestRenderString_Sanitizer(t *testing.T) {
	got, err := anyrender.RenderString(testsupport.Context(), "<b>{{ name }}</b>",
		anyrender.Context{"name": "ada"},
		anyrender.WithEngine("jinja"),
		anyrender.WithSanitizer(bluemonday.StrictPolicy()))
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ada" {
		t.Fatalf("sanitizer must strip markup\nwant: %q\n got: %q", "ada", got)
	}
}

func TestRender_CustomRegistry(t *testing.T) {
	workdir := testsupport.Workdir(t)
	testsupport.WriteTemplate(t, workdir, "a.j2", "a = {{ a }}")

	registry := engine.NewRegistry()

	// Only the fallback semantics are reachable: nothing claims .j2 here.
	got, err := anyrender.Render(testsupport.Context(), "a.j2", anyrender.Context{"a": 1},
		anyrender.WithSearchPaths(workdir),
		anyrender.WithRegistry(registry))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a = {{ a }}" {
		t.Fatalf("empty registry must fall back to pass-through, got %q", got)
	}
}

func TestRender_InputValidation(t *testing.T) {
	var nilCtx context.Context
	if _, err := anyrender.Render(nilCtx, "a.j2", nil); err == nil {
		t.Fatal("expected nil context to fail")
	}
	if _, err := anyrender.Render(testsupport.Context(), "", nil); err == nil {
		t.Fatal("expected empty template to fail")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := anyrender.DefaultRegistry()

	for _, name := range []string{"jinja", "gonja", "gotemplate", "mustache", "fast", "stringsub"} {
		if !registry.Has(name) {
			t.Fatalf("default registry must include %q", name)
		}
	}

	// jinja outranks gonja for the shared .j2 extension.
	eng, err := registry.ForFile("page.j2")
	if err != nil {
		t.Fatalf("for file: %v", err)
	}
	if eng.Name() != "jinja" {
		t.Fatalf("expected jinja to win .j2 dispatch, got %q", eng.Name())
	}

	// gotemplate outranks stringsub for the shared .tmpl extension.
	eng, err = registry.ForFile("page.tmpl")
	if err != nil {
		t.Fatalf("for file: %v", err)
	}
	if eng.Name() != "gotemplate" {
		t.Fatalf("expected gotemplate to win .tmpl dispatch, got %q", eng.Name())
	}
}
