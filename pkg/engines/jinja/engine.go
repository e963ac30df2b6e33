// Package jinja adapts the pongo2 template engine (Django/Jinja-like syntax)
// to the uniform engine contract.
package jinja

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "jinja"
	enginePriority = 10
)

// Option configures the adapter before construction.
type Option func(*Engine)

// WithGlobals seeds context values available to every render. Per-call data
// overrides globals on key collisions.
func WithGlobals(data map[string]any) Option {
	return func(e *Engine) {
		if len(data) == 0 {
			return
		}
		if e.globals == nil {
			e.globals = make(pongo2.Context, len(data))
		}
		e.globals.Update(pongo2.Context(data))
	}
}

// Engine renders Jinja-style templates through pongo2.
type Engine struct {
	globals pongo2.Context
}

var _ engine.Engine = (*Engine)(nil)

// New constructs the adapter applying any provided options.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e, nil
}

// Name identifies this adapter for explicit engine selection.
func (e *Engine) Name() string { return engineName }

// Extensions lists the file extensions dispatched to this adapter.
func (e *Engine) Extensions() []string { return []string{"j2", "jinja2", "jinja"} }

// Priority ranks this adapter first among the Jinja-style engines.
func (e *Engine) Priority() int { return enginePriority }

// Supports reports availability, and with a path, an extension match.
func (e *Engine) Supports(templateFile string) bool {
	if templateFile == "" {
		return true
	}
	return engine.HasExtension(e, templateFile)
}

// RegisterFilter exposes a custom filter to every template rendered through
// pongo2. Filters are process-wide in pongo2, so duplicate names error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if name == "" || fn == nil {
		return fmt.Errorf("jinja: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("jinja: filter %q already exists", name)
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	return pongo2.RegisterFilter(name, filter)
}

// RenderString renders inline template content against data.
func (e *Engine) RenderString(ctx context.Context, content string, data engine.Context, opts engine.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tpl, err := e.newSet(opts.SearchPaths).FromString(content)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	out, err := tpl.Execute(e.renderContext(data))
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", fmt.Errorf("jinja: execute template: %w", err)
	}
	return out, nil
}

// RenderFile resolves template on the search paths and renders it. The
// resolved file's directory joins the search paths so relative includes and
// extends keep working.
func (e *Engine) RenderFile(ctx context.Context, template string, data engine.Context, opts engine.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := engine.Locate(template, opts)
	if err != nil {
		return "", err
	}

	// Non-utf8 templates go through the string path after decoding; pongo2
	// loaders read raw bytes only.
	if enc := opts.EncodingOrDefault(); enc != engine.DefaultEncoding && enc != "utf8" {
		content, err := engine.ReadTemplate(template, opts)
		if err != nil {
			return "", err
		}
		return e.RenderString(ctx, content, data, opts)
	}

	paths := append(append([]string{}, opts.SearchPaths...), filepath.Dir(path))
	tpl, err := e.newSet(paths).FromFile(path)
	if err != nil {
		if opts.Safe {
			return engine.ReadTemplate(template, opts)
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	out, err := tpl.Execute(e.renderContext(data))
	if err != nil {
		if opts.Safe {
			return engine.ReadTemplate(template, opts)
		}
		return "", fmt.Errorf("jinja: execute template %q: %w", path, err)
	}
	return out, nil
}

func (e *Engine) newSet(searchPaths []string) *pongo2.TemplateSet {
	loaders := []pongo2.TemplateLoader{pongo2.MustNewLocalFileSystemLoader("")}
	for _, dir := range searchPaths {
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			continue
		}
		loaders = append(loaders, loader)
	}
	return pongo2.NewSet("anyrender", loaders...)
}

func (e *Engine) renderContext(data engine.Context) pongo2.Context {
	out := make(pongo2.Context, len(e.globals)+len(data))
	for key, value := range e.globals {
		out[key] = value
	}
	for key, value := range data {
		out[key] = value
	}
	return out
}
