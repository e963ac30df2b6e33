// Package gonja adapts the gonja template engine, a strict Jinja2
// implementation, to the uniform engine contract. It ranks below the pongo2
// adapter so it only wins dispatch when selected explicitly or when the
// pongo2 adapter is absent from the registry.
package gonja

import (
	"bytes"
	"context"
	"fmt"

	gonjalib "github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/exec"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "gonja"
	enginePriority = 20
)

// Engine renders Jinja2 templates through gonja.
type Engine struct {
	globals map[string]any
}

var _ engine.Engine = (*Engine)(nil)

// Option configures the adapter before construction.
type Option func(*Engine)

// WithGlobals seeds context values available to every render.
func WithGlobals(data map[string]any) Option {
	return func(e *Engine) {
		if len(data) == 0 {
			return
		}
		if e.globals == nil {
			e.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			e.globals[key] = value
		}
	}
}

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
func (e *Engine) Extensions() []string { return []string{"j2", "jinja2"} }

// Priority ranks this adapter behind the pongo2-backed jinja adapter.
func (e *Engine) Priority() int { return enginePriority }

// Supports reports availability, and with a path, an extension match.
func (e *Engine) Supports(templateFile string) bool {
	if templateFile == "" {
		return true
	}
	return engine.HasExtension(e, templateFile)
}

// RenderString renders inline template content against data.
func (e *Engine) RenderString(ctx context.Context, content string, data engine.Context, opts engine.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tpl, err := gonjalib.FromString(content)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, exec.NewContext(e.renderContext(data))); err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", fmt.Errorf("gonja: execute template: %w", err)
	}
	return buf.String(), nil
}

// RenderFile resolves template on the search paths, reads it with the
// configured encoding, and renders the content.
func (e *Engine) RenderFile(ctx context.Context, template string, data engine.Context, opts engine.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := engine.ReadTemplate(template, opts)
	if err != nil {
		return "", err
	}
	return e.RenderString(ctx, content, data, opts)
}

func (e *Engine) renderContext(data engine.Context) map[string]any {
	out := make(map[string]any, len(e.globals)+len(data))
	for key, value := range e.globals {
		out[key] = value
	}
	for key, value := range data {
		out[key] = value
	}
	return out
}
