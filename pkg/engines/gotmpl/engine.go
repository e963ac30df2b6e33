// Package gotmpl adapts Go's text/template, extended with the sprig function
// library, to the uniform engine contract.
package gotmpl

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "gotemplate"
	enginePriority = 30
)

// Option configures the adapter before construction.
type Option func(*Engine)

// WithFuncs merges custom functions into the template function map on top of
// the sprig defaults.
func WithFuncs(funcs template.FuncMap) Option {
	return func(e *Engine) {
		for name, fn := range funcs {
			if name == "" || fn == nil {
				continue
			}
			e.funcs[name] = fn
		}
	}
}

// WithMissingKeyZero makes lookups on absent context keys yield the zero
// value instead of failing the render.
func WithMissingKeyZero() Option {
	return func(e *Engine) {
		e.missingKey = "zero"
	}
}

// Engine renders Go text templates with the sprig function set. Absent
// context keys fail the render by default so Safe mode has a consistent
// meaning across adapters.
type Engine struct {
	funcs      template.FuncMap
	missingKey string
}

var _ engine.Engine = (*Engine)(nil)

// New constructs the adapter applying any provided options.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		funcs:      sprig.TxtFuncMap(),
		missingKey: "error",
	}
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

// Extensions lists the file extensions dispatched to this adapter. It shares
// "tmpl" with the string-substitution engine and wins by priority.
func (e *Engine) Extensions() []string { return []string{"tmpl", "gotmpl", "tpl"} }

// Priority ranks this adapter after the Jinja-style engines.
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
	return e.render(ctx, "inline", content, data, opts)
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
	return e.render(ctx, filepath.Base(template), content, data, opts)
}

func (e *Engine) render(ctx context.Context, name, content string, data engine.Context, opts engine.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tpl, err := template.New(name).
		Funcs(e.funcs).
		Option("missingkey=" + e.missingKey).
		Parse(content)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", fmt.Errorf("gotmpl: execute template %q: %w", name, err)
	}
	return buf.String(), nil
}
