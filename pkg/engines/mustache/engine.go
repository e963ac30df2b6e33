// Package mustache adapts the logic-less mustache template engine to the
// uniform engine contract.
package mustache

import (
	"context"
	"fmt"

	mustachelib "github.com/cbroglie/mustache"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "mustache"
	enginePriority = 40
)

// Engine renders mustache templates. Partials referenced by a template are
// resolved against the per-call search paths.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New constructs the adapter.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Name identifies this adapter for explicit engine selection.
func (e *Engine) Name() string { return engineName }

// Extensions lists the file extensions dispatched to this adapter.
func (e *Engine) Extensions() []string { return []string{"mustache", "ms"} }

// Priority ranks this adapter after the Jinja-style and Go template engines.
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

	tpl, err := mustachelib.ParseStringPartials(content, e.partials(opts))
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	out, err := tpl.Render(data)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", fmt.Errorf("mustache: render template: %w", err)
	}
	return out, nil
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

func (e *Engine) partials(opts engine.Options) mustachelib.PartialProvider {
	exts := make([]string, 0, len(e.Extensions()))
	for _, ext := range e.Extensions() {
		exts = append(exts, "."+ext)
	}
	return &mustachelib.FileProvider{
		Paths:      opts.SearchPaths,
		Extensions: exts,
	}
}
