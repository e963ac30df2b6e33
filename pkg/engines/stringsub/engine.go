// Package stringsub implements shell-style $name / ${name} substitution,
// the counterpart of a plain string-interpolation backend. It is the last
// real engine consulted during extension dispatch.
package stringsub

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "stringsub"
	enginePriority = 60
)

// Engine substitutes $name and ${name} placeholders from the context. $$
// escapes a literal dollar sign. Undefined variables are a CompileError so
// callers can distinguish bad templates from missing files; Safe mode
// returns the content unchanged instead.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New constructs the adapter.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Name identifies this adapter for explicit engine selection.
func (e *Engine) Name() string { return engineName }

// Extensions lists the file extensions dispatched to this adapter. It shares
// "tmpl" with the gotemplate adapter, which wins by priority.
func (e *Engine) Extensions() []string { return []string{"txt", "tmpl"} }

// Priority ranks this adapter last among the real engines.
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

	out, err := e.expand(content, data)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", err
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

func (e *Engine) expand(content string, data engine.Context) (string, error) {
	missing := map[string]struct{}{}

	out := os.Expand(content, func(name string) string {
		if name == "$" {
			return "$"
		}
		if value, ok := data[name]; ok {
			return fmt.Sprint(value)
		}
		missing[name] = struct{}{}
		return ""
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", &engine.CompileError{
			Engine: engineName,
			Err:    fmt.Errorf("undefined variable(s): %s", strings.Join(names, ", ")),
		}
	}
	return out, nil
}
