// Package fast adapts valyala/fasttemplate, a near zero-allocation
// placeholder substitution engine, to the uniform engine contract. It has no
// control flow or escaping; tags map directly to context values.
package fast

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

const (
	engineName     = "fast"
	enginePriority = 50

	defaultStartTag = "{{"
	defaultEndTag   = "}}"
)

// Option configures the adapter before construction.
type Option func(*Engine)

// WithTags overrides the placeholder delimiters.
func WithTags(start, end string) Option {
	return func(e *Engine) {
		if start == "" || end == "" {
			return
		}
		e.startTag = start
		e.endTag = end
	}
}

// Engine substitutes {{tag}} placeholders from the context. Undefined tags
// fail the render unless Safe mode is set.
type Engine struct {
	startTag string
	endTag   string
}

var _ engine.Engine = (*Engine)(nil)

// New constructs the adapter applying any provided options.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		startTag: defaultStartTag,
		endTag:   defaultEndTag,
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

// Extensions lists the file extensions dispatched to this adapter.
func (e *Engine) Extensions() []string { return []string{"ft"} }

// Priority ranks this adapter behind the full template languages.
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

	tpl, err := fasttemplate.NewTemplate(content, e.startTag, e.endTag)
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", &engine.CompileError{Engine: engineName, Err: err}
	}

	out, err := tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		value, ok := data[name]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", name)
		}
		switch v := value.(type) {
		case string:
			return io.WriteString(w, v)
		case []byte:
			return w.Write(v)
		default:
			return fmt.Fprint(w, v)
		}
	})
	if err != nil {
		if opts.Safe {
			return content, nil
		}
		return "", fmt.Errorf("fast: execute template: %w", err)
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
