package engine

import (
	"context"

	"github.com/goliatone/go-anyrender/internal/finder"
)

// Locate resolves a template reference against the options' search paths,
// returning a *TemplateNotFoundError when no candidate file exists.
func Locate(template string, opts Options) (string, error) {
	path, ok := finder.Find(template, opts.SearchPaths)
	if !ok {
		return "", &TemplateNotFoundError{Template: template, SearchPaths: opts.SearchPaths}
	}
	return path, nil
}

// ReadTemplate locates the template, reads it, and decodes the content using
// the options' encoding.
func ReadTemplate(template string, opts Options) (string, error) {
	path, err := Locate(template, opts)
	if err != nil {
		return "", err
	}
	return finder.Read(path, opts.EncodingOrDefault())
}

// HasExtension reports whether the template file's extension is in the
// engine's declared extension set.
func HasExtension(e Engine, templateFile string) bool {
	ext := finder.Ext(templateFile)
	if ext == "" {
		return false
	}
	for _, candidate := range e.Extensions() {
		if candidate == ext {
			return true
		}
	}
	return false
}

// Fallback is the pass-through engine. RenderString returns the content
// unchanged and RenderFile returns the located file's content unchanged, so
// callers always get a deterministic result even when no backend claims the
// template. It is the single canonical default behavior; real adapters
// override both render paths.
type Fallback struct{}

var _ Engine = Fallback{}

// Name identifies the fallback engine.
func (Fallback) Name() string { return "fallback" }

// Extensions is empty: the fallback never competes in extension dispatch.
func (Fallback) Extensions() []string { return nil }

// Priority is the lowest precedence value.
func (Fallback) Priority() int { return 99 }

// Supports reports availability only; the fallback claims no extensions.
func (Fallback) Supports(templateFile string) bool {
	return templateFile == ""
}

// RenderString returns content unmodified.
func (Fallback) RenderString(ctx context.Context, content string, _ Context, _ Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return content, nil
}

// RenderFile reads the template from the search paths and returns its
// content unmodified. Missing files yield a *TemplateNotFoundError.
func (Fallback) RenderFile(ctx context.Context, template string, _ Context, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ReadTemplate(template, opts)
}
