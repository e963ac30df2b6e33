// Package anyrender selects a templating backend for a template file or
// inline string — by explicit engine name, file extension, or priority — and
// delegates rendering through a uniform contract. Substitution, control flow,
// and escaping semantics belong to the wrapped engines; this package only
// locates templates, dispatches, and normalises errors.
package anyrender

import (
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-anyrender/pkg/engine"
)

// Context aliases the variable-name-to-value mapping passed to backends.
type Context = engine.Context

// Option customises a single Render/RenderString call.
type Option func(*settings)

type settings struct {
	registry   *engine.Registry
	engineName string
	opts       engine.Options
	sanitizer  *bluemonday.Policy
}

// WithSearchPaths sets the ordered directories consulted to resolve a
// template reference into a file. The first match wins.
func WithSearchPaths(paths ...string) Option {
	return func(s *settings) {
		s.opts.SearchPaths = append(s.opts.SearchPaths, paths...)
	}
}

// WithEngine selects an engine by name, bypassing extension dispatch.
func WithEngine(name string) Option {
	return func(s *settings) {
		s.engineName = name
	}
}

// WithEncoding sets the IANA charset template files are decoded from.
// Defaults to utf-8.
func WithEncoding(name string) Option {
	return func(s *settings) {
		s.opts.Encoding = name
	}
}

// WithSafe suppresses backend compile and evaluation failures; the call
// returns the original template content instead of an error. Missing
// template files still fail.
func WithSafe() Option {
	return func(s *settings) {
		s.opts.Safe = true
	}
}

// WithRegistry substitutes the engine registry used for dispatch. Callers
// that need a custom adapter set register it once and pass it per call.
func WithRegistry(registry *engine.Registry) Option {
	return func(s *settings) {
		s.registry = registry
	}
}

// WithSanitizer runs the rendered output through a bluemonday policy, for
// HTML templates fed untrusted context values.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(s *settings) {
		s.sanitizer = policy
	}
}

// Render resolves template on the configured search paths, selects an engine
// by explicit name or file extension, and returns the rendered result. When
// no registered engine claims the extension the fallback engine returns the
// file content unchanged; a missing file is a *engine.TemplateNotFoundError.
func Render(ctx context.Context, template string, data Context, options ...Option) (string, error) {
	if ctx == nil {
		return "", errors.New("anyrender: context is required")
	}
	if template == "" {
		return "", errors.New("anyrender: template is required")
	}

	s := newSettings(options...)
	eng, err := s.engineFor(template)
	if err != nil {
		return "", err
	}

	out, err := eng.RenderFile(ctx, template, data, s.opts)
	return s.finish(out, err)
}

// RenderString renders inline template content. With no explicit engine the
// content has no extension to dispatch on, so the fallback engine returns it
// unchanged.
func RenderString(ctx context.Context, content string, data Context, options ...Option) (string, error) {
	if ctx == nil {
		return "", errors.New("anyrender: context is required")
	}

	s := newSettings(options...)
	eng, err := s.engineFor("")
	if err != nil {
		return "", err
	}

	out, err := eng.RenderString(ctx, content, data, s.opts)
	return s.finish(out, err)
}

func newSettings(options ...Option) *settings {
	s := &settings{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s
}

func (s *settings) engineFor(template string) (engine.Engine, error) {
	if s.engineName != "" {
		eng, err := s.registry.Get(s.engineName)
		if err != nil {
			return nil, fmt.Errorf("anyrender: engine %q: %w", s.engineName, err)
		}
		return eng, nil
	}

	if template != "" {
		if eng, err := s.registry.ForFile(template); err == nil {
			return eng, nil
		}
	}
	return engine.Fallback{}, nil
}

func (s *settings) finish(out string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if s.sanitizer != nil {
		out = s.sanitizer.Sanitize(out)
	}
	return out, nil
}
