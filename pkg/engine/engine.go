package engine

import "context"

// Context carries the variable bindings supplied for substitution into a
// template. It is handed to backends opaquely; each adapter converts it into
// whatever shape its library expects.
type Context = map[string]any

// Engine is the uniform contract every backend adapter satisfies. Adapters
// translate RenderString/RenderFile onto one third-party templating library's
// compile-and-evaluate calls and surface that library's failures through the
// shared error taxonomy (CompileError, TemplateNotFoundError).
type Engine interface {
	// Name returns the unique engine name used for explicit selection.
	Name() string

	// Extensions returns the file extensions (lowercase, no leading dot)
	// this engine claims for extension-based dispatch.
	Extensions() []string

	// Supports reports whether the engine can handle the given template
	// file. With an empty path it reports backend availability alone; with
	// a path it additionally requires an extension match.
	Supports(templateFile string) bool

	// Priority orders engines claiming the same extension. Values run from
	// 0 to 99; the lowest value wins.
	Priority() int

	// RenderString renders inline template content against data.
	RenderString(ctx context.Context, content string, data Context, opts Options) (string, error)

	// RenderFile locates template on opts.SearchPaths (or uses it directly
	// when it names an existing file), reads it, and renders the content.
	RenderFile(ctx context.Context, template string, data Context, opts Options) (string, error)
}
