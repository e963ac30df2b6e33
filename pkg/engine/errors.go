package engine

import (
	"errors"
	"fmt"
	"strings"
)

// TemplateNotFoundError reports that no file matching the requested template
// exists on any search path.
type TemplateNotFoundError struct {
	Template    string
	SearchPaths []string
}

func (e *TemplateNotFoundError) Error() string {
	if len(e.SearchPaths) == 0 {
		return fmt.Sprintf("engine: template %q not found", e.Template)
	}
	return fmt.Sprintf("engine: template %q not found on search paths [%s]",
		e.Template, strings.Join(e.SearchPaths, ", "))
}

// CompileError reports that a backend library rejected the template during
// parse/compile. It wraps the backend-specific error.
type CompileError struct {
	Engine string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: compile template: %v", e.Engine, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// IsTemplateNotFound reports whether err is, or wraps, a
// TemplateNotFoundError.
func IsTemplateNotFound(err error) bool {
	var target *TemplateNotFoundError
	return errors.As(err, &target)
}

// IsCompileError reports whether err is, or wraps, a CompileError.
func IsCompileError(err error) bool {
	var target *CompileError
	return errors.As(err, &target)
}
