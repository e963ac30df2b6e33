package anyrender

import (
	"sync"

	"github.com/goliatone/go-anyrender/pkg/engine"
	"github.com/goliatone/go-anyrender/pkg/engines/fast"
	"github.com/goliatone/go-anyrender/pkg/engines/gonja"
	"github.com/goliatone/go-anyrender/pkg/engines/gotmpl"
	"github.com/goliatone/go-anyrender/pkg/engines/jinja"
	"github.com/goliatone/go-anyrender/pkg/engines/mustache"
	"github.com/goliatone/go-anyrender/pkg/engines/stringsub"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *engine.Registry
)

// builtins is the explicit registration list for the default registry. A
// constructor error marks that backend unusable and the engine is skipped,
// so only working adapters take part in dispatch.
func builtins() []func() (engine.Engine, error) {
	return []func() (engine.Engine, error){
		func() (engine.Engine, error) { return jinja.New() },
		func() (engine.Engine, error) { return gonja.New() },
		func() (engine.Engine, error) { return gotmpl.New() },
		func() (engine.Engine, error) { return mustache.New() },
		func() (engine.Engine, error) { return fast.New() },
		func() (engine.Engine, error) { return stringsub.New() },
	}
}

// DefaultRegistry returns the process-wide registry holding every built-in
// adapter, built once on first use and read-only thereafter. Callers needing
// a different adapter set should build their own engine.Registry and pass it
// via WithRegistry.
func DefaultRegistry() *engine.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = engine.NewRegistry()
		for _, construct := range builtins() {
			e, err := construct()
			if err != nil {
				continue
			}
			defaultRegistry.MustRegister(e)
		}
	})
	return defaultRegistry
}
