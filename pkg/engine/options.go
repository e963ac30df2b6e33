package engine

// DefaultEncoding is the charset assumed when Options.Encoding is empty.
// Encoding is always an explicit per-call value; nothing is derived from the
// process locale.
const DefaultEncoding = "utf-8"

// Options describe per-call rendering inputs shared by every engine. The
// zero value is usable: no search paths, utf-8 templates, strict errors.
type Options struct {
	// SearchPaths lists directories consulted, in order, when resolving a
	// template reference into a file. The first match wins.
	SearchPaths []string

	// Encoding names the IANA charset template files are decoded from.
	// Empty means DefaultEncoding.
	Encoding string

	// Safe suppresses backend compile and evaluation failures: instead of
	// returning an error, the engine returns the original template content
	// unrendered. Missing template files still fail.
	Safe bool
}

// EncodingOrDefault returns the configured encoding, falling back to
// DefaultEncoding when unset.
func (o Options) EncodingOrDefault() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}
