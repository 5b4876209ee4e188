package expander

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/render/template"
)

const defaultConcurrency = 4

// Option customises an Expander.
type Option func(*Expander)

// WithRenderer sets the engine passes render with. Passing nil leaves the
// expander without a renderer and Expand fails with ErrNoRenderer.
func WithRenderer(renderer template.PassRenderer) Option {
	return func(e *Expander) {
		e.renderer = renderer
		e.rendererSet = true
	}
}

// WithLogger sets the logger used for per-pass debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// WithConcurrency bounds how many passes run at once. Values below one
// select the default.
func WithConcurrency(n int) Option {
	return func(e *Expander) {
		if n < 1 {
			n = defaultConcurrency
		}
		e.concurrency = n
	}
}

// WithSuppressOnRestriction controls whether a pass that violated its
// allowed-comments restriction has its output dropped. Enabled by default.
func WithSuppressOnRestriction(enabled bool) Option {
	return func(e *Expander) {
		e.suppress = enabled
	}
}

// WithSink receives every diagnostic after Expand's passes complete.
func WithSink(sink diag.Sink) Option {
	return func(e *Expander) {
		e.sink = sink
	}
}
