// Package expander renders declarations through a template engine, one render
// pass per declaration.
//
// Passes run concurrently up to a configurable limit. Each pass owns its own
// render.Context, so diagnostics and the restriction flag never leak between
// declarations. When a pass violates its allowed-comments restriction the
// expander drops its output, and diagnostics are delivered to the configured
// sink in declaration order once every pass has finished.
package expander
