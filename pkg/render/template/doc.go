// Package template defines the template-engine seam used to render
// declarations. Engines receive program-derived values wrapped for a single
// render pass so attribute lookups report into that pass's render.Context.
package template
