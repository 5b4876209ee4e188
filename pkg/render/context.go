package render

import (
	"slices"
	"strings"

	"github.com/goliatone/go-enumerator/pkg/diag"
)

// restrictionName is how the allowed-key restriction is referred to in
// declared-here notes.
const restrictionName = "'allowedComments'"

// Restriction limits which comment keys a template may consult. An empty key
// set disables the restriction.
type Restriction struct {
	Keys     []string
	Location diag.Location
}

// Active reports whether the restriction constrains anything.
func (r Restriction) Active() bool {
	return len(r.Keys) > 0
}

// Allows reports whether key may be consulted.
func (r Restriction) Allows(key string) bool {
	if !r.Active() {
		return true
	}
	return slices.Contains(r.Keys, key)
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithRestriction installs an allowed-key restriction declared at location.
// Blank keys are ignored.
func WithRestriction(keys []string, location diag.Location) ContextOption {
	return func(c *Context) {
		cleaned := make([]string, 0, len(keys))
		for _, key := range keys {
			if key = strings.TrimSpace(key); key != "" {
				cleaned = append(cleaned, key)
			}
		}
		c.restriction = Restriction{Keys: cleaned, Location: location}
	}
}

// WithSink sets where Finish delivers the recorded diagnostics.
func WithSink(sink diag.Sink) ContextOption {
	return func(c *Context) {
		c.sink = sink
	}
}

type entry struct {
	diag        diag.Diagnostic
	replaceable bool
}

// Context is the state of one render pass of one declaration. It is owned by
// that pass and must not be shared between passes; it performs no locking.
//
// Diagnostics are recorded in two modes. Replace-latest keeps at most one
// replaceable diagnostic per pass, so only the final failing attribute of a
// chained lookup is reported. Accumulate keeps every record.
//
// A nil *Context is valid and discards everything.
type Context struct {
	location    diag.Location
	restriction Restriction
	sink        diag.Sink

	entries  []entry
	violated bool
	finished bool
}

// NewContext starts a pass whose diagnostics attach to location.
func NewContext(location diag.Location, options ...ContextOption) *Context {
	c := &Context{location: location}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Location returns the source location diagnostics are bound to.
func (c *Context) Location() diag.Location {
	if c == nil {
		return diag.Location{}
	}
	return c.location
}

// Restriction returns the allowed-key restriction of the pass.
func (c *Context) Restriction() Restriction {
	if c == nil {
		return Restriction{}
	}
	return c.restriction
}

// RestrictionViolated reports whether a restricted key was consulted during
// the pass. Once set it stays set.
func (c *Context) RestrictionViolated() bool {
	return c != nil && c.violated
}

// AddOrReplace records d, dropping the previously recorded replaceable
// diagnostic of this pass if there is one.
func (c *Context) AddOrReplace(d diag.Diagnostic) {
	if c == nil {
		return
	}
	c.entries = slices.DeleteFunc(c.entries, func(e entry) bool { return e.replaceable })
	c.entries = append(c.entries, entry{diag: d, replaceable: true})
}

// Add records d unconditionally.
func (c *Context) Add(d diag.Diagnostic) {
	if c == nil {
		return
	}
	c.entries = append(c.entries, entry{diag: d})
}

// ReportInvalidTransform records, in replace-latest mode, that name is not an
// attribute of a value labelled typeLabel.
func (c *Context) ReportInvalidTransform(name, typeLabel string) {
	if c == nil {
		return
	}
	c.AddOrReplace(diag.InvalidTransform(name, typeLabel, c.location))
}

// CheckCommentKey enforces the allowed-key restriction for key. A violation
// records the disallowed key and a declared-here note, sets the sticky flag
// and returns false. Violations accumulate.
func (c *Context) CheckCommentKey(key string) bool {
	if c == nil || c.restriction.Allows(key) {
		return true
	}
	c.Add(diag.CommentKeyNotAllowed(key, c.location))
	c.Add(diag.DeclaredHere(restrictionName, c.restriction.Location))
	c.violated = true
	return false
}

// Diagnostics returns the diagnostics recorded so far, in recording order.
func (c *Context) Diagnostics() []diag.Diagnostic {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.diag)
	}
	return out
}

// Finish ends the pass and delivers its diagnostics to the sink. Later calls
// are no-ops.
func (c *Context) Finish() []diag.Diagnostic {
	if c == nil {
		return nil
	}
	diags := c.Diagnostics()
	if c.finished {
		return diags
	}
	c.finished = true
	if c.sink != nil {
		for _, d := range diags {
			c.sink.Diagnose(d)
		}
	}
	return diags
}
