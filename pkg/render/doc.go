// Package render holds the per-pass rendering context.
//
// A Context is created when rendering of one declaration begins and is
// passed explicitly to every attribute lookup of that pass. It records
// diagnostics against the declaration's location, enforces the optional
// allowed-comments restriction and carries the sticky flag the driver reads
// to decide whether to drop the pass's output.
package render
