// Package diag defines the diagnostic records produced while templates resolve
// attributes against program-derived values.
//
// A Diagnostic carries a Kind, a Severity, a human readable message and the
// source Location it is attached to. Restriction violations are always paired
// with a KindDeclaredHere record pointing at the location where the
// restriction itself was declared.
//
// Sink is the seam towards the owning toolchain. Bag is the in-memory Sink
// used by the expander and the tests; Write renders a slice of diagnostics for
// terminals and tooling.
package diag
