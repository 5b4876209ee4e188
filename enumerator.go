// Package enumerator renders enum declarations through templates that query
// cases, parameters and comments by attribute name.
//
// Most callers load a manifest and expand it:
//
//	results, err := enumerator.ExpandFile(ctx, "enums.yaml")
//
// Finer control is available from the packages under pkg/: values holds the
// containers and the attribute protocol, render the per-pass context,
// expander the driver and manifest the file format.
package enumerator

import (
	"context"
	"path/filepath"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/expander"
	"github.com/goliatone/go-enumerator/pkg/manifest"
	"github.com/goliatone/go-enumerator/pkg/render"
	"github.com/goliatone/go-enumerator/pkg/render/template/gotemplate"
	"github.com/goliatone/go-enumerator/pkg/values"
)

// Declaration aliases manifest.Declaration.
type Declaration = manifest.Declaration

// Result aliases expander.Result.
type Result = expander.Result

// Diagnostic aliases diag.Diagnostic.
type Diagnostic = diag.Diagnostic

// Location aliases diag.Location.
type Location = diag.Location

// NewExpander exposes the expander constructor from the top-level module.
func NewExpander(options ...expander.Option) *expander.Expander {
	return expander.New(options...)
}

// NewPass starts a render pass bound to location.
func NewPass(location Location, options ...render.ContextOption) *render.Context {
	return render.NewContext(location, options...)
}

// Resolve looks an attribute up on value within pass.
func Resolve(pass *render.Context, value any, name string) (any, bool) {
	return values.Resolve(pass, value, name)
}

// ExpandFile loads the manifest at path and renders every declaration.
// Template files are looked up next to the manifest unless options supply a
// renderer.
func ExpandFile(ctx context.Context, path string, options ...expander.Option) ([]Result, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Dir(path)))
	if err != nil {
		return nil, err
	}
	opts := append([]expander.Option{expander.WithRenderer(engine)}, options...)
	return expander.New(opts...).ExpandManifest(ctx, m)
}
