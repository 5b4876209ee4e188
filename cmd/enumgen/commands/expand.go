package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fatih/color"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/expander"
	"github.com/goliatone/go-enumerator/pkg/manifest"
	"github.com/goliatone/go-enumerator/pkg/render/template/gotemplate"
)

type expandOptions struct {
	templatesDir string
	only         []string
	concurrency  int
	keepOutput   bool
}

func (o *globalOptions) expand(ctx context.Context, manifestPath string, eo expandOptions) ([]expander.Result, *diag.Bag, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	decls, err := selectDeclarations(m, eo.only)
	if err != nil {
		return nil, nil, err
	}

	dir := eo.templatesDir
	if dir == "" {
		dir = filepath.Dir(manifestPath)
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		return nil, nil, err
	}

	bag := diag.NewBag()
	exp := expander.New(
		expander.WithRenderer(engine),
		expander.WithLogger(o.logger),
		expander.WithConcurrency(eo.concurrency),
		expander.WithSuppressOnRestriction(!eo.keepOutput),
		expander.WithSink(bag),
	)

	o.logger.Info().
		Str("manifest", manifestPath).
		Int("declarations", len(decls)).
		Msg("expanding declarations")

	results, err := exp.Expand(ctx, decls)
	if err != nil {
		return nil, nil, err
	}
	return results, bag, nil
}

func selectDeclarations(m *manifest.Manifest, only []string) ([]manifest.Declaration, error) {
	if len(only) == 0 {
		return m.Declarations, nil
	}
	out := make([]manifest.Declaration, 0, len(only))
	for _, decl := range m.Declarations {
		if slices.Contains(only, decl.Name) {
			out = append(out, decl)
		}
	}
	for _, name := range only {
		if _, ok := m.Lookup(name); !ok {
			return nil, fmt.Errorf("enumgen: declaration %q not found in %s", name, m.Source)
		}
	}
	return out, nil
}

func (o *globalOptions) writeDiagnostics(bag *diag.Bag) error {
	opts := diag.WriteOptions{Format: diag.FormatPretty, Color: !o.noColor && !color.NoColor}
	if o.jsonOutput {
		opts.Format = diag.FormatJSON
	}
	if bag.Len() == 0 && !o.jsonOutput {
		return nil
	}
	if err := diag.Write(o.stderr, bag.Items(), opts); err != nil {
		return err
	}
	if bag.HasErrors() {
		return ErrDiagnostics
	}
	return nil
}
