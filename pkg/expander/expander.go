package expander

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/manifest"
	"github.com/goliatone/go-enumerator/pkg/render"
	"github.com/goliatone/go-enumerator/pkg/render/template"
	"github.com/goliatone/go-enumerator/pkg/render/template/gotemplate"
)

// ErrNoRenderer is returned by Expand when no renderer is configured.
var ErrNoRenderer = errors.New("expander: renderer is nil")

// Expander coordinates render passes over a set of declarations.
type Expander struct {
	renderer    template.PassRenderer
	rendererSet bool
	logger      zerolog.Logger
	concurrency int
	suppress    bool
	sink        diag.Sink
	initErr     error
}

// New constructs an Expander. Without WithRenderer a pongo2 engine with no
// template files is used, which serves inline templates only.
func New(options ...Option) *Expander {
	e := &Expander{
		logger:      zerolog.Nop(),
		concurrency: defaultConcurrency,
		suppress:    true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if !e.rendererSet {
		engine, err := gotemplate.New()
		if err != nil {
			e.initErr = fmt.Errorf("expander: default renderer: %w", err)
		} else {
			e.renderer = engine
		}
	}
	return e
}

// Result is the outcome of one declaration's pass.
type Result struct {
	Name        string
	PassID      string
	Output      string
	Diagnostics []diag.Diagnostic
	// Suppressed is set when the output was dropped after a restriction
	// violation.
	Suppressed bool
}

// HasErrors reports whether the pass recorded an error diagnostic.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Expand renders every declaration in its own pass and returns the results in
// input order. Template execution errors abort the run; attribute failures
// are reported as diagnostics on the results instead.
func (e *Expander) Expand(ctx context.Context, decls []manifest.Declaration) ([]Result, error) {
	if ctx == nil {
		return nil, errors.New("expander: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.initErr != nil {
		return nil, e.initErr
	}
	if e.renderer == nil {
		return nil, ErrNoRenderer
	}

	results := make([]Result, len(decls))
	passes := make([]*render.Context, len(decls))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for i, decl := range decls {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			pass := render.NewContext(decl.Location, append(decl.ContextOptions(), render.WithSink(e.sink))...)
			passes[i] = pass
			result, err := e.expandOne(pass, decl)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, pass := range passes {
		pass.Finish()
	}
	return results, nil
}

// ExpandManifest expands every declaration of m.
func (e *Expander) ExpandManifest(ctx context.Context, m *manifest.Manifest) ([]Result, error) {
	if m == nil {
		return nil, manifest.ErrEmptyManifest
	}
	return e.Expand(ctx, m.Declarations)
}

func (e *Expander) expandOne(pass *render.Context, decl manifest.Declaration) (Result, error) {
	passID := uuid.NewString()
	data := decl.TemplateData()

	var (
		output string
		err    error
	)
	if decl.TemplateFile != "" {
		output, err = e.renderer.RenderPass(pass, decl.TemplateFile, data)
	} else {
		output, err = e.renderer.RenderPassString(pass, decl.Template, data)
	}
	if err != nil {
		return Result{}, fmt.Errorf("expander: declaration %q: %w", decl.Name, err)
	}

	result := Result{
		Name:        decl.Name,
		PassID:      passID,
		Output:      output,
		Diagnostics: pass.Diagnostics(),
	}
	if e.suppress && pass.RestrictionViolated() {
		result.Output = ""
		result.Suppressed = true
	}

	e.logger.Debug().
		Str("pass_id", passID).
		Str("declaration", decl.Name).
		Str("template", templateLabel(decl)).
		Int("diagnostics", len(result.Diagnostics)).
		Bool("suppressed", result.Suppressed).
		Msg("render pass finished")

	return result, nil
}

func templateLabel(decl manifest.Declaration) string {
	if decl.TemplateFile != "" {
		return decl.TemplateFile
	}
	return "inline"
}
