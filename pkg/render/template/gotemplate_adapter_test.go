package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/render"
	"github.com/goliatone/go-enumerator/pkg/render/template/gotemplate"
	"github.com/goliatone/go-enumerator/pkg/testsupport"
	"github.com/goliatone/go-enumerator/pkg/values"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderPassResolvesAttributes(t *testing.T) {
	engine := newEngine(t)
	pass := render.NewContext(diag.Location{File: "shape.go", Line: 3})

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderPass(pass, "enum", shapeData(), w)
	})

	golden := filepath.Join("testdata", "enum.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(result)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("render pass mismatch (-want +got):\n%s", diff)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
	if diags := pass.Diagnostics(); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics %v", diags)
	}
}

func TestGoTemplateEngine_RenderPassRecordsLatestInvalidTransform(t *testing.T) {
	engine := newEngine(t)
	pass := render.NewContext(diag.Location{File: "shape.go", Line: 3})

	result, err := engine.RenderPassString(pass, `[{{ cases|resolve:"bogus" }}][{{ cases|path:"first.nope.uppercased" }}][{{ cases|resolve:"count" }}]`, shapeData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "[][][3]" {
		t.Fatalf("unexpected output %q", result)
	}

	want := []diag.Diagnostic{diag.InvalidTransform("nope", "Case", pass.Location())}
	if diff := cmp.Diff(want, pass.Diagnostics()); diff != "" {
		t.Fatalf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestGoTemplateEngine_RenderPassEnforcesAllowedComments(t *testing.T) {
	engine := newEngine(t)
	pass := render.NewContext(
		diag.Location{File: "shape.go", Line: 3},
		render.WithRestriction([]string{"summary"}, diag.Location{File: "shape.go", Line: 1}),
	)

	result, err := engine.RenderPassString(pass, `{% for c in cases.Items %}{{ c|path:"comments.summary" }}{{ c|path:"comments.internal" }};{% endfor %}`, shapeData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "roundsecret;;;" {
		t.Fatalf("unexpected output %q", result)
	}
	if !pass.RestrictionViolated() {
		t.Fatal("expected the restriction to be violated")
	}
	// One violation plus note per case. The allowed key missing from the
	// empty comment lists renders empty without a diagnostic.
	diags := pass.Diagnostics()
	if len(diags) != 6 {
		t.Fatalf("expected 6 diagnostics, got %d: %v", len(diags), diags)
	}
	bag := diag.NewBag()
	for _, d := range diags {
		bag.Diagnose(d)
	}
	if got := bag.Count(diag.KindCommentKeyNotAllowed); got != 3 {
		t.Fatalf("expected 3 violations, got %d", got)
	}
	if got := bag.Count(diag.KindInvalidTransform); got != 0 {
		t.Fatalf("expected no invalid transforms, got %d", got)
	}
}

func TestGoTemplateEngine_LaterEngineKeepsAutoescapeChoice(t *testing.T) {
	t.Cleanup(func() {
		if _, err := gotemplate.New(gotemplate.WithAutoescape(false)); err != nil {
			t.Errorf("restore autoescape: %v", err)
		}
	})

	if _, err := gotemplate.New(gotemplate.WithAutoescape(true)); err != nil {
		t.Fatalf("new escaping engine: %v", err)
	}
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderString(`{{ x }}`, map[string]any{"x": "<b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "&lt;b&gt;" {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestGoTemplateEngine_PassesAreIndependent(t *testing.T) {
	engine := newEngine(t)

	var wg sync.WaitGroup
	passes := make([]*render.Context, 16)
	for i := range passes {
		passes[i] = render.NewContext(diag.Location{File: "shape.go", Line: i + 1})
		wg.Add(1)
		go func(pass *render.Context, attr string) {
			defer wg.Done()
			if _, err := engine.RenderPassString(pass, `{{ cases|resolve:attr }}`, withAttr(shapeData(), attr)); err != nil {
				t.Errorf("render: %v", err)
			}
		}(passes[i], fmt.Sprintf("missing%d", i))
	}
	wg.Wait()

	for i, pass := range passes {
		diags := pass.Diagnostics()
		if len(diags) != 1 {
			t.Fatalf("pass %d: expected one diagnostic, got %v", i, diags)
		}
		if want := fmt.Sprintf("'missing%d' is not a valid transform for [Case]", i); diags[0].Message != want {
			t.Fatalf("pass %d: got %q want %q", i, diags[0].Message, want)
		}
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func shapeData() map[string]any {
	return map[string]any{
		"name": values.String("Shape"),
		"cases": values.NewCases(
			values.Case{
				Index:      0,
				Name:       "circle",
				Parameters: values.NewParameters(values.NewParameter("radius", "Double", false)),
				Comments:   values.ParseComments([]string{"summary: round", "internal: secret"}),
			},
			values.Case{
				Index: 1,
				Name:  "rect",
				Parameters: values.NewParameters(
					values.NewParameter("width", "Double", false),
					values.NewParameter("height", "Double", false),
				),
			},
			values.Case{Index: 2, Name: "none"},
		),
	}
}

func withAttr(data map[string]any, attr string) map[string]any {
	data["attr"] = attr
	return data
}
