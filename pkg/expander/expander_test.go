package expander_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/expander"
	"github.com/goliatone/go-enumerator/pkg/manifest"
	"github.com/goliatone/go-enumerator/pkg/render/template/gotemplate"
)

const caseListTemplate = `{% for c in cases.Items %}{{ c|resolve:"name" }}{% if c|path:"comments.summary" %}={{ c|path:"comments.summary" }}{% endif %};{% endfor %}`

func TestExpander_RendersInDeclarationOrder(t *testing.T) {
	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithConcurrency(2))

	decls := []manifest.Declaration{
		declaration("Shape", "enum", "circle", "rect"),
		declaration("Token", "enum", "ident"),
		{Name: "Inline", Template: `{{ name|resolve:"snakeCased" }}`},
	}

	results, err := exp.Expand(context.Background(), decls)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	var got []string
	for _, r := range results {
		got = append(got, r.Name+"|"+r.Output)
		if r.PassID == "" {
			t.Fatalf("%s: expected a pass id", r.Name)
		}
	}
	want := []string{"Shape|circle;rect;", "Token|ident;", "Inline|inline"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("outputs (-want +got):\n%s", diff)
	}
}

func TestExpander_MissingCommentKeyRendersCleanly(t *testing.T) {
	decl := declaration("Shape", "enum", "circle", "rect")
	decl.Cases[0].Comments = []string{"summary: round"}

	bag := diag.NewBag()
	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithSink(bag))
	results, err := exp.Expand(context.Background(), []manifest.Declaration{decl})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	if results[0].Output != "circle=round;rect;" {
		t.Fatalf("unexpected output %q", results[0].Output)
	}
	if results[0].HasErrors() || len(results[0].Diagnostics) != 0 {
		t.Fatalf("expected a clean pass, got %v", results[0].Diagnostics)
	}
	if bag.HasErrors() {
		t.Fatal("expected no errors in sink")
	}
}

func TestExpander_SuppressesRestrictedPassOnly(t *testing.T) {
	restricted := declaration("Restricted", "enum", "a")
	restricted.Cases[0].Comments = []string{"summary: first"}
	restricted.AllowedComments = &manifest.AllowedComments{
		Keys:     []string{"deprecated"},
		Location: diag.Location{File: "restricted.go", Line: 1},
	}
	open := declaration("Open", "enum", "b")
	open.Cases[0].Comments = []string{"summary: second"}

	bag := diag.NewBag()
	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithSink(bag))

	results, err := exp.Expand(context.Background(), []manifest.Declaration{restricted, open})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	if !results[0].Suppressed || results[0].Output != "" {
		t.Fatalf("expected restricted output to be suppressed, got %+v", results[0])
	}
	if !results[0].HasErrors() {
		t.Fatal("expected restricted pass to carry errors")
	}
	if results[1].Suppressed || results[1].Output != "b=second;" {
		t.Fatalf("expected open pass to render, got %+v", results[1])
	}
	if len(results[1].Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics on open pass, got %v", results[1].Diagnostics)
	}

	// The template reads comments.summary twice for the single case.
	if got := bag.Count(diag.KindCommentKeyNotAllowed); got != 2 {
		t.Fatalf("expected 2 violations in sink, got %d", got)
	}
	if got := bag.Count(diag.KindDeclaredHere); got != 2 {
		t.Fatalf("expected 2 notes in sink, got %d", got)
	}
}

func TestExpander_SuppressionCanBeDisabled(t *testing.T) {
	decl := declaration("Restricted", "enum", "a")
	decl.Cases[0].Comments = []string{"summary: first"}
	decl.AllowedComments = &manifest.AllowedComments{Keys: []string{"deprecated"}}

	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithSuppressOnRestriction(false))
	results, err := exp.Expand(context.Background(), []manifest.Declaration{decl})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if results[0].Suppressed || results[0].Output != "a=first;" {
		t.Fatalf("expected output to be kept, got %+v", results[0])
	}
}

func TestExpander_SinkReceivesDiagnosticsInDeclarationOrder(t *testing.T) {
	var seen []string
	sink := diag.SinkFunc(func(d diag.Diagnostic) {
		seen = append(seen, d.Location.File+": "+d.Message)
	})

	decls := make([]manifest.Declaration, 0, 8)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		decls = append(decls, manifest.Declaration{
			Name:     name,
			Location: diag.Location{File: name + ".go", Line: 1},
			Template: `{{ cases|resolve:"` + name + `" }}`,
		})
	}

	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithConcurrency(8), expander.WithSink(sink))
	if _, err := exp.Expand(context.Background(), decls); err != nil {
		t.Fatalf("expand: %v", err)
	}

	want := make([]string, 0, len(decls))
	for _, d := range decls {
		want = append(want, d.Name+".go: '"+d.Name+"' is not a valid transform for [Case]")
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("sink order (-want +got):\n%s", diff)
	}
}

func TestExpander_Errors(t *testing.T) {
	decls := []manifest.Declaration{{Name: "A", Template: "{{ name }}"}}

	exp := expander.New(expander.WithRenderer(nil))
	if _, err := exp.Expand(context.Background(), decls); !errors.Is(err, expander.ErrNoRenderer) {
		t.Fatalf("expected ErrNoRenderer, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := expander.New().Expand(ctx, decls); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	broken := []manifest.Declaration{{Name: "Broken", Template: "{% for %}"}}
	_, err := expander.New().Expand(context.Background(), broken)
	if err == nil || !strings.Contains(err.Error(), `declaration "Broken"`) {
		t.Fatalf("expected wrapped template error, got %v", err)
	}

	if _, err := expander.New().ExpandManifest(context.Background(), nil); !errors.Is(err, manifest.ErrEmptyManifest) {
		t.Fatalf("expected ErrEmptyManifest, got %v", err)
	}
}

func TestExpander_LogsPassEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	exp := expander.New(expander.WithRenderer(newEngine(t)), expander.WithLogger(logger))
	results, err := exp.Expand(context.Background(), []manifest.Declaration{declaration("Shape", "enum", "circle")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	var event map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if event["pass_id"] != results[0].PassID {
		t.Fatalf("pass_id mismatch: log %v result %s", event["pass_id"], results[0].PassID)
	}
	if event["declaration"] != "Shape" || event["template"] != "enum" || event["suppressed"] != false {
		t.Fatalf("unexpected log event %v", event)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"enum.tpl": {Data: []byte(caseListTemplate)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func declaration(name, templateFile string, cases ...string) manifest.Declaration {
	decl := manifest.Declaration{
		Name:         name,
		Location:     diag.Location{File: strings.ToLower(name) + ".go", Line: 1},
		TemplateFile: templateFile,
	}
	for _, c := range cases {
		decl.Cases = append(decl.Cases, manifest.Case{Name: c})
	}
	return decl
}
