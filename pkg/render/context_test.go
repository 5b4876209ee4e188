package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/render"
)

var passLocation = diag.Location{File: "status.go", Line: 7, Column: 1}

func TestContext_AddOrReplaceKeepsLatestOnly(t *testing.T) {
	ctx := render.NewContext(passLocation)

	ctx.ReportInvalidTransform("foo", "[Case]")
	ctx.ReportInvalidTransform("bar", "[Case]")

	want := []diag.Diagnostic{diag.InvalidTransform("bar", "[Case]", passLocation)}
	if diff := cmp.Diff(want, ctx.Diagnostics()); diff != "" {
		t.Fatalf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestContext_AccumulatedSurviveReplacement(t *testing.T) {
	ctx := render.NewContext(passLocation, render.WithRestriction([]string{"a"}, diag.Location{File: "status.go", Line: 1}))

	ctx.ReportInvalidTransform("foo", "[Case]")
	if ctx.CheckCommentKey("z") {
		t.Fatal("z should not be allowed")
	}
	ctx.ReportInvalidTransform("bar", "[Case]")

	got := ctx.Diagnostics()
	if len(got) != 3 {
		t.Fatalf("expected 3 diagnostics, got %v", got)
	}
	if got[0].Kind != diag.KindCommentKeyNotAllowed || got[1].Kind != diag.KindDeclaredHere {
		t.Fatalf("unexpected order %v", got)
	}
	if got[2].Message != "'bar' is not a valid transform for [Case]" {
		t.Fatalf("latest invalid transform missing: %v", got)
	}
}

func TestContext_RestrictionPolicy(t *testing.T) {
	cases := []struct {
		name     string
		keys     []string
		key      string
		allowed  bool
		recorded int
	}{
		{name: "no restriction", keys: nil, key: "x", allowed: true},
		{name: "blank keys only", keys: []string{" ", ""}, key: "x", allowed: true},
		{name: "member", keys: []string{"a", "b"}, key: "b", allowed: true},
		{name: "non member", keys: []string{"a", "b"}, key: "c", allowed: false, recorded: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := render.NewContext(passLocation, render.WithRestriction(tc.keys, diag.Location{}))
			if got := ctx.CheckCommentKey(tc.key); got != tc.allowed {
				t.Fatalf("CheckCommentKey(%q) = %v", tc.key, got)
			}
			if n := len(ctx.Diagnostics()); n != tc.recorded {
				t.Fatalf("recorded %d diagnostics, want %d", n, tc.recorded)
			}
			if ctx.RestrictionViolated() == tc.allowed {
				t.Fatalf("sticky flag = %v", ctx.RestrictionViolated())
			}
		})
	}
}

func TestContext_FinishFlushesOnce(t *testing.T) {
	bag := diag.NewBag()
	ctx := render.NewContext(passLocation, render.WithSink(bag))
	ctx.ReportInvalidTransform("foo", "String")

	ctx.Finish()
	ctx.Finish()

	if bag.Len() != 1 {
		t.Fatalf("expected one flushed diagnostic, got %d", bag.Len())
	}
}

func TestContext_NilIsInert(t *testing.T) {
	var ctx *render.Context
	ctx.ReportInvalidTransform("foo", "String")
	if !ctx.CheckCommentKey("anything") {
		t.Fatal("nil context should allow every key")
	}
	if ctx.Diagnostics() != nil || ctx.RestrictionViolated() {
		t.Fatal("nil context should record nothing")
	}
}
