package values

import (
	"strings"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// Case describes one enumerated case.
type Case struct {
	Index      int
	Name       string
	Parameters Parameters
	Comments   Comments
}

func (c Case) String() string {
	if c.Parameters.Len() == 0 {
		return c.Name
	}
	params := make([]string, c.Parameters.Len())
	for i, param := range c.Parameters.params {
		params[i] = param.String()
	}
	return c.Name + "(" + strings.Join(params, ", ") + ")"
}

// TypeLabel implements Transformer.
func (Case) TypeLabel() string {
	return "Case"
}

// Transform implements Transformer.
func (c Case) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, c.TypeLabel(), func(_ *render.Context, name string) (any, bool) {
		switch name {
		case "index":
			return c.Index, true
		case "name":
			return String(c.Name), true
		case "parameters":
			return c.Parameters, true
		case "comments":
			return c.Comments, true
		case "hasParameters":
			return c.Parameters.Len() > 0, true
		}
		return nil, false
	})
}

// Cases is the case list of a declaration.
type Cases struct {
	cases Array[Case]
}

// NewCases copies cases into a new list.
func NewCases(cases ...Case) Cases {
	return Cases{cases: NewArray(cases...)}
}

// Len returns the number of cases.
func (c Cases) Len() int {
	return c.cases.Len()
}

// Elements returns a copy of the cases.
func (c Cases) Elements() []Case {
	return c.cases.Elements()
}

// Items implements Sequence.
func (c Cases) Items() []any {
	return c.cases.Items()
}

func (c Cases) String() string {
	return c.cases.String()
}

// TypeLabel implements Transformer.
func (Cases) TypeLabel() string {
	return "[Case]"
}

// Transform implements Transformer by delegating to the underlying array,
// which records any diagnostic under the [Case] label.
func (c Cases) Transform(ctx *render.Context, name string) (any, bool) {
	seq := newSequence(c.cases.elems, func(cases []Case) any { return Cases{cases: Array[Case]{elems: cases}} })
	return dispatch(ctx, name, c.TypeLabel(), seq.lookup)
}
