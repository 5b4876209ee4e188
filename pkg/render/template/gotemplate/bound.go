package gotemplate

import (
	"github.com/goliatone/go-enumerator/pkg/render"
	"github.com/goliatone/go-enumerator/pkg/values"
)

// Bound ties a value to the render pass its attribute lookups report into.
// Templates see Bound values for every container handed to RenderPass; the
// resolve and path filters unwrap them, resolve, and bind the result again
// so chained lookups stay in the same pass.
type Bound struct {
	pass  *render.Context
	value any
}

// Bind wraps value for pass. Booleans and numbers stay unwrapped so template
// conditionals and arithmetic keep working on them.
func Bind(pass *render.Context, value any) any {
	switch value.(type) {
	case nil:
		return nil
	case Bound:
		return value
	case bool, int, int64, float64:
		return value
	}
	return Bound{pass: pass, value: value}
}

func bindTransformer(pass *render.Context, value any) (any, bool) {
	switch value.(type) {
	case Bound:
		return value, true
	case values.Transformer:
		return Bind(pass, value), true
	}
	return nil, false
}

func unbind(value any) (*render.Context, any) {
	if b, ok := value.(Bound); ok {
		return b.pass, b.value
	}
	return nil, value
}

// Value returns the wrapped value.
func (b Bound) Value() any {
	return b.value
}

// String renders the wrapped value.
func (b Bound) String() string {
	return values.Text(b.value)
}

// Items returns the elements of a wrapped sequence, each bound to the same
// pass, for use in {% for %} loops. Other values yield nothing.
func (b Bound) Items() []any {
	seq, ok := b.value.(values.Sequence)
	if !ok {
		return nil
	}
	items := seq.Items()
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Bind(b.pass, item)
	}
	return out
}
