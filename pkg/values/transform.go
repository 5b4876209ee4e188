package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// Transformer is implemented by every value a template can query by
// attribute name. Transform reports false when the attribute resolves to
// nothing; it never panics and never returns an error. Failures are written
// to ctx.
type Transformer interface {
	Transform(ctx *render.Context, name string) (any, bool)
	TypeLabel() string
}

// Sequence is implemented by containers templates can iterate.
type Sequence interface {
	Len() int
	Items() []any
}

// Resolve looks name up on value. Plain strings and string slices are
// promoted to String and Array[string] so they answer the same attributes.
func Resolve(ctx *render.Context, value any, name string) (any, bool) {
	if value == nil {
		return nil, false
	}
	t, ok := AsTransformer(value)
	if !ok {
		ctx.ReportInvalidTransform(name, typeNameOf(value))
		return nil, false
	}
	return t.Transform(ctx, name)
}

// ResolvePath resolves a dotted attribute path one segment at a time and
// stops at the first absent result. Empty segments are skipped.
func ResolvePath(ctx *render.Context, value any, path string) (any, bool) {
	current := value
	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		next, ok := Resolve(ctx, current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// AsTransformer returns value as a Transformer when it is one or has a
// container equivalent.
func AsTransformer(value any) (Transformer, bool) {
	switch v := value.(type) {
	case Transformer:
		return v, true
	case string:
		return String(v), true
	case []string:
		return NewArray(v...), true
	}
	return nil, false
}

// TypeLabel returns the normalized type label used for value in diagnostics.
func TypeLabel(value any) string {
	return typeNameOf(value)
}

// Text renders value the way templates print it.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// step is one stage of the resolution order. It reports whether it
// recognised name; a recognised name may still resolve to nil (absent).
type step func(ctx *render.Context, name string) (any, bool)

// dispatch runs steps in order and records an invalid transform when none of
// them recognises name.
func dispatch(ctx *render.Context, name, label string, steps ...step) (any, bool) {
	for _, s := range steps {
		if s == nil {
			continue
		}
		if value, ok := s(ctx, name); ok {
			return value, value != nil
		}
	}
	ctx.ReportInvalidTransform(name, label)
	return nil, false
}

func typeName[E any]() string {
	var zero E
	return typeNameOf(any(zero))
}

func typeNameOf(value any) string {
	switch v := value.(type) {
	case nil:
		return "Any"
	case Transformer:
		return v.TypeLabel()
	case string:
		return "String"
	case bool:
		return "Bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "Int"
	case float32, float64:
		return "Double"
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", value), "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 && !strings.Contains(name, "[") {
		name = name[idx+1:]
	}
	return name
}
