package values

import "github.com/goliatone/go-enumerator/pkg/render"

// Optional holds zero or one E. Presence is tracked separately from the
// value, so a present zero value is distinct from absence.
type Optional[E any] struct {
	value E
	ok    bool
}

// Some wraps a present value.
func Some[E any](value E) Optional[E] {
	return Optional[E]{value: value, ok: true}
}

// None returns an absent Optional.
func None[E any]() Optional[E] {
	return Optional[E]{}
}

// Get returns the value and whether it is present.
func (o Optional[E]) Get() (E, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held.
func (o Optional[E]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value or fallback when absent.
func (o Optional[E]) OrElse(fallback E) E {
	if o.ok {
		return o.value
	}
	return fallback
}

// String renders the value, or nothing when absent.
func (o Optional[E]) String() string {
	if !o.ok {
		return ""
	}
	return Text(o.value)
}

// Compare orders absence before presence; present values use the natural
// order of E.
func (o Optional[E]) Compare(other Optional[E]) int {
	switch {
	case !o.ok && !other.ok:
		return 0
	case !o.ok:
		return -1
	case !other.ok:
		return 1
	}
	if order, ok := orderOf[E](); ok {
		return order(o.value, other.value)
	}
	return 0
}

func (o Optional[E]) ordered() bool {
	return Orderable[E]()
}

// TypeLabel implements Transformer.
func (o Optional[E]) TypeLabel() string {
	return "Optional<" + typeName[E]() + ">"
}

// Transform forwards to the wrapped value. Attributes of an absent value are
// absent without a diagnostic.
func (o Optional[E]) Transform(ctx *render.Context, name string) (any, bool) {
	if !o.ok {
		return nil, false
	}
	return Resolve(ctx, o.value, name)
}
