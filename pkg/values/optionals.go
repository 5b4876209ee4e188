package values

import "github.com/goliatone/go-enumerator/pkg/render"

// OptionalsArray is an ordered sequence whose slots may be individually
// absent. Positions matter: an absent slot renders as param<N> for its
// 1-based position N.
type OptionalsArray[E any] struct {
	elems []Optional[E]
}

// NewOptionalsArray copies elems into a new OptionalsArray.
func NewOptionalsArray[E any](elems ...Optional[E]) OptionalsArray[E] {
	return OptionalsArray[E]{elems: append([]Optional[E](nil), elems...)}
}

// Len returns the number of slots.
func (o OptionalsArray[E]) Len() int {
	return len(o.elems)
}

// Elements returns a copy of the slots.
func (o OptionalsArray[E]) Elements() []Optional[E] {
	return append([]Optional[E](nil), o.elems...)
}

// Items implements Sequence.
func (o OptionalsArray[E]) Items() []any {
	return o.sequence().items()
}

func (o OptionalsArray[E]) String() string {
	return "[" + string(o.sequence().joined()) + "]"
}

// TypeLabel implements Transformer.
func (o OptionalsArray[E]) TypeLabel() string {
	return "[Optional<" + typeName[E]() + ">]"
}

// Transform implements Transformer. "empty" is accepted as an alias of
// isEmpty. Sparse arrays of KeyValue resolve unknown names as keys over their
// present slots.
func (o OptionalsArray[E]) Transform(ctx *render.Context, name string) (any, bool) {
	if name == "empty" {
		name = "isEmpty"
	}
	return dispatch(ctx, name, o.TypeLabel(), o.sequence().lookup, o.lookupKey)
}

func (o OptionalsArray[E]) sequence() sequence[Optional[E]] {
	seq := newSequence(o.elems, func(elems []Optional[E]) any {
		return OptionalsArray[E]{elems: elems}
	})
	seq.text = func(_ int, elem Optional[E]) (string, bool) {
		value, ok := elem.Get()
		if !ok {
			return "", false
		}
		return Text(value), true
	}
	return seq
}

func (o OptionalsArray[E]) lookupKey(_ *render.Context, name string) (any, bool) {
	slots, ok := any(o.elems).([]Optional[KeyValue])
	if !ok {
		return nil, false
	}
	pairs := make([]KeyValue, 0, len(slots))
	for _, slot := range slots {
		if kv, present := slot.Get(); present {
			pairs = append(pairs, kv)
		}
	}
	if value, found := lookupKey(pairs, name); found {
		return value, true
	}
	return nil, false
}
