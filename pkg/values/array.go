package values

import "github.com/goliatone/go-enumerator/pkg/render"

// Array is an immutable ordered sequence. Duplicates are kept in their
// original order.
type Array[E any] struct {
	elems []E
}

// NewArray copies elems into a new Array.
func NewArray[E any](elems ...E) Array[E] {
	return Array[E]{elems: append([]E(nil), elems...)}
}

// Len returns the number of elements.
func (a Array[E]) Len() int {
	return len(a.elems)
}

// Elements returns a copy of the elements.
func (a Array[E]) Elements() []E {
	return append([]E(nil), a.elems...)
}

// Items implements Sequence.
func (a Array[E]) Items() []any {
	return a.sequence().items()
}

func (a Array[E]) String() string {
	return "[" + string(a.sequence().joined()) + "]"
}

// TypeLabel implements Transformer.
func (a Array[E]) TypeLabel() string {
	return "[" + typeName[E]() + "]"
}

// Transform implements Transformer. Arrays of KeyValue also resolve unknown
// names as keys.
func (a Array[E]) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, a.TypeLabel(), a.sequence().lookup, a.lookupKey)
}

func (a Array[E]) sequence() sequence[E] {
	return newSequence(a.elems, func(elems []E) any { return Array[E]{elems: elems} })
}

func (a Array[E]) lookupKey(_ *render.Context, name string) (any, bool) {
	pairs, ok := any(a.elems).([]KeyValue)
	if !ok {
		return nil, false
	}
	if value, found := lookupKey(pairs, name); found {
		return value, true
	}
	return nil, false
}
