package values

import "github.com/goliatone/go-enumerator/pkg/render"

// Comments is the ordered list of key/value annotations attached to a
// declaration or a case. It has no restriction of its own: the allowed-key
// restriction is read from the render.Context at lookup time.
type Comments struct {
	pairs []KeyValue
}

// NewComments copies pairs into a new Comments list.
func NewComments(pairs ...KeyValue) Comments {
	return Comments{pairs: append([]KeyValue(nil), pairs...)}
}

// ParseComments builds a Comments list from raw annotation lines, dropping
// the lines that are not "key: value" pairs.
func ParseComments(lines []string) Comments {
	return Comments{pairs: ParseKeyValues(lines)}
}

// Len returns the number of pairs.
func (c Comments) Len() int {
	return len(c.pairs)
}

// Pairs returns a copy of the pairs.
func (c Comments) Pairs() []KeyValue {
	return append([]KeyValue(nil), c.pairs...)
}

// Items implements Sequence.
func (c Comments) Items() []any {
	return c.sequence().items()
}

// Value returns the value of the first pair with key.
func (c Comments) Value(key string) (string, bool) {
	value, ok := lookupKey(c.pairs, key)
	return string(value), ok
}

func (c Comments) String() string {
	return "[" + string(c.sequence().joined()) + "]"
}

// TypeLabel implements Transformer.
func (Comments) TypeLabel() string {
	return "[KeyValue]"
}

// Transform implements Transformer. Names that are not structural operations
// are looked up as comment keys, subject to the pass's allowed-key
// restriction.
func (c Comments) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, c.TypeLabel(), c.sequence().lookup, c.lookupKey)
}

func (c Comments) sequence() sequence[KeyValue] {
	seq := newSequence(c.pairs, func(pairs []KeyValue) any { return Comments{pairs: pairs} })
	seq.pairs = func(pairs []KeyValue) any { return Comments{pairs: pairs} }
	return seq
}

// lookupKey consults key under the restriction. Any non-structural name is a
// comment key, so a miss renders as absent and is never an invalid transform.
// A disallowed key is reported by the context.
func (c Comments) lookupKey(ctx *render.Context, key string) (any, bool) {
	ctx.CheckCommentKey(key)
	if value, found := lookupKey(c.pairs, key); found {
		return value, true
	}
	return nil, true
}
