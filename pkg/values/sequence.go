package values

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// SequenceTransforms lists the structural attributes every sequence-like
// container answers. sorted is only answered for orderable elements.
var SequenceTransforms = []string{
	"first", "last", "reversed", "count", "isEmpty", "sorted", "joined", "keyValues",
}

// sequence is the shared view the structural operations work on.
type sequence[E any] struct {
	elems []E
	// rewrap builds a container of the same kind for reversed and sorted.
	rewrap func([]E) any
	// text renders element i; false marks an absent slot.
	text func(i int, elem E) (string, bool)
	// pairs builds the container returned by keyValues.
	pairs func([]KeyValue) any
}

func newSequence[E any](elems []E, rewrap func([]E) any) sequence[E] {
	return sequence[E]{
		elems:  elems,
		rewrap: rewrap,
		text: func(_ int, elem E) (string, bool) {
			return Text(elem), true
		},
		pairs: func(kvs []KeyValue) any {
			return NewArray(kvs...)
		},
	}
}

func (s sequence[E]) lookup(_ *render.Context, name string) (any, bool) {
	switch name {
	case "first":
		if len(s.elems) == 0 {
			return nil, true
		}
		return s.elems[0], true
	case "last":
		if len(s.elems) == 0 {
			return nil, true
		}
		return s.elems[len(s.elems)-1], true
	case "reversed":
		reversed := slices.Clone(s.elems)
		slices.Reverse(reversed)
		return s.rewrap(reversed), true
	case "count":
		return len(s.elems), true
	case "isEmpty":
		return len(s.elems) == 0, true
	case "sorted":
		order, ok := orderOf[E]()
		if !ok {
			return nil, false
		}
		sorted := slices.Clone(s.elems)
		slices.SortStableFunc(sorted, order)
		return s.rewrap(sorted), true
	case "joined":
		return s.joined(), true
	case "keyValues":
		lines := make([]string, 0, len(s.elems))
		for i, elem := range s.elems {
			if text, present := s.text(i, elem); present {
				lines = append(lines, text)
			}
		}
		return s.pairs(ParseKeyValues(lines)), true
	}
	return nil, false
}

// joined renders every element separated by ", ", naming absent slots by
// position.
func (s sequence[E]) joined() String {
	parts := make([]string, len(s.elems))
	for i, elem := range s.elems {
		text, present := s.text(i, elem)
		if !present {
			text = placeholderName(i)
		}
		parts[i] = text
	}
	return String(strings.Join(parts, ", "))
}

func (s sequence[E]) items() []any {
	out := make([]any, len(s.elems))
	for i, elem := range s.elems {
		out[i] = elem
	}
	return out
}

// placeholderName names the element at 0-based index i when it has no name
// of its own.
func placeholderName(i int) string {
	return fmt.Sprintf("param%d", i+1)
}
