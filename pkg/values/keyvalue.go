package values

import (
	"cmp"
	"strings"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// KeyValue is an immutable key/value pair, ordered by key then value.
type KeyValue struct {
	Key   string
	Value string
}

// ParseKeyValue splits text of the form "key: value" on its first colon and
// trims both halves. Text without a colon, or with a blank key or value, is
// not a pair.
func ParseKeyValue(text string) (KeyValue, bool) {
	key, value, found := strings.Cut(text, ":")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !found || key == "" || value == "" {
		return KeyValue{}, false
	}
	return KeyValue{Key: key, Value: value}, true
}

// ParseKeyValues parses every line and silently drops the malformed ones.
func ParseKeyValues(lines []string) []KeyValue {
	out := make([]KeyValue, 0, len(lines))
	for _, line := range lines {
		if kv, ok := ParseKeyValue(line); ok {
			out = append(out, kv)
		}
	}
	return out
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value
}

// Compare implements Comparer.
func (kv KeyValue) Compare(other KeyValue) int {
	if c := cmp.Compare(kv.Key, other.Key); c != 0 {
		return c
	}
	return cmp.Compare(kv.Value, other.Value)
}

// TypeLabel implements Transformer.
func (KeyValue) TypeLabel() string {
	return "KeyValue"
}

// Transform implements Transformer.
func (kv KeyValue) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, kv.TypeLabel(), func(_ *render.Context, name string) (any, bool) {
		switch name {
		case "key":
			return String(kv.Key), true
		case "value":
			return String(kv.Value), true
		}
		return nil, false
	})
}

func lookupKey(pairs []KeyValue, key string) (String, bool) {
	for _, kv := range pairs {
		if kv.Key == key {
			return String(kv.Value), true
		}
	}
	return "", false
}
