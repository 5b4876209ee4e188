package values

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// StringTransforms lists the attributes String answers.
var StringTransforms = []string{
	"uppercased", "lowercased", "capitalized", "snakeCased", "camelCased", "pascalCased",
	"withParens", "count", "isEmpty",
}

// String is text that answers case-conversion attributes.
type String string

func (s String) String() string {
	return string(s)
}

// TypeLabel implements Transformer.
func (String) TypeLabel() string {
	return "String"
}

// Transform implements Transformer.
func (s String) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, s.TypeLabel(), func(_ *render.Context, name string) (any, bool) {
		text := string(s)
		switch name {
		case "uppercased":
			return String(strings.ToUpper(text)), true
		case "lowercased":
			return String(strings.ToLower(text)), true
		case "capitalized":
			return String(cases.Title(language.Und).String(text)), true
		case "snakeCased":
			return String(strings.ToLower(strings.Join(splitWords(text), "_"))), true
		case "camelCased":
			return String(joinCamel(splitWords(text), false)), true
		case "pascalCased":
			return String(joinCamel(splitWords(text), true)), true
		case "withParens":
			if text == "" {
				return String(""), true
			}
			return String("(" + text + ")"), true
		case "count":
			return utf8.RuneCountInString(text), true
		case "isEmpty":
			return text == "", true
		}
		return nil, false
	})
}

// splitWords breaks identifiers like "fooBar", "foo_bar" or "Foo Bar" into
// words.
func splitWords(text string) []string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func joinCamel(words []string, upperFirst bool) string {
	var b strings.Builder
	for i, word := range words {
		lower := strings.ToLower(word)
		if i == 0 && !upperFirst {
			b.WriteString(lower)
			continue
		}
		r, size := utf8.DecodeRuneInString(lower)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(lower[size:])
	}
	return b.String()
}
