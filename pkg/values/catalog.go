package values

import "slices"

// CatalogEntry documents the attributes a value kind answers.
type CatalogEntry struct {
	Label      string
	Transforms []string
	// KeyLookup marks kinds that also resolve unknown names as keys.
	KeyLookup bool
}

// Catalog lists the value kinds templates receive and their attributes.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Label: Cases{}.TypeLabel(), Transforms: sequenceTransformsFor[Case]()},
		{Label: Case{}.TypeLabel(), Transforms: []string{"index", "name", "parameters", "comments", "hasParameters"}},
		{Label: Parameters{}.TypeLabel(), Transforms: append(sequenceTransformsFor[Parameter](), ParameterTransforms...)},
		{Label: Parameter{}.TypeLabel(), Transforms: []string{"name", "hasName", "type", "isOptional"}},
		{Label: Comments{}.TypeLabel(), Transforms: sequenceTransformsFor[KeyValue](), KeyLookup: true},
		{Label: KeyValue{}.TypeLabel(), Transforms: []string{"key", "value"}},
		{Label: OptionalsArray[string]{}.TypeLabel(), Transforms: append(sequenceTransformsFor[Optional[string]](), "empty")},
		{Label: String("").TypeLabel(), Transforms: slices.Clone(StringTransforms)},
	}
}

func sequenceTransformsFor[E any]() []string {
	if Orderable[E]() {
		return slices.Clone(SequenceTransforms)
	}
	return slices.DeleteFunc(slices.Clone(SequenceTransforms), func(name string) bool {
		return name == "sorted"
	})
}
