package values

import (
	"strings"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// ParameterTransforms lists the attributes Parameters adds to the sequence
// operations.
var ParameterTransforms = []string{"names", "optionalNames", "types", "isOptionals", "namesAndTypes", "tupleValue"}

// Parameter describes one associated value of a case.
type Parameter struct {
	Name       Optional[string]
	Type       string
	IsOptional bool
}

// NewParameter builds a Parameter; a blank name means the parameter is
// unnamed.
func NewParameter(name, typ string, isOptional bool) Parameter {
	p := Parameter{Type: strings.TrimSpace(typ), IsOptional: isOptional}
	if name = strings.TrimSpace(name); name != "" {
		p.Name = Some(name)
	}
	return p
}

func (p Parameter) String() string {
	if name, ok := p.Name.Get(); ok {
		return name + ": " + p.Type
	}
	return p.Type
}

// TypeLabel implements Transformer.
func (Parameter) TypeLabel() string {
	return "Parameter"
}

// Transform implements Transformer.
func (p Parameter) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, p.TypeLabel(), func(_ *render.Context, name string) (any, bool) {
		switch name {
		case "name":
			if value, ok := p.Name.Get(); ok {
				return String(value), true
			}
			return nil, true
		case "hasName":
			return p.Name.IsPresent(), true
		case "type":
			return String(p.Type), true
		case "isOptional":
			return p.IsOptional, true
		}
		return nil, false
	})
}

// Parameters is the parameter list of a case.
type Parameters struct {
	params []Parameter
}

// NewParameters copies params into a new list.
func NewParameters(params ...Parameter) Parameters {
	return Parameters{params: append([]Parameter(nil), params...)}
}

// Len returns the number of parameters.
func (p Parameters) Len() int {
	return len(p.params)
}

// Elements returns a copy of the parameters.
func (p Parameters) Elements() []Parameter {
	return append([]Parameter(nil), p.params...)
}

// Items implements Sequence.
func (p Parameters) Items() []any {
	return p.sequence().items()
}

func (p Parameters) String() string {
	return "[" + string(p.sequence().joined()) + "]"
}

// TypeLabel implements Transformer.
func (Parameters) TypeLabel() string {
	return "[Parameter]"
}

// Transform implements Transformer. Sequence operations are consulted
// before the parameter views.
func (p Parameters) Transform(ctx *render.Context, name string) (any, bool) {
	return dispatch(ctx, name, p.TypeLabel(), p.sequence().lookup, p.lookupView)
}

// Names returns each parameter's name, or param<N> for unnamed ones.
func (p Parameters) Names() []string {
	out := make([]string, len(p.params))
	for i, param := range p.params {
		out[i] = param.Name.OrElse(placeholderName(i))
	}
	return out
}

// OptionalNames returns the declared names with unnamed parameters left
// absent in their slots.
func (p Parameters) OptionalNames() OptionalsArray[string] {
	out := make([]Optional[string], len(p.params))
	for i, param := range p.params {
		out[i] = param.Name
	}
	return OptionalsArray[string]{elems: out}
}

// NamesAndTypes returns "name: type" for each parameter, naming unnamed
// parameters by position.
func (p Parameters) NamesAndTypes() []string {
	names := p.Names()
	out := make([]string, len(p.params))
	for i, param := range p.params {
		out[i] = names[i] + ": " + param.Type
	}
	return out
}

// TupleValue returns the shape of the tuple the parameters form. A single
// parameter collapses to its bare type.
func (p Parameters) TupleValue() []string {
	if len(p.params) == 1 {
		return []string{p.params[0].Type}
	}
	return p.NamesAndTypes()
}

func (p Parameters) sequence() sequence[Parameter] {
	return newSequence(p.params, func(params []Parameter) any { return Parameters{params: params} })
}

func (p Parameters) lookupView(_ *render.Context, name string) (any, bool) {
	switch name {
	case "names":
		return NewArray(p.Names()...), true
	case "optionalNames":
		return p.OptionalNames(), true
	case "types":
		types := make([]string, len(p.params))
		for i, param := range p.params {
			types[i] = param.Type
		}
		return NewArray(types...), true
	case "isOptionals":
		flags := make([]bool, len(p.params))
		for i, param := range p.params {
			flags[i] = param.IsOptional
		}
		return NewArray(flags...), true
	case "namesAndTypes":
		return NewArray(p.NamesAndTypes()...), true
	case "tupleValue":
		return NewArray(p.TupleValue()...), true
	}
	return nil, false
}
