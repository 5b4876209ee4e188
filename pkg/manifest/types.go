package manifest

import (
	"github.com/goliatone/go-enumerator/pkg/diag"
	"github.com/goliatone/go-enumerator/pkg/render"
	"github.com/goliatone/go-enumerator/pkg/values"
)

// Manifest is a parsed declaration file.
type Manifest struct {
	Declarations []Declaration `json:"declarations" yaml:"declarations" validate:"required,min=1,dive"`

	// Source records the file the manifest was read from.
	Source string `json:"-" yaml:"-"`
}

// Declaration is one enum the expander renders in its own pass.
type Declaration struct {
	Name            string           `json:"name" yaml:"name" validate:"required"`
	Location        diag.Location    `json:"location" yaml:"location"`
	Template        string           `json:"template,omitempty" yaml:"template,omitempty" validate:"required_without=TemplateFile"`
	TemplateFile    string           `json:"templateFile,omitempty" yaml:"templateFile,omitempty" validate:"required_without=Template"`
	AllowedComments *AllowedComments `json:"allowedComments,omitempty" yaml:"allowedComments,omitempty"`
	Cases           []Case           `json:"cases" yaml:"cases" validate:"dive"`
	Comments        []string         `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// AllowedComments restricts the comment keys the declaration's template may
// read.
type AllowedComments struct {
	Keys     []string      `json:"keys" yaml:"keys"`
	Location diag.Location `json:"location" yaml:"location"`
}

// Case is one case of a declaration.
type Case struct {
	Name       string      `json:"name" yaml:"name" validate:"required"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty" validate:"dive"`
	Comments   []string    `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// Parameter is an associated value of a case. Name may be empty.
type Parameter struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string `json:"type" yaml:"type" validate:"required"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Lookup returns the declaration called name.
func (m *Manifest) Lookup(name string) (Declaration, bool) {
	if m == nil {
		return Declaration{}, false
	}
	for _, decl := range m.Declarations {
		if decl.Name == name {
			return decl, true
		}
	}
	return Declaration{}, false
}

// Names lists the declaration names in file order.
func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.Declarations))
	for i, decl := range m.Declarations {
		names[i] = decl.Name
	}
	return names
}

// ValueCases converts the declaration's cases, numbering them from zero.
func (d Declaration) ValueCases() values.Cases {
	out := make([]values.Case, len(d.Cases))
	for i, c := range d.Cases {
		params := make([]values.Parameter, len(c.Parameters))
		for j, p := range c.Parameters {
			params[j] = values.NewParameter(p.Name, p.Type, p.Optional)
		}
		out[i] = values.Case{
			Index:      i,
			Name:       c.Name,
			Parameters: values.NewParameters(params...),
			Comments:   values.ParseComments(c.Comments),
		}
	}
	return values.NewCases(out...)
}

// ValueComments parses the declaration-level comments.
func (d Declaration) ValueComments() values.Comments {
	return values.ParseComments(d.Comments)
}

// ContextOptions returns the render options implied by the declaration.
func (d Declaration) ContextOptions() []render.ContextOption {
	if d.AllowedComments == nil {
		return nil
	}
	return []render.ContextOption{render.WithRestriction(d.AllowedComments.Keys, d.AllowedComments.Location)}
}

// TemplateData is the root context handed to the declaration's template.
func (d Declaration) TemplateData() map[string]any {
	return map[string]any{
		"name":     values.String(d.Name),
		"cases":    d.ValueCases(),
		"comments": d.ValueComments(),
		"location": d.Location.String(),
	}
}
