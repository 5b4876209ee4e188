package template

import (
	"io"

	"github.com/goliatone/go-enumerator/pkg/render"
)

// TemplateRenderer is the general purpose engine contract.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// PassRenderer renders one declaration within one render pass. Values in
// data that answer attribute lookups are bound to pass before execution.
type PassRenderer interface {
	RenderPass(pass *render.Context, name string, data map[string]any, out ...io.Writer) (string, error)
	RenderPassString(pass *render.Context, templateContent string, data map[string]any, out ...io.Writer) (string, error)
}
