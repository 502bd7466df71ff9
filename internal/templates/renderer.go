package templates

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// VarProjectName is the placeholder bound to the project name.
const VarProjectName = "projectName"

// Variables maps placeholder names to their replacement values.
type Variables map[string]string

// Token returns the literal placeholder token for a variable name.
func Token(name string) string {
	return "{{" + name + "}}"
}

// Renderer substitutes {{name}} tokens in templated files. Substitution is a
// single literal pass: values are never re-scanned, there is no escaping and
// unknown tokens are left as they are.
type Renderer struct {
	replacer *strings.Replacer
}

// NewRenderer creates a renderer for the given variables.
func NewRenderer(vars Variables) *Renderer {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, Token(name), vars[name])
	}

	return &Renderer{replacer: strings.NewReplacer(pairs...)}
}

// Render returns the materialized content of f. Non-templated files are
// returned byte for byte. Templated files must be valid UTF-8 text.
func (r *Renderer) Render(f TemplateFile) ([]byte, error) {
	content, err := f.Read()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.SourcePath, err)
	}

	if !f.Templated {
		return content, nil
	}

	return r.RenderBytes(f.SourcePath, content)
}

// RenderBytes substitutes variables in templated content. name is used in
// error messages only.
func (r *Renderer) RenderBytes(name string, content []byte) ([]byte, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("template %s is not valid UTF-8 text", name)
	}
	return []byte(r.replacer.Replace(string(content))), nil
}
