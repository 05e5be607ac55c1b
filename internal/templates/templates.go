// Package templates holds the osddt command catalogue and renders each
// command body from embedded Markdown templates.
//
// Templates use [[ ]] delimiters so that agent syntax such as {{args}}
// passes through untouched.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed commands/*.md.tmpl fragments/*.md.tmpl
var templateFS embed.FS

// ArgPlaceholder is the literal token an agent substitutes with the user's
// arguments at invocation time.
type ArgPlaceholder string

const (
	// ArgsDollar is the Claude Code placeholder.
	ArgsDollar ArgPlaceholder = "$ARGUMENTS"
	// ArgsBraces is the Gemini CLI placeholder.
	ArgsBraces ArgPlaceholder = "{{args}}"
)

// Shared fragment template names.
const (
	FragmentRepoPreamble       = "repo-preamble.md.tmpl"
	FragmentFeatureNameRules   = "feature-name-rules.md.tmpl"
	FragmentWorkingDirStep     = "working-dir-step.md.tmpl"
	FragmentResolveFeatureName = "resolve-feature-name.md.tmpl"
	FragmentNextStepToSpec     = "next-step-to-spec.md.tmpl"
)

// Context is the data every command body is rendered with.
type Context struct {
	// Args is the agent's argument placeholder, inserted verbatim.
	Args ArgPlaceholder
	// Command is how the osddt CLI is invoked in the target project,
	// e.g. "npx osddt".
	Command string
}

// Renderer produces command bodies.
type Renderer interface {
	Render(def CommandDefinition, ctx Context) (string, error)
}

// EmbedRenderer renders templates parsed from the embedded filesystem.
// It is read-only after construction and safe for concurrent use.
type EmbedRenderer struct {
	tmpl *template.Template
}

var _ Renderer = (*EmbedRenderer)(nil)

// NewRenderer parses every embedded template.
func NewRenderer() (*EmbedRenderer, error) {
	tmpl, err := template.New("osddt").
		Delims("[[", "]]").
		Option("missingkey=error").
		ParseFS(templateFS, "commands/*.md.tmpl", "fragments/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &EmbedRenderer{tmpl: tmpl}, nil
}

// Render executes the body template of def.
func (r *EmbedRenderer) Render(def CommandDefinition, ctx Context) (string, error) {
	return r.execute(def.Template, ctx)
}

// Fragment renders one shared fragment on its own. Command bodies include
// fragments verbatim, so the output is a substring of every body using it.
func (r *EmbedRenderer) Fragment(name string, ctx Context) (string, error) {
	return r.execute(name, ctx)
}

func (r *EmbedRenderer) execute(name string, ctx Context) (string, error) {
	if r.tmpl.Lookup(name) == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
