package agents

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dezkareid/osddt/internal/templates"
)

// Formatter renders command definitions into agent files.
type Formatter struct {
	renderer templates.Renderer
}

// NewFormatter creates a Formatter backed by the given renderer.
func NewFormatter(r templates.Renderer) *Formatter {
	return &Formatter{renderer: r}
}

// Format renders one definition for the given agent. command is the osddt
// invocation embedded in the body (see workspace.ResolveCommand).
func (f *Formatter) Format(kind Kind, def templates.CommandDefinition, command string) (string, error) {
	body, err := f.renderer.Render(def, templates.Context{
		Args:    kind.Placeholder(),
		Command: command,
	})
	if err != nil {
		return "", err
	}

	switch kind {
	case Claude:
		return claudeFile(def.Description, body)
	case Gemini:
		return geminiFile(def.Description, body)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// FormattedFiles renders every registry entry for kind, in registry order,
// with absolute paths under projectDir.
func (f *Formatter) FormattedFiles(kind Kind, projectDir, command string) ([]GeneratedFile, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	dir := filepath.Join(projectDir, kind.CommandsDir())
	defs := templates.Definitions()
	files := make([]GeneratedFile, 0, len(defs))
	for _, def := range defs {
		content, err := f.Format(kind, def, command)
		if err != nil {
			return nil, fmt.Errorf("formatting %s for %s: %w", def.Name, kind, err)
		}
		files = append(files, GeneratedFile{
			Path:    filepath.Join(dir, def.Name+"."+kind.Ext()),
			Content: content,
		})
	}
	return files, nil
}

// claudeFile builds a Markdown command with YAML front matter.
func claudeFile(description, body string) (string, error) {
	front := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "description"},
			{Kind: yaml.ScalarNode, Value: description, Style: yaml.DoubleQuotedStyle},
		},
	}
	out, err := yaml.Marshal(front)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n\n" + body, nil
}

// geminiFile builds a TOML command. The prompt is a multi-line basic string,
// so the body must not contain a closing delimiter or escape sequences.
func geminiFile(description, body string) (string, error) {
	if strings.Contains(body, `"""`) || strings.Contains(body, `\`) {
		return "", fmt.Errorf("prompt body cannot be embedded in a TOML multi-line string")
	}

	var buf bytes.Buffer
	header := struct {
		Description string `toml:"description"`
	}{description}
	if err := toml.NewEncoder(&buf).Encode(header); err != nil {
		return "", fmt.Errorf("encoding description: %w", err)
	}

	buf.WriteString("\nprompt = \"\"\"\n")
	buf.WriteString(body)
	buf.WriteString("\"\"\"\n")
	return buf.String(), nil
}
