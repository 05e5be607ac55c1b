// Package prompts exposes the osddt command catalogue as MCP prompts.
//
// MCP prompts are user-triggered workflows, the server-side counterpart of
// the slash commands osddt writes into .claude/ and .gemini/. Hosts that
// speak MCP get the same bodies without any generated files.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dezkareid/osddt/internal/templates"
)

// ArgsArgument is the prompt argument that replaces the body placeholder.
const ArgsArgument = "args"

// CommandPrompt serves one command definition.
type CommandPrompt struct {
	def      templates.CommandDefinition
	renderer templates.Renderer
	command  string
}

// NewCommandPrompt creates a prompt for def. command is the osddt invocation
// embedded in the body.
func NewCommandPrompt(def templates.CommandDefinition, renderer templates.Renderer, command string) *CommandPrompt {
	return &CommandPrompt{def: def, renderer: renderer, command: command}
}

// Definition returns the MCP prompt definition for registration.
func (p *CommandPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt(p.def.Name,
		mcp.WithPromptDescription(p.def.Description),
		mcp.WithArgument(ArgsArgument,
			mcp.ArgumentDescription("Feature description, branch name or topic passed to the command"),
		),
	)
}

// Handle renders the body and substitutes the caller's arguments for the
// placeholder, the way an agent does when it runs a command file.
func (p *CommandPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	body, err := p.renderer.Render(p.def, templates.Context{
		Args:    templates.ArgsDollar,
		Command: p.command,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", p.def.Name, err)
	}

	args := ""
	if a := req.Params.Arguments; a != nil {
		args = strings.TrimSpace(a[ArgsArgument])
	}
	body = strings.ReplaceAll(body, string(templates.ArgsDollar), args)

	return &mcp.GetPromptResult{
		Description: p.def.Description,
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(body),
			},
		},
	}, nil
}

// All builds one prompt per registry entry, in workflow order.
func All(renderer templates.Renderer, command string) []*CommandPrompt {
	defs := templates.Definitions()
	out := make([]*CommandPrompt, len(defs))
	for i, def := range defs {
		out[i] = NewCommandPrompt(def, renderer, command)
	}
	return out
}
