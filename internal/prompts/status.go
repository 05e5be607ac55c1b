package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the osddt-status MCP prompt.
// It asks the AI to summarise every feature folder and its phase.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("osddt-status",
		mcp.WithPromptDescription(
			"Show in-progress and finished features, "+
				"and what to run next for each one.",
		),
	)
}

// Handle processes the osddt-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "osddt feature status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `osddt_list_features` to list my features.\n\n" +
						"Then:\n" +
						"1. Show in-progress features first, finished ones after\n" +
						"2. For each in-progress feature, apply the `osddt.continue` phase rules to its folder\n" +
						"3. Tell me the exact command to run next for each one",
				),
			},
		},
	}, nil
}
