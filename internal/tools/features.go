// Package tools implements MCP tool handlers for an osddt project.
//
// Each tool receives its dependencies via its struct and returns a handler
// compatible with mcp-go's CallToolRequest signature. One file per concern.
package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/features"
)

// ListFeaturesTool handles the osddt_list_features MCP tool.
type ListFeaturesTool struct {
	store features.Store
	root  string
}

// NewListFeaturesTool creates a ListFeaturesTool for the project at root.
func NewListFeaturesTool(store features.Store, root string) *ListFeaturesTool {
	return &ListFeaturesTool{store: store, root: root}
}

// Definition returns the MCP tool definition for registration.
func (t *ListFeaturesTool) Definition() mcp.Tool {
	return mcp.NewTool("osddt_list_features",
		mcp.WithDescription(
			"List feature folders under working-on/ (in progress) and done/ (finished), "+
				"with the workflow phase of each and the command to run next.",
		),
	)
}

// Handle processes the osddt_list_features tool call.
func (t *ListFeaturesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.store.List(t.root)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No features found. Start one with `/osddt.start`."), nil
	}

	var sb strings.Builder
	sb.WriteString("| Feature | Phase | Folder | Next |\n")
	sb.WriteString("|---------|-------|--------|------|\n")
	for _, f := range list {
		next := "—"
		if cmd := f.Phase.Next(); cmd != "" {
			next = fmt.Sprintf("`/%s %s`", cmd, f.Name)
		}
		fmt.Fprintf(&sb, "| %s | %s | `%s` | %s |\n", f.Name, f.Phase, f.Dir, next)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// DoneTool handles the osddt_done MCP tool.
// It archives a feature exactly like `osddt done`.
type DoneTool struct {
	store  features.Store
	config config.Store
	root   string
}

// NewDoneTool creates a DoneTool for the project at root.
func NewDoneTool(store features.Store, cfg config.Store, root string) *DoneTool {
	return &DoneTool{store: store, config: cfg, root: root}
}

// Definition returns the MCP tool definition for registration.
func (t *DoneTool) Definition() mcp.Tool {
	return mcp.NewTool("osddt_done",
		mcp.WithDescription(
			"Move a finished feature from working-on/<feature_name> to "+
				"done/<YYYY-MM-DD>-<feature_name>.",
		),
		mcp.WithString("feature_name",
			mcp.Required(),
			mcp.Description("Folder name under working-on/"),
		),
	)
}

// Handle processes the osddt_done tool call.
func (t *DoneTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("feature_name", "")
	if name == "" {
		return mcp.NewToolResultError("'feature_name' is required"), nil
	}

	if _, err := t.config.Load(t.root); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	moved, err := t.store.Archive(t.root, name)
	if err != nil {
		if errors.Is(err, features.ErrFeatureNotFound) ||
			errors.Is(err, features.ErrAlreadyDone) ||
			errors.Is(err, features.ErrInvalidFeatureName) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Moved: %s → %s", moved.From, moved.To)), nil
}

// FeatureNameTool handles the osddt_feature_name MCP tool.
type FeatureNameTool struct{}

// NewFeatureNameTool creates a FeatureNameTool.
func NewFeatureNameTool() *FeatureNameTool {
	return &FeatureNameTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *FeatureNameTool) Definition() mcp.Tool {
	return mcp.NewTool("osddt_feature_name",
		mcp.WithDescription(
			"Derive a working-directory feature name (lowercase, hyphenated, "+
				"at most 30 characters) from a branch name or description.",
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Branch name such as feat/add-auth, or a plain description"),
		),
	)
}

// Handle processes the osddt_feature_name tool call.
func (t *FeatureNameTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := req.GetString("input", "")
	if input == "" {
		return mcp.NewToolResultError("'input' is required"), nil
	}
	name, err := features.DeriveName(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(name), nil
}
