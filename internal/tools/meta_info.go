package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dezkareid/osddt/internal/meta"
)

// MetaInfoTool handles the osddt_meta_info MCP tool.
// It returns the same JSON line as `osddt meta-info`.
type MetaInfoTool struct {
	collector *meta.Collector
	root      string
}

// NewMetaInfoTool creates a MetaInfoTool for the project at root.
func NewMetaInfoTool(collector *meta.Collector, root string) *MetaInfoTool {
	return &MetaInfoTool{collector: collector, root: root}
}

// Definition returns the MCP tool definition for registration.
func (t *MetaInfoTool) Definition() mcp.Tool {
	return mcp.NewTool("osddt_meta_info",
		mcp.WithDescription(
			"Return the current git branch and today's date as JSON: "+
				`{"branch": "...", "date": "YYYY-MM-DD"}. `+
				"The branch is \"unknown\" outside a git repository.",
		),
	)
}

// Handle processes the osddt_meta_info tool call.
func (t *MetaInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(t.collector.Collect(ctx, t.root))
	if err != nil {
		return nil, fmt.Errorf("marshaling meta info: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
