// Package resources implements MCP resource handlers for an osddt project.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (osddt://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/features"
)

const (
	ConfigURI   = "osddt://config"
	FeaturesURI = "osddt://features"
)

// Handler serves resources for the project at root.
type Handler struct {
	config   config.Store
	features features.Store
	root     string
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(cfg config.Store, feats features.Store, root string) *Handler {
	return &Handler{config: cfg, features: feats, root: root}
}

// ConfigResource returns the MCP resource definition for .osddtrc.
func (h *Handler) ConfigResource() mcp.Resource {
	return mcp.NewResource(
		ConfigURI,
		"osddt project configuration",
		mcp.WithResourceDescription("The project's .osddtrc: repository type and enabled agents"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleConfig returns .osddtrc as JSON.
func (h *Handler) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cfg, err := h.config.Load(h.root)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	return jsonResource(req.Params.URI, cfg)
}

// FeaturesResource returns the MCP resource definition for the feature list.
func (h *Handler) FeaturesResource() mcp.Resource {
	return mcp.NewResource(
		FeaturesURI,
		"osddt features",
		mcp.WithResourceDescription("Feature folders under working-on/ and done/"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleFeatures returns every feature folder as a JSON array.
func (h *Handler) HandleFeatures(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	list, err := h.features.List(h.root)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	if list == nil {
		list = []features.Feature{}
	}
	return jsonResource(req.Params.URI, list)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
