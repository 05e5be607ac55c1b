package resources

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/config"
	"github.com/dezkareid/osddt/internal/features"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func textOf(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	return text
}

func TestHandleConfig(t *testing.T) {
	dir := t.TempDir()
	store := config.NewFileStore()
	require.NoError(t, store.Save(dir, &config.Config{RepoType: config.RepoMonorepo, Agents: config.Explicit(agents.Claude)}))

	h := NewHandler(store, features.NewFileStore(), dir)
	contents, err := h.HandleConfig(context.Background(), readRequest(ConfigURI))
	require.NoError(t, err)

	text := textOf(t, contents)
	assert.Equal(t, "application/json", text.MIMEType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	assert.Equal(t, "monorepo", decoded["repoType"])
	assert.Equal(t, []any{"claude"}, decoded["agents"])
}

func TestHandleConfig_NotInitialized(t *testing.T) {
	h := NewHandler(config.NewFileStore(), features.NewFileStore(), t.TempDir())

	contents, err := h.HandleConfig(context.Background(), readRequest(ConfigURI))
	require.NoError(t, err)

	text := textOf(t, contents)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Contains(t, text.Text, ".osddtrc not found")
}

func TestHandleFeatures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(features.WorkingPath(dir, "auth"), 0o755))

	h := NewHandler(config.NewFileStore(), features.NewFileStore(), dir)
	contents, err := h.HandleFeatures(context.Background(), readRequest(FeaturesURI))
	require.NoError(t, err)

	var list []features.Feature
	require.NoError(t, json.Unmarshal([]byte(textOf(t, contents).Text), &list))
	assert.Equal(t, []features.Feature{{Name: "auth", Status: features.StatusInProgress, Phase: features.PhaseNotStarted, Dir: "working-on/auth"}}, list)
}

func TestHandleFeatures_EmptyIsArray(t *testing.T) {
	h := NewHandler(config.NewFileStore(), features.NewFileStore(), t.TempDir())

	contents, err := h.HandleFeatures(context.Background(), readRequest(FeaturesURI))
	require.NoError(t, err)
	assert.Equal(t, "[]", textOf(t, contents).Text)
}
