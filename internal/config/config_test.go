package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezkareid/osddt/internal/agents"
)

func TestConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/user/project", ".osddtrc"), ConfigPath("/home/user/project"))
}

func TestParseRepoType(t *testing.T) {
	rt, err := ParseRepoType("monorepo")
	require.NoError(t, err)
	assert.Equal(t, RepoMonorepo, rt)

	_, err = ParseRepoType("polyrepo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRepoType))
	assert.Contains(t, err.Error(), `"polyrepo"`)
}

// --- FileStore ---

func TestFileStore_SaveFormat(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "unset agents",
			cfg:  Config{RepoType: RepoSingle, Agents: Unset()},
			want: "{\n  \"repoType\": \"single\"\n}\n",
		},
		{
			name: "explicit agents",
			cfg:  Config{RepoType: RepoMonorepo, Agents: Explicit(agents.Claude, agents.Gemini)},
			want: "{\n  \"repoType\": \"monorepo\",\n  \"agents\": [\n    \"claude\",\n    \"gemini\"\n  ]\n}\n",
		},
		{
			name: "explicit empty",
			cfg:  Config{RepoType: RepoSingle, Agents: Explicit()},
			want: "{\n  \"repoType\": \"single\",\n  \"agents\": []\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, NewFileStore().Save(dir, &tt.cfg))

			data, err := os.ReadFile(ConfigPath(dir))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestFileStore_LoadDistinguishesUnsetFromEmpty(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantExplicit bool
		wantKinds    []agents.Kind
	}{
		{name: "absent", content: `{"repoType":"single"}`, wantExplicit: false},
		{name: "empty", content: `{"repoType":"single","agents":[]}`, wantExplicit: true, wantKinds: []agents.Kind{}},
		{name: "listed", content: `{"repoType":"single","agents":["gemini"]}`, wantExplicit: true, wantKinds: []agents.Kind{agents.Gemini}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(ConfigPath(dir), []byte(tt.content), 0o644))

			cfg, err := NewFileStore().Load(dir)
			require.NoError(t, err)
			assert.Equal(t, RepoSingle, cfg.RepoType)
			assert.Equal(t, tt.wantExplicit, cfg.Agents.IsExplicit())
			assert.Equal(t, tt.wantKinds, cfg.Agents.Kinds())
		})
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore()

	original := &Config{RepoType: RepoMonorepo, Agents: Explicit(agents.Claude)}
	require.NoError(t, store.Save(dir, original))

	loaded, err := store.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, original.RepoType, loaded.RepoType)
	assert.Equal(t, original.Agents.Kinds(), loaded.Agents.Kinds())
}

func TestFileStore_Load_NotInitialized(t *testing.T) {
	_, err := NewFileStore().Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInitialized))
	assert.Equal(t, ".osddtrc not found. Run `osddt setup` first.", err.Error())
}

func TestFileStore_Load_Invalid(t *testing.T) {
	tests := map[string]string{
		"corrupt json":  "not json",
		"bad repo type": `{"repoType":"polyrepo"}`,
		"bad agent":     `{"repoType":"single","agents":["cursor"]}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(ConfigPath(dir), []byte(content), 0o644))

			_, err := NewFileStore().Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing .osddtrc")
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))

	require.NoError(t, NewFileStore().Save(dir, &Config{RepoType: RepoSingle}))
	assert.True(t, Exists(dir))
}

func TestAgentSelection_KindsIsCopy(t *testing.T) {
	sel := Explicit(agents.Claude)
	kinds := sel.Kinds()
	kinds[0] = agents.Gemini

	assert.Equal(t, []agents.Kind{agents.Claude}, sel.Kinds())
	assert.Nil(t, Unset().Kinds())
}
