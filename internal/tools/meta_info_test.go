package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezkareid/osddt/internal/meta"
)

type fixedRunner struct{ out string }

func (r fixedRunner) Run(context.Context, string, string, ...string) (meta.CmdResult, error) {
	return meta.CmdResult{Stdout: r.out}, nil
}

func TestMetaInfo(t *testing.T) {
	tool := NewMetaInfoTool(meta.NewCollector(fixedRunner{out: "feat/auth\n"}, nil), t.TempDir())

	res, err := tool.Handle(context.Background(), callRequest(nil))
	require.NoError(t, err)

	var info meta.Info
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, "feat/auth", info.Branch)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, info.Date)
}
