package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xroche/enhancedminmax/internal/store"
)

// seedStore writes one run with two steps.
func seedStore(t *testing.T) string {
	t.Helper()
	db := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.WriteRun(ctx, store.Run{ID: "r1", Op: "min", Args: []string{"&0x10", "3u8"}, Iterations: 2}))
	require.NoError(t, st.WriteStep(ctx, store.Step{RunID: "r1", Seq: 1, Value: "4", State: []string{"16", "3u8"}}))
	require.NoError(t, st.WriteStep(ctx, store.Step{RunID: "r1", Seq: 2, Value: "4", State: []string{"16", "3u8"}}))
	return db
}

func TestHistory_List(t *testing.T) {
	db := seedStore(t)

	out, err := execute(t, nil, "history", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "r1  min  2 iterations  &0x10 3u8\n", out)
}

func TestHistory_ListEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	st, err := store.Open(db)
	require.NoError(t, err)
	st.Close()

	out, err := execute(t, nil, "history", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", out)
}

func TestHistory_Run(t *testing.T) {
	db := seedStore(t)

	out, err := execute(t, nil, "history", "--db", db, "--run", "r1")
	require.NoError(t, err)
	assert.Equal(t, "run r1: min x2\na=16 b=3u8\n#1 value=4 a=16 b=3u8\n#2 value=4 a=16 b=3u8\n", out)
}

func TestHistory_RunJSON(t *testing.T) {
	db := seedStore(t)

	out, err := execute(t, nil, "--format", "json", "history", "--db", db, "--run", "r1")
	require.NoError(t, err)

	var resp struct {
		Data RunDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "r1", resp.Data.Run.ID)
	assert.Equal(t, []string{"&0x10", "3u8"}, resp.Data.Run.Args)
	require.Len(t, resp.Data.Steps, 2)
	assert.Equal(t, int64(2), resp.Data.Steps[1].Seq)
}

func TestHistory_Errors(t *testing.T) {
	db := seedStore(t)

	_, err := execute(t, nil, "history", "--db", db, "--run", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = execute(t, nil, "history", "--db", filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")

	_, err = execute(t, nil, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "db" not set`)
}
