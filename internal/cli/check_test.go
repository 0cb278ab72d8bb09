package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_AllPass(t *testing.T) {
	out, err := execute(t, nil, "check", "testdata/suites/pass")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ refs (1 cases)")
	assert.Contains(t, out, "✓ signed (2 cases)")
	assert.Contains(t, out, "Check Summary: 3 passed, 0 failed, 3 total")
	assert.Contains(t, out, "✓ All cases passed")
}

func TestCheck_Filter(t *testing.T) {
	out, err := execute(t, nil, "check", "testdata/suites/pass", "--filter", "max_*")
	require.NoError(t, err)
	assert.Contains(t, out, "Check Summary: 2 passed, 0 failed, 2 total")
}

func TestCheck_BadFilter(t *testing.T) {
	_, err := execute(t, nil, "check", "testdata/suites/pass", "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestCheck_Failures(t *testing.T) {
	out, err := execute(t, nil, "check", "testdata/suites/fail")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "2 case(s) failed", err.Error())

	assert.Contains(t, out, "✗ testdata/suites/fail/broken.yaml (0 cases)")
	assert.Contains(t, out, "Load error:")
	assert.Contains(t, out, "field argz not found")
	assert.Contains(t, out, "✗ wrong (2 cases)")
	assert.Contains(t, out, "  ✗ wrong\n    got 1, want 2\n")
	assert.NotContains(t, out, "✗ right")
	assert.Contains(t, out, "Check Summary: 1 passed, 2 failed, 3 total")
}

func TestCheck_FailuresJSON(t *testing.T) {
	out, err := execute(t, nil, "--format", "json", "check", "testdata/suites/fail/wrong.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
		Error  *CLIError   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeSuiteFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Suites, 1)
	assert.Equal(t, "wrong", resp.Data.Suites[0].Name)
	assert.False(t, resp.Data.Suites[0].Pass)
}

func TestCheck_MissingPath(t *testing.T) {
	_, err := execute(t, nil, "check", "/nonexistent/suites")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "suite path not found")
}

func TestCheck_EmptyDir(t *testing.T) {
	out, err := execute(t, nil, "check", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Check Summary: 0 passed, 0 failed, 0 total")
}

func TestCheck_NoArgs(t *testing.T) {
	_, err := execute(t, nil, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
