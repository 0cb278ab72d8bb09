package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden(t *testing.T) {
	for _, file := range []string{
		"testdata/suites/mixed_signedness.yaml",
		"testdata/suites/references.cue",
	} {
		t.Run(file, func(t *testing.T) {
			s, err := Load(file)
			require.NoError(t, err)

			result := RunWithGolden(t, s)
			assert.True(t, result.Pass, "%+v", result.Cases)
		})
	}
}

func TestRun_Failures(t *testing.T) {
	yes := true
	delta := Delta(1)
	s := &Suite{
		Name:        "failures",
		Description: "every way a case can fail",
		Cases: []Case{
			{Name: "wrong_value", Op: OpMax, Args: []Literal{"1", "2"}, Want: "1"},
			{Name: "wrong_kind", Op: OpMin, Args: []Literal{"-2", "0u"}, Want: "-2", Kind: "int"},
			{Name: "wrong_ref", Op: OpMin, Args: []Literal{"&1", "2"}, Want: "1", Ref: &yes},
			{Name: "bad_arg", Op: OpMin, Args: []Literal{"1", "zz"}, Want: "1"},
			{Name: "bad_want", Op: OpMin, Args: []Literal{"1"}, Want: "256u8"},
			{
				Name: "wrong_after", Op: OpMax, Args: []Literal{"&1", "&2"}, Want: "2",
				Mutate: &delta, After: []Literal{"1", "2"},
			},
			{Name: "passes", Op: OpMin, Args: []Literal{"5"}, Want: "5"},
		},
	}

	result := Run(s)
	assert.False(t, result.Pass)
	assert.Equal(t, 6, result.Failed)
	assert.Equal(t, 1, result.Passed)
	require.Len(t, result.Cases, 7)

	byName := map[string]CaseResult{}
	for _, c := range result.Cases {
		byName[c.Name] = c
	}

	assert.Equal(t, []string{"got 2, want 1"}, byName["wrong_value"].Errors)
	assert.Equal(t, []string{"got kind uint, want int"}, byName["wrong_kind"].Errors)
	assert.Equal(t, []string{"got ref=false, want ref=true"}, byName["wrong_ref"].Errors)

	require.Len(t, byName["bad_arg"].Errors, 1)
	assert.Contains(t, byName["bad_arg"].Errors[0], "argument 2")
	assert.Empty(t, byName["bad_arg"].Got)

	require.Len(t, byName["bad_want"].Errors, 1)
	assert.Contains(t, byName["bad_want"].Errors[0], "want:")

	after := byName["wrong_after"]
	assert.Equal(t, []string{"&1", "&3"}, after.After)
	assert.Equal(t, []string{"after[1]: got &3, want 2"}, after.Errors)

	assert.True(t, byName["passes"].Pass)
	assert.Empty(t, byName["passes"].Errors)
}

func TestRun_CasesAreIsolated(t *testing.T) {
	delta := Delta(10)
	s := &Suite{
		Name:        "isolated",
		Description: "mutation does not carry over",
		Cases: []Case{
			{Name: "first", Op: OpMax, Args: []Literal{"&1", "&2"}, Want: "2", Mutate: &delta, After: []Literal{"1", "12"}},
			{Name: "second", Op: OpMax, Args: []Literal{"&1", "&2"}, Want: "2", Mutate: &delta, After: []Literal{"1", "12"}},
		},
	}

	result := Run(s)
	assert.True(t, result.Pass, "%+v", result.Cases)
}

func TestRun_TieKeepsLaterArgument(t *testing.T) {
	delta := Delta(1)
	s := &Suite{
		Name:        "ties",
		Description: "equal arguments",
		Cases: []Case{
			{Name: "min", Op: OpMin, Args: []Literal{"&4", "&4"}, Want: "4", Mutate: &delta, After: []Literal{"4", "5"}},
			{Name: "max", Op: OpMax, Args: []Literal{"&4", "&4"}, Want: "4", Mutate: &delta, After: []Literal{"4", "5"}},
		},
	}

	result := Run(s)
	assert.True(t, result.Pass, "%+v", result.Cases)
}
