package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/store"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

const fixture = "../../src/teamdata/testdata/team_data.csv"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--data", fixture))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"top", "goals", "corr", "team", "describe", "story", "export", "columns"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "data", "top", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestTop(t *testing.T) {
	out, err := run(t, "top", "shots", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "France")
	assert.Contains(t, out, "Argentina")
	assert.Contains(t, out, "Croatia")
	assert.NotContains(t, out, "Brazil")
	assert.Less(t, strings.Index(out, "France"), strings.Index(out, "Argentina"))
	assert.Contains(t, out, "95.00") // mean of 104, 98, 83

	// the persistent --top flag feeds the default count
	out, err = run(t, "top", "shots", "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Argentina")
	assert.NotContains(t, out, "Croatia")

	_, err = run(t, "top", "xg")
	assert.ErrorIs(t, err, teamdata.ErrUnknownColumn)
}

func TestGoals(t *testing.T) {
	out, err := run(t, "goals")
	require.NoError(t, err)
	for _, want := range []string{"low", "moderate", "high", "0-4", "5-9", ">=10", "14"} {
		assert.Contains(t, out, want)
	}
}

func TestCorrAndTeam(t *testing.T) {
	out, err := run(t, "corr", "shots", "goals")
	require.NoError(t, err)
	assert.Equal(t, "Correlation Coefficient: 0.87\n", out)

	out, err = run(t, "team", "Morocco")
	require.NoError(t, err)
	assert.Contains(t, out, "Morocco")
	assert.Contains(t, out, "shots_per90")
	assert.Contains(t, out, "8.14")

	_, err = run(t, "team", "Atlantis")
	assert.ErrorIs(t, err, teamdata.ErrUnknownTeam)
}

func TestDescribeAndColumns(t *testing.T) {
	out, err := run(t, "describe")
	require.NoError(t, err)
	for _, c := range teamdata.OptionColumns() {
		assert.Contains(t, out, c)
	}

	out, err = run(t, "columns")
	require.NoError(t, err)
	assert.Contains(t, out, "gk_save_pct")
	assert.Equal(t, len(teamdata.ProfileColumns()), strings.Count(out, "yes"))
}

func TestStory(t *testing.T) {
	out, err := run(t, "story")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "France is the best attacking team\n"))
	assert.Contains(t, out, "Mean of shots attempted: 73.10")
	assert.Contains(t, out, "- More shots lead to more goals")
}

func TestExport(t *testing.T) {
	db := filepath.Join(t.TempDir(), "teams.db")
	out, err := run(t, "export", db)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 14 rows")

	n, err := store.CountRows(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 14, n)
}

func TestMissingDataFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"goals", "--data", filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, cmd.Execute())
}
