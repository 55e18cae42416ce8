package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

func fixture(t *testing.T) *teamdata.TeamData {
	t.Helper()
	d, err := teamdata.Load("../teamdata/testdata/team_data.csv")
	require.NoError(t, err)
	return d
}

func TestExport_RowCountMatches(t *testing.T) {
	ctx := context.Background()
	d := fixture(t)
	db := filepath.Join(t.TempDir(), "teams.db")

	n, err := Export(ctx, db, d)
	require.NoError(t, err)
	assert.Equal(t, d.Rows(), n)

	count, err := CountRows(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, d.Rows(), count)

	// exporting again replaces instead of appending
	_, err = Export(ctx, db, d)
	require.NoError(t, err)
	count, err = CountRows(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, d.Rows(), count)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "teams.db")
	_, err := Export(ctx, db, fixture(t))
	require.NoError(t, err)

	row, err := Lookup(ctx, db, "Morocco")
	require.NoError(t, err)
	assert.Equal(t, 57.0, row["shots"])
	assert.Equal(t, 80.0, row["gk_save_pct"])
	assert.Len(t, row, len(teamdata.OptionColumns()))

	_, err = Lookup(ctx, db, "Atlantis")
	assert.ErrorIs(t, err, teamdata.ErrUnknownTeam)
}

func TestExport_Empty(t *testing.T) {
	_, err := Export(context.Background(), filepath.Join(t.TempDir(), "x.db"), nil)
	assert.ErrorIs(t, err, teamdata.ErrEmpty)
}

func TestCreateTableSQL(t *testing.T) {
	ddl := createTableSQL()
	assert.Contains(t, ddl, "team TEXT PRIMARY KEY")
	assert.Contains(t, ddl, "shots_per90 REAL")
	assert.Contains(t, insertSQL(), "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
}
