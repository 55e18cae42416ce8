// Package store exports a loaded dataset into a SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

// Table is the table Export writes to.
const Table = "team_stats"

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	return db, nil
}

// createTableSQL builds the DDL from the used columns; team is the key, the rest are REAL.
func createTableSQL() string {
	cols := teamdata.UsedColumns()
	defs := make([]string, len(cols))
	for i, c := range cols {
		if c == teamdata.TeamColumn {
			defs[i] = c + " TEXT PRIMARY KEY"
			continue
		}
		defs[i] = c + " REAL"
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", Table, strings.Join(defs, ", "))
}

func insertSQL() string {
	cols := teamdata.UsedColumns()
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", Table, strings.Join(cols, ", "), marks)
}

// Export replaces the contents of team_stats in path with one row per team.
// It returns the number of rows written.
func Export(ctx context.Context, path string, data *teamdata.TeamData) (int, error) {
	defer logging.TimeTrack(time.Now(), "store.Export")
	if data == nil || data.Rows() == 0 {
		return 0, teamdata.ErrEmpty
	}
	db, err := open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	cols := teamdata.UsedColumns()
	values := make([][]float64, len(cols))
	for i, c := range cols {
		if c == teamdata.TeamColumn {
			continue
		}
		if values[i], err = data.Column(c); err != nil {
			return 0, err
		}
	}
	teams := data.Teams()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createTableSQL()); err != nil {
		return 0, fmt.Errorf("create %s: %w", Table, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+Table); err != nil {
		return 0, fmt.Errorf("clear %s: %w", Table, err)
	}
	stmt, err := tx.PrepareContext(ctx, insertSQL())
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	for r, team := range teams {
		for i, c := range cols {
			if c == teamdata.TeamColumn {
				args[i] = team
				continue
			}
			args[i] = values[i][r]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("insert %q: %w", team, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	logging.Infof("store: wrote %d rows to %s", len(teams), path)
	return len(teams), nil
}

// CountRows returns the number of rows in team_stats.
func CountRows(ctx context.Context, path string) (int, error) {
	db, err := open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+Table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", Table, err)
	}
	return n, nil
}

// Lookup reads one exported row back as column -> value, team excluded.
func Lookup(ctx context.Context, path, team string) (map[string]float64, error) {
	db, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	stats := teamdata.OptionColumns()
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(stats, ", "), Table, teamdata.TeamColumn)
	dest := make([]float64, len(stats))
	ptrs := make([]interface{}, len(stats))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := db.QueryRowContext(ctx, q, team).Scan(ptrs...); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %q", teamdata.ErrUnknownTeam, team)
		}
		return nil, fmt.Errorf("lookup %q: %w", team, err)
	}
	out := make(map[string]float64, len(stats))
	for i, s := range stats {
		out[s] = dest[i]
	}
	return out, nil
}
