// Package teamdata loads the World Cup team statistics CSV into a dataframe and
// answers the queries behind every chart: top-N rankings, goal buckets, team
// profiles and correlations.
//
// A TeamData value is read-only after Load. Every query works on a copy of the
// frame, so callers may keep results across reloads.
package teamdata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
)

// DefaultPath is where the viewer looks for the dataset when no path is configured.
const DefaultPath = "Data/team_data.csv"

// TeamColumn holds the team name; it is the implicit row key.
const TeamColumn = "team"

// DefaultTopN is the ranking length used when callers pass n <= 0.
const DefaultTopN = 10

var (
	ErrEmpty          = errors.New("dataset has no rows")
	ErrMissingColumns = errors.New("missing columns")
	ErrNotNumeric     = errors.New("non-numeric value")
	ErrUnknownColumn  = errors.New("unknown statistic")
	ErrUnknownTeam    = errors.New("unknown team")
	ErrDuplicateTeam  = errors.New("duplicate team")
)

// usedColumns is the fixed schema kept from the source file, in display order.
var usedColumns = []string{
	TeamColumn,
	"possession",
	"minutes_90s",
	"goals",
	"assists",
	"goals_per90",
	"assists_per90",
	"cards_yellow",
	"cards_red",
	"gk_saves",
	"gk_save_pct",
	"shots",
	"shots_per90",
}

// excluded from the per-team profile chart because their scale dwarfs the other bars
var profileExcluded = map[string]bool{"shots": true, "gk_save_pct": true, "possession": true}

// UsedColumns returns the columns kept from the CSV, team first.
func UsedColumns() []string { return append([]string(nil), usedColumns...) }

// OptionColumns returns the numeric statistics offered in selectors.
func OptionColumns() []string { return append([]string(nil), usedColumns[1:]...) }

// ProfileColumns returns the statistics drawn on a team's profile chart.
func ProfileColumns() []string {
	out := make([]string, 0, len(usedColumns))
	for _, c := range usedColumns[1:] {
		if !profileExcluded[c] {
			out = append(out, c)
		}
	}
	return out
}

// IsOption reports whether stat is one of the numeric option columns.
func IsOption(stat string) bool {
	for _, c := range usedColumns[1:] {
		if c == stat {
			return true
		}
	}
	return false
}

// TeamData wraps the loaded frame.
type TeamData struct {
	df     dataframe.DataFrame
	source string
}

// Load reads the CSV at path.
func Load(path string) (*TeamData, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	d, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.source = path
	logging.Infof("loaded %d teams from %s", d.Rows(), path)
	return d, nil
}

// LoadReader reads CSV data with a header row from r.
func LoadReader(r io.Reader) (*TeamData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if dataLines(raw) < 2 {
		return nil, ErrEmpty
	}
	types := make(map[string]series.Type, len(usedColumns))
	types[TeamColumn] = series.String
	for _, c := range usedColumns[1:] {
		types[c] = series.Float
	}
	df := dataframe.ReadCSV(bytes.NewReader(raw), dataframe.HasHeader(true), dataframe.WithTypes(types))
	if df.Err != nil {
		return nil, fmt.Errorf("parse dataset: %w", df.Err)
	}
	if missing := missingColumns(df.Names()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	df = df.Select(usedColumns)
	if df.Err != nil {
		return nil, fmt.Errorf("select columns: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, ErrEmpty
	}
	// gota turns unparsable floats into NaN and accepts "Inf"; reject both so
	// every query can assume finite numeric columns.
	for _, c := range usedColumns[1:] {
		for i, v := range df.Col(c).Float() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: column %q row %d", ErrNotNumeric, c, i+1)
			}
		}
	}
	seen := make(map[string]int, df.Nrow())
	for i, team := range df.Col(TeamColumn).Records() {
		if first, ok := seen[team]; ok {
			return nil, fmt.Errorf("%w: %q in rows %d and %d", ErrDuplicateTeam, team, first, i+1)
		}
		seen[team] = i + 1
	}
	return &TeamData{df: df}, nil
}

func dataLines(raw []byte) int {
	n := 0
	for _, line := range bytes.Split(raw, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

func missingColumns(names []string) []string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	var missing []string
	for _, c := range usedColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Source is the path the data was loaded from, empty for LoadReader.
func (d *TeamData) Source() string { return d.source }

// Rows is the number of teams.
func (d *TeamData) Rows() int { return d.df.Nrow() }

// Frame returns a copy of the underlying frame.
func (d *TeamData) Frame() dataframe.DataFrame { return d.df.Copy() }

// Teams returns team names in file order.
func (d *TeamData) Teams() []string { return d.df.Col(TeamColumn).Records() }

// Column returns a copy of one numeric column.
func (d *TeamData) Column(stat string) ([]float64, error) {
	if !IsOption(stat) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, stat)
	}
	return d.df.Col(stat).Float(), nil
}
