package teamdata

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Ranking is a (team, value) table sorted descending by value.
type Ranking struct {
	Stat   string
	Teams  []string
	Values []float64
}

// Len is the number of ranked rows.
func (r Ranking) Len() int { return len(r.Values) }

// Mean of the ranked values.
func (r Ranking) Mean() float64 { return series.Floats(r.Values).Mean() }

// StdDev is the sample standard deviation (n-1) of the ranked values; NaN for a single row.
func (r Ranking) StdDev() float64 { return series.Floats(r.Values).StdDev() }

// Rank returns the 1-based position of team, or 0 when it is not ranked.
func (r Ranking) Rank(team string) int {
	for i, t := range r.Teams {
		if t == team {
			return i + 1
		}
	}
	return 0
}

// SortTop returns the n teams with the largest value of stat, largest first.
// n <= 0 selects DefaultTopN; fewer rows are returned when the dataset is smaller.
func (d *TeamData) SortTop(stat string, n int) (Ranking, error) {
	if !IsOption(stat) {
		return Ranking{}, fmt.Errorf("%w: %q", ErrUnknownColumn, stat)
	}
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := d.df.Select([]string{TeamColumn, stat}).Arrange(dataframe.RevSort(stat))
	if sorted.Err != nil {
		return Ranking{}, fmt.Errorf("sort by %s: %w", stat, sorted.Err)
	}
	if sorted.Nrow() > n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sorted = sorted.Subset(idx)
	}
	return Ranking{
		Stat:   stat,
		Teams:  sorted.Col(TeamColumn).Records(),
		Values: sorted.Col(stat).Float(),
	}, nil
}

// Goal bucket labels, in chart order.
const (
	BucketLow      = "low"
	BucketModerate = "moderate"
	BucketHigh     = "high"
)

// GoalBuckets tallies teams by goals scored.
type GoalBuckets struct {
	Labels   [3]string
	Criteria [3]string
	Counts   [3]int
}

// Total is the number of teams tallied; it always equals the row count.
func (g GoalBuckets) Total() int { return g.Counts[0] + g.Counts[1] + g.Counts[2] }

// Shares returns each bucket's percentage of the total.
func (g GoalBuckets) Shares() [3]float64 {
	var out [3]float64
	total := g.Total()
	if total == 0 {
		return out
	}
	for i, c := range g.Counts {
		out[i] = float64(c) / float64(total) * 100
	}
	return out
}

// BucketIndex places a goal count: 0 for < 5, 1 for 5-9, 2 for >= 10.
func BucketIndex(goals float64) int {
	switch {
	case goals < 5:
		return 0
	case goals < 10:
		return 1
	default:
		return 2
	}
}

// BucketFor names the bucket of a goal count.
func BucketFor(goals float64) string {
	return [3]string{BucketLow, BucketModerate, BucketHigh}[BucketIndex(goals)]
}

// GoalBuckets counts every team in exactly one of low, moderate and high.
func (d *TeamData) GoalBuckets() GoalBuckets {
	g := GoalBuckets{
		Labels:   [3]string{BucketLow, BucketModerate, BucketHigh},
		Criteria: [3]string{"0-4", "5-9", ">=10"},
	}
	for _, v := range d.df.Col("goals").Float() {
		g.Counts[BucketIndex(v)]++
	}
	return g
}

// Correlation is the Pearson coefficient between two statistics over all teams.
// It is NaN when either column is constant.
func (d *TeamData) Correlation(a, b string) (float64, error) {
	xs, err := d.Column(a)
	if err != nil {
		return 0, err
	}
	ys, err := d.Column(b)
	if err != nil {
		return 0, err
	}
	return stat.Correlation(xs, ys, nil), nil
}

// Profile is one team's values for ProfileColumns.
type Profile struct {
	Team   string
	Stats  []string
	Values []float64
}

// TeamProfile looks up a team by exact name.
func (d *TeamData) TeamProfile(team string) (Profile, error) {
	row := d.df.Filter(dataframe.F{Colname: TeamColumn, Comparator: series.Eq, Comparando: team})
	if row.Err != nil {
		return Profile{}, fmt.Errorf("filter %q: %w", team, row.Err)
	}
	if row.Nrow() == 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	cols := ProfileColumns()
	p := Profile{Team: team, Stats: cols, Values: make([]float64, len(cols))}
	for i, c := range cols {
		p.Values[i] = row.Col(c).Float()[0]
	}
	return p, nil
}

// Summary holds descriptive statistics for one column.
type Summary struct {
	Stat   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe summarises every option column over all teams.
func (d *TeamData) Describe() []Summary {
	out := make([]Summary, 0, len(usedColumns)-1)
	for _, c := range usedColumns[1:] {
		s := d.df.Col(c)
		out = append(out, Summary{Stat: c, Mean: s.Mean(), StdDev: s.StdDev(), Min: s.Min(), Max: s.Max()})
	}
	return out
}
