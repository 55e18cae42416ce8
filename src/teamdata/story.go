package teamdata

import (
	"fmt"
	"math"
)

// StrongCorrelation is the coefficient from which the story calls a relationship strong.
const StrongCorrelation = 0.5

// Story is the data-driven narrative of the Story page: the top scorer, how it
// ranks on attempts, and how attempts relate to goals.
type Story struct {
	Team        string
	Goals       float64
	Bucket      string
	ShotsRank   int
	Shots       Ranking
	Mean        float64
	SD          float64
	Correlation float64
	Headline    string
	Lines       []string
	Conclusion  string
}

// BuildStory assembles the story for an attempts statistic (usually "shots")
// and an outcome statistic (usually "goals").
func (d *TeamData) BuildStory(shotsStat, goalsStat string) (Story, error) {
	goals, err := d.SortTop(goalsStat, 1)
	if err != nil {
		return Story{}, err
	}
	shots, err := d.SortTop(shotsStat, DefaultTopN)
	if err != nil {
		return Story{}, err
	}
	corr, err := d.Correlation(shotsStat, goalsStat)
	if err != nil {
		return Story{}, err
	}
	s := Story{
		Team:        goals.Teams[0],
		Goals:       goals.Values[0],
		Shots:       shots,
		Mean:        shots.Mean(),
		SD:          shots.StdDev(),
		Correlation: corr,
	}
	s.Bucket = BucketFor(s.Goals)
	s.ShotsRank = shots.Rank(s.Team)

	s.Lines = append(s.Lines, fmt.Sprintf("%s is in the %s category of goals scored", s.Team, s.Bucket))
	switch {
	case s.ShotsRank == 1:
		s.Lines = append(s.Lines, fmt.Sprintf("%s has made the most attempts to shoot", s.Team))
	case s.ShotsRank > 1:
		s.Lines = append(s.Lines, fmt.Sprintf("%s ranks #%d in attempts to shoot", s.Team, s.ShotsRank))
	default:
		s.Lines = append(s.Lines, fmt.Sprintf("%s is outside the top %d in attempts to shoot", s.Team, shots.Len()))
	}
	if s.ShotsRank >= 1 && s.ShotsRank <= 3 {
		s.Lines = append(s.Lines, fmt.Sprintf("%s is among the three teams that shot the most", s.Team))
	}
	strong := !math.IsNaN(corr) && corr >= StrongCorrelation
	switch {
	case strong:
		s.Lines = append(s.Lines, "More shots lead to more goals")
	case !math.IsNaN(corr) && corr <= -StrongCorrelation:
		s.Lines = append(s.Lines, "More shots come with fewer goals")
	default:
		s.Lines = append(s.Lines, "Shots and goals are only weakly related")
	}

	if s.Bucket == BucketHigh && s.ShotsRank >= 1 && s.ShotsRank <= 3 && strong {
		s.Headline = fmt.Sprintf("%s is the best attacking team", s.Team)
		s.Conclusion = fmt.Sprintf("Being the team that has one of the most goals scored and "+
			"one of the most attempts to shoot, considering that more shots have a strong "+
			"correlation with more goals, %s is the best attacking team", s.Team)
	} else {
		s.Headline = fmt.Sprintf("%s scored the most goals", s.Team)
		s.Conclusion = fmt.Sprintf("%s leads on goals, but attempts to shoot do not fully explain it", s.Team)
	}
	return s, nil
}

// MeanLine, SDLine and CorrelationLine are the summary labels shown under the story charts.
func (s Story) MeanLine() string {
	return "Mean of " + s.Shots.Stat + " attempted: " + FormatStat(s.Mean)
}

func (s Story) SDLine() string {
	return "SD of " + s.Shots.Stat + " attempted: " + FormatStat(s.SD)
}

func (s Story) CorrelationLine() string {
	return "Correlation Coefficient between Goals and Shots: " + FormatStat(s.Correlation)
}
