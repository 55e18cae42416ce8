package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/store"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func newTopCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top <stat>",
		Short: "Rank teams by a statistic, largest first",
		Example: `  fwcreader top shots
  fwcreader top goals -n 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, err := loadData(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				n = cfg.TopN
			}
			r, err := d.SortTop(args[0], n)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Team", r.Stat})
			for i, team := range r.Teams {
				t.AppendRow(table.Row{i + 1, team, teamdata.FormatCompact(r.Values[i])})
			}
			t.AppendFooter(table.Row{"", "Mean", teamdata.FormatStat(r.Mean())})
			t.AppendFooter(table.Row{"", "SD", teamdata.FormatStat(r.StdDev())})
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", teamdata.DefaultTopN, "number of teams (default top_n from config)")
	return cmd
}

func newGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Count teams per goals scored range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			g := d.GoalBuckets()
			shares := g.Shares()
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Bucket", "Goals", "Teams", "Share"})
			for i := range g.Labels {
				t.AppendRow(table.Row{g.Labels[i], g.Criteria[i], g.Counts[i], fmt.Sprintf("%.0f%%", shares[i])})
			}
			t.AppendFooter(table.Row{"", "Total", g.Total(), ""})
			t.Render()
			return nil
		},
	}
}

func newCorrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr <stat> <stat>",
		Short: "Pearson correlation between two statistics over all teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			c, err := d.Correlation(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Correlation Coefficient: %s\n", teamdata.FormatStat(c))
			return nil
		},
	}
}

func newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <name>",
		Short: "Show one team's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			p, err := d.TeamProfile(args[0])
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			t.SetTitle(p.Team)
			t.AppendHeader(table.Row{"Stat", "Value"})
			for i, s := range p.Stats {
				t.AppendRow(table.Row{s, teamdata.FormatCompact(p.Values[i])})
			}
			t.Render()
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Mean, SD, min and max of every statistic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Stat", "Mean", "SD", "Min", "Max"})
			for _, s := range d.Describe() {
				t.AppendRow(table.Row{s.Stat, teamdata.FormatStat(s.Mean), teamdata.FormatStat(s.StdDev),
					teamdata.FormatCompact(s.Min), teamdata.FormatCompact(s.Max)})
			}
			t.Render()
			return nil
		},
	}
}

func newStoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "story",
		Short: "Print the attacking story behind the Story page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			s, err := d.BuildStory("shots", "goals")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Headline)
			fmt.Fprintln(out, strings.Repeat("=", len(s.Headline)))
			for _, line := range []string{s.MeanLine(), s.SDLine(), s.CorrelationLine()} {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
			for _, line := range s.Lines {
				fmt.Fprintln(out, "- "+line)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, s.Conclusion)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <db>",
		Short: "Write the dataset to the team_stats table of a SQLite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadData(cmd)
			if err != nil {
				return err
			}
			n, err := store.Export(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s (table %s)\n", n, args[0], store.Table)
			return nil
		},
	}
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the statistics and where they are used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := map[string]bool{}
			for _, c := range teamdata.ProfileColumns() {
				profile[c] = true
			}
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Stat", "Team profile"})
			for _, c := range teamdata.OptionColumns() {
				mark := ""
				if profile[c] {
					mark = "yes"
				}
				t.AppendRow(table.Row{c, mark})
			}
			t.Render()
			return nil
		},
	}
}
