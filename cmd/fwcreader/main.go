// Command fwcreader prints FIFA World Cup 2022 team statistics as tables.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/config"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/teamdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fwcreader",
		Short:        "Query FIFA World Cup 2022 team statistics from the command line",
		SilenceUsage: true,
	}
	config.RegisterFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newTopCmd(),
		newGoalsCmd(),
		newCorrCmd(),
		newTeamCmd(),
		newDescribeCmd(),
		newStoryCmd(),
		newExportCmd(),
		newColumnsCmd(),
	)
	return cmd
}

// loadData resolves the configuration for cmd and loads the CSV it points to.
func loadData(cmd *cobra.Command) (*teamdata.TeamData, *config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	logging.SetLevel(cfg.LogLevel)
	d, err := teamdata.Load(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}
