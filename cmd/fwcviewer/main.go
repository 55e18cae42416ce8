// Command fwcviewer shows FIFA World Cup 2022 team statistics as charts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/config"
	"github.com/jee-gamer/FIFA-World-Cup-2022-Teams-analyzer/src/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fwcviewer",
		Short: "Chart viewer for FIFA World Cup 2022 team statistics",
		Long: `fwcviewer opens a window with four pages, chosen from the Units menu:
Stats (top-N ranking and histogram), Team (one team's profile),
Relationship (scatter of two statistics) and Story.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			runViewer(cfg, cmd.Flags().Changed("page"), cmd.Flags().Changed("data"))
			return nil
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().Int("width", config.DefaultWidth, "window width; also the chart width for screenshots")
	cmd.PersistentFlags().Int("height", config.DefaultHeight, "window height")
	cmd.PersistentFlags().Bool("hints", false, "draw hint captions on charts")

	f := cmd.Flags()
	f.String("page", config.DefaultStartPage, "start page: Stats, Team, Relationship or Story")
	f.String("theme", config.DefaultTheme, "dark or light")
	f.Bool("hover", true, "show the bar readout on hover")
	f.Bool("watch", true, "reload when the CSV changes on disk")

	cmd.AddCommand(newScreenshotsCmd())
	return cmd
}

func newScreenshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screenshots",
		Short: "Render every page's charts to PNG files without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			files, err := RunScreenshotsMode(cfg)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().String("out", "docs/images", "output directory")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logging.SetLevel(cfg.LogLevel)
	if cfg.File != "" {
		logging.Infof("using config %s", cfg.File)
	}
	return cfg, nil
}
