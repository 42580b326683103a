package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autosigns/pkg/config"
	"autosigns/pkg/logger"
	"autosigns/pkg/tui"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "autosigns",
	Short: "Classroom signs and daily schedules from the Section Schedule export",
	Long: `autosigns turns the Daily Summary export of the section scheduling system
into printable classroom signs, a daily schedule workbook, lobby slides and
a calendar feed for the GBC and SFC locations.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if cfg, err := config.Effective(); err == nil {
				level = cfg.LogLevel
			}
		}
		logger.Init(level, logFormat)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(tui.Error(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
}
