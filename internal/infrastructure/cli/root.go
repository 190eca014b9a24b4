package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	projectPath string
	logLevel    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "taskburn",
	Version: Version,
	Short:   "Business-calendar aware burn-down charts for tasks",
	Long: `Taskburn projects burn-down charts from task progress logs.
Elapsed time is measured in working days: weekends, the national holiday
table, the Bahia/Salvador regional holidays and collective vacations are
skipped when the ideal curve and the velocities are computed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "project", "", "Workspace root (defaults to the current directory)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
}
