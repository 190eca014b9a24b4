package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/taskburn/pkg/application"
	"github.com/spf13/cobra"
)

var (
	burndownFile string
	burndownJSON bool
)

var burndownCmd = &cobra.Command{
	Use:   "burndown [task]",
	Short: "Compute the burn-down of a task",
	Long: `Burndown projects the ideal and actual remaining-work curves of a task.

The task is read from .taskburn/tasks/<task>.yaml|.yml|.json, or from any
document given with --file.

Flags:
  --file   Read the task log from this path instead of the workspace
  --json   Output in JSON format`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBurndown,
}

func runBurndown(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && burndownFile == "" {
		return fmt.Errorf("specify a task ID or --file")
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	report, err := computeReport(cmd, services, args)
	if err != nil {
		return MapError(err)
	}
	return printReport(os.Stdout, services, report)
}

func computeReport(cmd *cobra.Command, services *wiring.AppServices, args []string) (*application.Report, error) {
	if burndownFile != "" {
		return services.Burndown.FromFile(cmd.Context(), burndownFile)
	}
	return services.Burndown.ForTask(cmd.Context(), args[0])
}

func printReport(w io.Writer, services *wiring.AppServices, report *application.Report) error {
	if burndownJSON || services.Workspace.Config.Output == "json" {
		return writeJSON(w, report)
	}
	renderReport(w, report)
	return nil
}

func init() {
	burndownCmd.Flags().StringVarP(&burndownFile, "file", "f", "", "Task log document to read")
	burndownCmd.Flags().BoolVar(&burndownJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(burndownCmd)
}
