package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List task logs in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		ids, err := services.Burndown.Tasks()
		if err != nil {
			return MapError(err)
		}
		if len(ids) == 0 {
			fmt.Println("No task logs found.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tasksCmd)
}
