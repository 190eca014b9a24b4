package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/config"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
	"github.com/spf13/cobra"
)

var initTimezone string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a taskburn workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getProjectRoot()
		if err != nil {
			return err
		}
		repo := storage.NewFilesystemRepository(root)
		if err := repo.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		path, err := repo.ResolvePath(storage.ConfigFile)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Workspace already initialized at %s\n", repo.TasksPath())
			return nil
		}

		cfg := config.Default()
		if initTimezone != "" {
			cfg.Timezone = initTimezone
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(root, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("Initialized taskburn workspace in %s\n", root)
		fmt.Printf("Add task logs to %s\n", repo.TasksPath())
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initTimezone, "timezone", "", "IANA timezone for dates without an offset")
	RootCmd.AddCommand(initCmd)
}
