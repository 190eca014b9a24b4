package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/watch"
	"github.com/felixgeelhaar/taskburn/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
	"github.com/spf13/cobra"
)

var watchFile string

var watchCmd = &cobra.Command{
	Use:   "watch [task]",
	Short: "Recompute burn-downs whenever task logs change",
	Long: `Watch prints a burn-down and recomputes it every time the task log
changes on disk. Without a task or --file, every task log in the workspace
is watched and the changed one is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		target := watchFile
		if target == "" && len(args) > 0 {
			target, err = services.Workspace.Repo.TaskFile(args[0])
			if err != nil {
				return MapError(err)
			}
		}
		if target == "" && !services.Workspace.Repo.IsInitialized() {
			return MapError(storage.ErrNotInitialized)
		}

		err = watchTaskLogs(ctx, os.Stdout, services, target)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// watchTaskLogs reports target, or every workspace task log when target is
// empty, until ctx is cancelled.
func watchTaskLogs(ctx context.Context, w io.Writer, services *wiring.AppServices, target string) error {
	debounce, err := services.Workspace.Config.DebounceDuration()
	if err != nil {
		debounce = 0
	}

	report := func(path string) {
		r, err := services.Burndown.FromFile(ctx, path)
		if err != nil {
			mapped := MapError(err)
			fmt.Fprintf(w, "%s: %v\n", filepath.Base(path), mapped)
			if cliErr, ok := mapped.(*CLIError); ok && cliErr.Hint != "" {
				fmt.Fprintf(w, "  hint: %s\n", cliErr.Hint)
			}
			return
		}
		if err := printReport(w, services, r); err != nil {
			services.Logger.Warn("failed to print report", "error", err)
		}
	}

	watcher, err := watch.NewFSWatcher(debounce, func(ev watch.ChangeEvent) {
		fmt.Fprintf(w, "\nChange detected (%s) in %s at %s\n", ev.ChangeType, filepath.Base(ev.Path), time.Now().Format("15:04:05"))
		if ev.ChangeType == "remove" || ev.ChangeType == "rename" {
			if _, err := os.Stat(ev.Path); err != nil {
				fmt.Fprintln(w, "Task log no longer exists.")
				return
			}
		}
		report(ev.Path)
	}, services.Logger)
	if err != nil {
		return err
	}

	if target != "" {
		if err := watcher.WatchFile(target); err != nil {
			return err
		}
		report(target)
		fmt.Fprintf(w, "\nWatching %s for changes...\n", target)
	} else {
		dir := services.Workspace.Repo.TasksPath()
		if err := watcher.WatchDir(dir); err != nil {
			return err
		}
		fmt.Fprintf(w, "Watching %s for changes...\n", dir)
	}

	return watcher.Run(ctx)
}

func init() {
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "Task log document to watch")
	RootCmd.AddCommand(watchCmd)
}
