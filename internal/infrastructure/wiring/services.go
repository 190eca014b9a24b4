package wiring

import (
	"io"
	"log/slog"
	"os"

	"github.com/felixgeelhaar/taskburn/pkg/application"
)

// AppServices exposes the application layer services wired together with a workspace.
type AppServices struct {
	Workspace *Workspace
	Logger    *slog.Logger
	Burndown  *application.BurndownService
	Calendar  *application.CalendarService
}

// BuildAppServices constructs the services for a repo root, logging to
// stderr at the configured level.
func BuildAppServices(root string) (*AppServices, error) {
	workspace, loadErr := NewWorkspace(root)
	logger := NewLogger(os.Stderr, workspace.Config.SlogLevel())
	return buildServices(workspace, logger), loadErr
}

// BuildAppServicesWithLogger allows callers to supply their own logger.
func BuildAppServicesWithLogger(root string, logger *slog.Logger) (*AppServices, error) {
	workspace, loadErr := NewWorkspace(root)
	if logger == nil {
		logger = NewLogger(os.Stderr, workspace.Config.SlogLevel())
	}
	return buildServices(workspace, logger), loadErr
}

func buildServices(workspace *Workspace, logger *slog.Logger) *AppServices {
	return &AppServices{
		Workspace: workspace,
		Logger:    logger,
		Burndown:  application.NewBurndownService(workspace.Repo, workspace.Calendar, logger),
		Calendar:  application.NewCalendarService(workspace.Calendar, logger),
	}
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
