package wiring

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/config"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
)

// Workspace bundles core infrastructure dependencies.
type Workspace struct {
	Root     string
	Repo     *storage.FilesystemRepository
	Config   *config.Config
	Calendar *calendar.Calendar
}

// NewWorkspace loads the workspace configuration and builds the calendar in
// the configured timezone. An unreadable config falls back to the defaults
// and the load error is returned next to the usable workspace.
func NewWorkspace(root string) (*Workspace, error) {
	repo := storage.NewFilesystemRepository(root)

	var loadErr error
	cfg, err := config.Load(root)
	if err != nil {
		loadErr = fmt.Errorf("config fallback: %w", err)
		cfg = config.Default()
	}

	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}

	return &Workspace{
		Root:     root,
		Repo:     repo,
		Config:   cfg,
		Calendar: calendar.New(calendar.WithLocation(loc)),
	}, loadErr
}
