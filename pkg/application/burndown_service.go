package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/taskburn/pkg/domain"
	"github.com/felixgeelhaar/taskburn/pkg/domain/burndown"
	"github.com/felixgeelhaar/taskburn/pkg/domain/calendar"
	"github.com/google/uuid"
)

// Report is a computed burn-down for one task.
type Report struct {
	ID          string              `json:"id"`
	TaskID      string              `json:"task"`
	Title       string              `json:"title,omitempty"`
	GeneratedAt time.Time           `json:"generated_at"`
	Entries     int                 `json:"entries"`
	Result      *burndown.Result    `json:"burndown"`
	Assessment  burndown.Assessment `json:"assessment"`
}

// BurndownService loads task progress logs and projects their burn-down.
type BurndownService struct {
	repo      domain.TaskLogRepository
	cal       *calendar.Calendar
	projector *burndown.Projector
	logger    *slog.Logger
	now       func() time.Time
}

// NewBurndownService creates a new burn-down service. A nil calendar uses the
// default calendar and a nil logger uses slog.Default().
func NewBurndownService(repo domain.TaskLogRepository, cal *calendar.Calendar, logger *slog.Logger) *BurndownService {
	if cal == nil {
		cal = calendar.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BurndownService{
		repo:      repo,
		cal:       cal,
		projector: burndown.NewProjector(cal),
		logger:    logger,
		now:       time.Now,
	}
}

// ForTask computes the burn-down of a task stored in the workspace.
func (s *BurndownService) ForTask(ctx context.Context, id string) (*Report, error) {
	taskID, err := domain.NewTaskID(id)
	if err != nil {
		return nil, err
	}
	log, err := s.repo.LoadTaskLog(ctx, taskID.String())
	if err != nil {
		return nil, err
	}
	return s.fromTaskLog(log)
}

// FromFile computes the burn-down of a task log document outside the workspace.
func (s *BurndownService) FromFile(ctx context.Context, path string) (*Report, error) {
	log, err := s.repo.LoadTaskLogFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.fromTaskLog(log)
}

// FromLogs computes a burn-down from already parsed progress logs.
func (s *BurndownService) FromLogs(taskID string, logs []burndown.ProgressLog) (*Report, error) {
	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID, "task", taskID)

	result, err := s.projector.Compute(logs)
	if err != nil {
		logger.Debug("burndown failed", "entries", len(logs), "error", err)
		return nil, fmt.Errorf("burndown for %s: %w", taskID, err)
	}

	report := &Report{
		ID:          runID,
		TaskID:      taskID,
		GeneratedAt: s.now(),
		Entries:     len(logs),
		Result:      result,
		Assessment:  s.projector.Assess(result),
	}
	logger.Debug("burndown computed",
		"entries", len(logs),
		"ideal_points", len(result.Ideal),
		"actual_points", len(result.Actual),
		"ideal_velocity", result.IdealVelocity,
		"actual_velocity", result.ActualVelocity,
		"status", report.Assessment.Status)
	return report, nil
}

func (s *BurndownService) fromTaskLog(log *domain.TaskLog) (*Report, error) {
	logs, err := log.Entries(s.cal.Location())
	if err != nil {
		s.logger.Warn("skipping invalid task log", "task", log.Task, "error", err)
		return nil, fmt.Errorf("task %s: %w", log.Task, err)
	}
	report, err := s.FromLogs(log.Task, logs)
	if err != nil {
		return nil, err
	}
	report.Title = log.Title
	return report, nil
}

// Tasks lists the task IDs stored in the workspace.
func (s *BurndownService) Tasks() ([]string, error) {
	return s.repo.ListTasks()
}
