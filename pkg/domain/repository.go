package domain

import "context"

// TaskLogRepository handles access to task progress logs in the .taskburn/ directory.
type TaskLogRepository interface {
	Initialize() error
	IsInitialized() bool
	ListTasks() ([]string, error)
	LoadTaskLog(ctx context.Context, id string) (*TaskLog, error)
	LoadTaskLogFile(ctx context.Context, path string) (*TaskLog, error)
}
