package application_test

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/taskburn/pkg/domain"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
)

type MockRepo struct {
	Tasks       map[string]*domain.TaskLog
	Files       map[string]*domain.TaskLog
	Initialized bool
	LoadError   error
}

func (m *MockRepo) Initialize() error   { m.Initialized = true; return nil }
func (m *MockRepo) IsInitialized() bool { return m.Initialized }

func (m *MockRepo) ListTasks() ([]string, error) {
	ids := make([]string, 0, len(m.Tasks))
	for id := range m.Tasks {
		ids = append(ids, id)
	}
	return ids, m.LoadError
}

func (m *MockRepo) LoadTaskLog(ctx context.Context, id string) (*domain.TaskLog, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	log, ok := m.Tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTaskNotFound, id)
	}
	return log, nil
}

func (m *MockRepo) LoadTaskLogFile(ctx context.Context, path string) (*domain.TaskLog, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	log, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTaskNotFound, path)
	}
	return log, nil
}
