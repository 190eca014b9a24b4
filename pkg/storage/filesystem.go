package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/taskburn/pkg/domain"
)

const WorkspaceDir = ".taskburn"
const ConfigFile = "config.yaml"
const TasksDir = "tasks"

// taskExtensions lists the document formats a task log may be stored in, in
// lookup order.
var taskExtensions = []string{".yaml", ".yml", ".json"}

var (
	// ErrNotInitialized indicates the workspace directory does not exist.
	ErrNotInitialized = errors.New("workspace not initialized")

	// ErrTaskNotFound indicates no task log document exists for a task ID.
	ErrTaskNotFound = errors.New("task log not found")
)

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .taskburn directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	return resolveChild(filepath.Join(r.root, WorkspaceDir), filename)
}

// TasksPath returns the directory holding task log documents.
func (r *FilesystemRepository) TasksPath() string {
	return filepath.Join(r.root, WorkspaceDir, TasksDir)
}

func resolveChild(baseDir, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Only direct children of baseDir are allowed.
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	// G301: Use 0700 for directories
	if err := os.MkdirAll(r.TasksPath(), 0700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", WorkspaceDir, err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, WorkspaceDir))
	return err == nil
}

// ListTasks returns the IDs of all task log documents, sorted.
func (r *FilesystemRepository) ListTasks() ([]string, error) {
	if !r.IsInitialized() {
		return nil, ErrNotInitialized
	}

	entries, err := os.ReadDir(r.TasksPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read tasks directory: %w", err)
	}

	seen := map[string]bool{}
	ids := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !isTaskExtension(ext) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ext)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// TaskFile returns the path of the document holding a task's log.
func (r *FilesystemRepository) TaskFile(id string) (string, error) {
	if !r.IsInitialized() {
		return "", ErrNotInitialized
	}
	for _, ext := range taskExtensions {
		path, err := resolveChild(r.TasksPath(), id+ext)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// LoadTaskLog loads and validates the log document of a workspace task.
func (r *FilesystemRepository) LoadTaskLog(ctx context.Context, id string) (*domain.TaskLog, error) {
	path, err := r.TaskFile(id)
	if err != nil {
		return nil, err
	}
	return r.LoadTaskLogFile(ctx, path)
}

// LoadTaskLogFile loads and validates a task log document from any path.
func (r *FilesystemRepository) LoadTaskLogFile(ctx context.Context, path string) (*domain.TaskLog, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isTaskExtension(ext) {
		return nil, fmt.Errorf("unsupported task log format %q", ext)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat task log: %w", err)
	}

	retryer := retry.New[[]byte](r.retryConfig)
	data, err := retryer.Do(ctx, func(ctx context.Context) ([]byte, error) {
		// #nosec G304 -- Path is chosen by the operator
		return os.ReadFile(path)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read task log: %w", err)
	}

	log, err := DecodeTaskLog(data, ext)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			schemaErr.Path = path
		}
		return nil, err
	}
	if log.Task == "" {
		log.Task = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return log, nil
}

func isTaskExtension(ext string) bool {
	for _, e := range taskExtensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
