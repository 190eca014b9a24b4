package watch

import (
	"path/filepath"
)

// TaskLogPatterns match every document format a task log can be stored in.
var TaskLogPatterns = []string{"*.yaml", "*.yml", "*.json"}

// editorTempPatterns match swap and backup files written by editors.
var editorTempPatterns = []string{".*.swp", "*~", ".#*", "*.tmp"}

// PatternFilter decides which changed paths are relevant.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a filter that ignores editor temporary files in
// addition to exclude.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: append(append([]string{}, editorTempPatterns...), exclude...),
	}
}

// Matches reports whether path passes the filter. Patterns are matched
// against the base name. An empty include list accepts everything not
// excluded.
func (f *PatternFilter) Matches(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range f.Exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
