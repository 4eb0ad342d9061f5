package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidationError reports a project path that cannot back a worktree:
// either it does not exist or it is not a git repository. Validation runs
// before any worktree is created, so this failure has no side effects.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project path %s: %s", e.Path, e.Reason)
}

// validateProjects checks that every path exists and is a git repository.
func validateProjects(projects []string) error {
	for _, project := range projects {
		if _, err := os.Stat(project); err != nil {
			return &ValidationError{Path: project, Reason: "path does not exist"}
		}
		if _, err := os.Stat(filepath.Join(project, ".git")); err != nil {
			return &ValidationError{Path: project, Reason: "not a git repository"}
		}
	}
	return nil
}
