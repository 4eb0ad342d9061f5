package worktree

import (
	"fmt"
	"strings"
)

// NotFoundError reports that no worktree matched the requested branch.
// Known carries the branches that do have worktrees, for display.
type NotFoundError struct {
	Branch string
	Known  []string
}

func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("worktree for branch %q not found", e.Branch)
	}
	return fmt.Sprintf("worktree for branch %q not found (known: %s)",
		e.Branch, strings.Join(e.Known, ", "))
}
