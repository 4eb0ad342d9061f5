package git

import "fmt"

// CommandError reports a git invocation that exited non-zero. Stderr carries
// git's own diagnostic verbatim; it is never retried or rewritten.
type CommandError struct {
	Op     string // the operation that failed, e.g. "worktree add"
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed: %s", e.Op, e.Stderr)
}

// DetachedHeadError reports that a repository has no branch checked out.
// The caller must supply an explicit base branch; there is no auto-recovery.
type DetachedHeadError struct {
	Repo string
}

func (e *DetachedHeadError) Error() string {
	return fmt.Sprintf("no current branch in %s (detached HEAD?)", e.Repo)
}
