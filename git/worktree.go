package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arborhq/arbor/logger"
)

// Worktree is one entry from git's live worktree list.
type Worktree struct {
	Path   string
	Branch string
}

// IsGitRepo reports whether dir looks like the root of a git checkout.
func IsGitRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// BranchExists reports whether a local branch ref exists in the repo.
// A non-zero exit from the query means "no", never an error.
func (s *GitService) BranchExists(ctx context.Context, repoPath, branch string) bool {
	_, _, err := s.executor.Run(ctx, repoPath, "git", "show-ref", "--verify", "--quiet",
		fmt.Sprintf("refs/heads/%s", branch))
	return err == nil
}

// CurrentBranch returns the name of the currently checked out branch.
// Returns DetachedHeadError if HEAD is not on a branch.
func (s *GitService) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	stdout, stderr, err := s.executor.Run(ctx, repoPath, "git", "branch", "--show-current")
	if err != nil {
		return "", &CommandError{Op: "branch --show-current", Stderr: strings.TrimSpace(string(stderr))}
	}

	branch := strings.TrimSpace(string(stdout))
	if branch == "" {
		return "", &DetachedHeadError{Repo: repoPath}
	}
	return branch, nil
}

// AddWorktree creates a worktree at path checked out to branch. If the branch
// does not exist it is created from base together with the worktree; if it
// does, it is attached as-is and base is ignored. The existing branch tip
// versus branch-from-base choice governs the worktree's starting content.
func (s *GitService) AddWorktree(ctx context.Context, repoPath, path, branch, base string) error {
	log := logger.WithComponent("git")

	var args []string
	if s.BranchExists(ctx, repoPath, branch) {
		args = []string{"worktree", "add", path, branch}
	} else {
		args = []string{"worktree", "add", "-b", branch, path, base}
	}

	log.Info("adding worktree", "repoPath", repoPath, "path", path, "branch", branch, "args", strings.Join(args, " "))
	_, stderr, err := s.executor.Run(ctx, repoPath, "git", args...)
	if err != nil {
		return &CommandError{Op: "worktree add", Stderr: strings.TrimSpace(string(stderr))}
	}
	return nil
}

// RemoveWorktree removes the worktree at path. force bypasses git's dirty
// working tree check. On success the local branch ref is deleted best-effort;
// a branch deletion failure never fails the removal.
func (s *GitService) RemoveWorktree(ctx context.Context, repoPath, path, branch string, force bool) error {
	log := logger.WithComponent("git")

	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)

	_, stderr, err := s.executor.Run(ctx, repoPath, "git", args...)
	if err != nil {
		return &CommandError{Op: "worktree remove", Stderr: strings.TrimSpace(string(stderr))}
	}
	log.Info("worktree removed", "path", path, "branch", branch)

	if branch != "" {
		if _, bErr := s.executor.CombinedOutput(ctx, repoPath, "git", "branch", "-D", branch); bErr != nil {
			log.Warn("failed to delete branch (best-effort)", "branch", branch, "error", bErr)
		}
	}
	return nil
}

// ListActiveWorktrees returns the worktrees git currently knows about,
// parsed from `git worktree list --porcelain`. Entries with no local branch
// (detached HEAD, bare checkout) are dropped. Any command failure yields an
// empty list rather than an error; this query is advisory.
func (s *GitService) ListActiveWorktrees(ctx context.Context, repoPath string) []Worktree {
	stdout, _, err := s.executor.Run(ctx, repoPath, "git", "worktree", "list", "--porcelain")
	if err != nil {
		return nil
	}

	var worktrees []Worktree
	for _, block := range strings.Split(string(stdout), "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var path, branch string
		for _, line := range strings.Split(block, "\n") {
			if after, ok := strings.CutPrefix(line, "worktree "); ok {
				path = after
			} else if after, ok := strings.CutPrefix(line, "branch "); ok {
				if name, ok := strings.CutPrefix(after, "refs/heads/"); ok {
					branch = name
				}
			}
		}

		if path != "" && branch != "" {
			worktrees = append(worktrees, Worktree{Path: path, Branch: branch})
		}
	}
	return worktrees
}
