// Package worktree orchestrates the worktree lifecycle: creation, listing,
// and removal, keeping git's live worktree list and the registry consistent.
//
// Git and the registry are reconciled at read time: a listing inside a
// repository returns only worktrees that both git reports live and the
// registry has a record for. A record whose worktree was removed behind our
// back is never reported; a live worktree the registry never saw is never
// synthesized.
package worktree

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arborhq/arbor/git"
	"github.com/arborhq/arbor/logger"
	"github.com/arborhq/arbor/registry"
)

// AgentNone tags records whose worktree was created without an agent.
const AgentNone = "none"

// Manager drives the worktree lifecycle for one project root.
type Manager struct {
	projectRoot string
	basePath    string
	git         *git.GitService
	store       *registry.Store
}

// NewManager creates a Manager for projectRoot. basePath is the directory
// under which worktrees are created.
func NewManager(projectRoot, basePath string, g *git.GitService, store *registry.Store) *Manager {
	return &Manager{
		projectRoot: projectRoot,
		basePath:    basePath,
		git:         g,
		store:       store,
	}
}

// ProjectRoot returns the repository this manager operates on.
func (m *Manager) ProjectRoot() string {
	return m.projectRoot
}

// IsGitRepo reports whether the project root is a git checkout.
func (m *Manager) IsGitRepo() bool {
	return git.IsGitRepo(m.projectRoot)
}

// ProjectName derives the display name from the project root's final path
// segment.
func (m *Manager) ProjectName() string {
	name := filepath.Base(m.projectRoot)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "project"
	}
	return name
}

// WorktreePath returns where the worktree for branch would live.
func (m *Manager) WorktreePath(branch string) string {
	return filepath.Join(m.basePath, fmt.Sprintf("%s-%s", m.ProjectName(), SanitizeName(branch)))
}

// Create makes a worktree for branch, registers it, and copies the
// project's .env* files into it. If baseBranch is empty the repository's
// current branch is the base; a detached HEAD then fails the creation.
// Workspace worktrees use the same path scheme with the workspace name as
// the branch, so one project can participate in several workspaces.
func (m *Manager) Create(ctx context.Context, branch, agent, baseBranch string) (*registry.Record, error) {
	return m.createAt(ctx, m.WorktreePath(branch), branch, agent, baseBranch)
}

func (m *Manager) createAt(ctx context.Context, worktreePath, branch, agent, baseBranch string) (*registry.Record, error) {
	log := logger.WithComponent("worktree")

	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create worktree base directory: %w", err)
	}

	base := baseBranch
	if base == "" {
		current, err := m.git.CurrentBranch(ctx, m.projectRoot)
		if err != nil {
			return nil, err
		}
		base = current
	}

	if err := m.git.AddWorktree(ctx, m.projectRoot, worktreePath, branch, base); err != nil {
		return nil, err
	}

	record := registry.Record{
		ID:          uuid.New().String(),
		Branch:      branch,
		Path:        worktreePath,
		ProjectRoot: m.projectRoot,
		ProjectName: m.ProjectName(),
		Agent:       agent,
		CreatedAt:   time.Now().UTC(),
		Status:      registry.StatusActive,
	}

	// No rollback of the worktree if registration or the env copy fails;
	// the worktree stays on disk for manual recovery.
	if err := m.store.Add(record); err != nil {
		return nil, err
	}

	if err := m.copyEnvFiles(worktreePath); err != nil {
		return nil, fmt.Errorf("failed to copy env files: %w", err)
	}

	log.Info("worktree created",
		"id", record.ID, "branch", branch, "path", worktreePath, "agent", agent)
	return &record, nil
}

// copyEnvFiles copies every file in the project root whose name starts with
// ".env" into the worktree, so local configuration follows the checkout.
func (m *Manager) copyEnvFiles(worktreePath string) error {
	entries, err := os.ReadDir(m.projectRoot)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, ".env") {
			continue
		}
		if err := copyFile(filepath.Join(m.projectRoot, name), filepath.Join(worktreePath, name)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// List returns this project's worktrees when inside a repository: the
// records whose path git also reports live. Outside a repository it returns
// the entire registry sorted newest-first, the cross-project view.
func (m *Manager) List(ctx context.Context) ([]registry.Record, error) {
	records, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	if !m.IsGitRepo() {
		sort.Slice(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
		return records, nil
	}

	live := make(map[string]bool)
	for _, wt := range m.git.ListActiveWorktrees(ctx, m.projectRoot) {
		live[wt.Path] = true
	}

	var matched []registry.Record
	for _, r := range records {
		if live[r.Path] && r.ProjectRoot == m.projectRoot {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Remove tears down the worktree for branch. The registry record is removed
// only after git removes the worktree; a git failure leaves the registry
// untouched.
func (m *Manager) Remove(ctx context.Context, branch string, force bool) error {
	records, err := m.List(ctx)
	if err != nil {
		return err
	}

	var target *registry.Record
	for i := range records {
		if records[i].Branch == branch {
			target = &records[i]
			break
		}
	}
	if target == nil {
		known := make([]string, 0, len(records))
		for _, r := range records {
			known = append(known, r.Branch)
		}
		return &NotFoundError{Branch: branch, Known: known}
	}

	return m.RemoveAtPath(ctx, target.Path, target.Branch, force)
}

// RemoveAtPath tears down the worktree at a known path, skipping the
// branch-name lookup. Used by callers already holding the path.
func (m *Manager) RemoveAtPath(ctx context.Context, path, branch string, force bool) error {
	if err := m.git.RemoveWorktree(ctx, m.projectRoot, path, branch, force); err != nil {
		return err
	}
	return m.store.RemoveByPath(path)
}
