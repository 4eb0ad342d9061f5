// Package workspace groups worktrees across repositories. A workspace is a
// named set of projects that each receive a worktree on the same branch, so
// one change can span several repos. Partial failure is tolerated: the
// workspace keeps whichever projects succeeded, and creation fails only when
// every project fails.
package workspace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arborhq/arbor/git"
	"github.com/arborhq/arbor/logger"
	"github.com/arborhq/arbor/registry"
	"github.com/arborhq/arbor/worktree"
)

// Info is one workspace document, stored as a JSON file keyed by SafeName.
// Projects holds only the roots that successfully received a worktree.
type Info struct {
	Name      string    `json:"name"`
	SafeName  string    `json:"safe_name"`
	Projects  []string  `json:"projects"`
	Alias     string    `json:"alias,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const projectsTemplate = `# Arbor Workspace
# Add the full paths to the git repositories for this workspace.

projects:
#  - /path/to/your/first/project
#  - /path/to/your/second/project
`

// Manager coordinates worktree creation and removal across the projects of
// a workspace.
type Manager struct {
	dir          string // workspace documents
	worktreeBase string
	git          *git.GitService
	store        *registry.Store
	aliases      *AliasManager
	editor       *Editor
	errW         io.Writer
}

// NewManager creates a workspace Manager. Per-project warnings are written
// to errW.
func NewManager(dir, worktreeBase string, g *git.GitService, store *registry.Store, aliases *AliasManager, editor *Editor, errW io.Writer) *Manager {
	return &Manager{
		dir:          dir,
		worktreeBase: worktreeBase,
		git:          g,
		store:        store,
		aliases:      aliases,
		editor:       editor,
		errW:         errW,
	}
}

func (m *Manager) workspacePath(safeName string) string {
	return filepath.Join(m.dir, safeName+".json")
}

// Create builds a workspace named name: one worktree per project, all on a
// branch named after the workspace. Projects come from the alias when
// aliasName is set, otherwise from an editor round-trip. A project whose
// worktree fails is skipped with a warning; creation fails only if every
// project failed.
func (m *Manager) Create(ctx context.Context, name, aliasName string) (*Info, error) {
	log := logger.WithComponent("workspace")

	safeName := worktree.SanitizeName(name)
	path := m.workspacePath(safeName)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("workspace %q already exists", name)
	}

	var projects []string
	if aliasName != "" {
		config, err := m.aliases.Load(aliasName)
		if err != nil {
			return nil, err
		}
		projects = config.Projects
	} else {
		var err error
		projects, err = m.projectsFromEditor(ctx, safeName)
		if err != nil {
			return nil, err
		}
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects specified for workspace %q", name)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return nil, err
	}

	var created []string
	for _, project := range projects {
		wt := worktree.NewManager(project, m.worktreeBase, m.git, m.store)
		record, err := wt.Create(ctx, name, worktree.AgentNone, "")
		if err != nil {
			log.Warn("failed to create worktree for project", "project", project, "error", err)
			fmt.Fprintf(m.errW, "Warning: failed to create worktree for %s: %v\n", project, err)
			continue
		}
		fmt.Fprintf(m.errW, "Created worktree for %s at %s\n", project, record.Path)
		created = append(created, project)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create any worktrees for workspace %q", name)
	}

	info := &Info{
		Name:      name,
		SafeName:  safeName,
		Projects:  created,
		Alias:     aliasName,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}

	log.Info("workspace created", "name", name, "projects", len(created))
	return info, nil
}

// Remove tears down a workspace: one removal attempt per project, failures
// collected as warnings, and the workspace document deleted unconditionally
// once every attempt has been issued. A stray worktree left behind by a
// failed removal beats an orphaned workspace record that can never be
// deleted.
func (m *Manager) Remove(ctx context.Context, name string, force bool) error {
	log := logger.WithComponent("workspace")

	safeName := worktree.SanitizeName(name)
	path := m.workspacePath(safeName)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("workspace %q not found", name)
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return fmt.Errorf("failed to parse workspace %q: %w", name, err)
	}

	for _, project := range info.Projects {
		wt := worktree.NewManager(project, m.worktreeBase, m.git, m.store)
		if err := wt.RemoveAtPath(ctx, wt.WorktreePath(info.Name), info.Name, force); err != nil {
			log.Warn("failed to remove worktree for project", "project", project, "error", err)
			fmt.Fprintf(m.errW, "Warning: failed to remove worktree for %s: %v\n", project, err)
			continue
		}
		fmt.Fprintf(m.errW, "Removed worktree for %s\n", project)
	}

	if err := os.Remove(path); err != nil {
		return err
	}
	log.Info("workspace removed", "name", name)
	return nil
}

// List returns all workspaces sorted newest-first. Unparsable documents are
// skipped.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var workspaces []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			continue
		}
		var info Info
		if err := json.Unmarshal(data, &info); err != nil {
			continue
		}
		workspaces = append(workspaces, info)
	}

	sort.Slice(workspaces, func(i, j int) bool {
		return workspaces[i].CreatedAt.After(workspaces[j].CreatedAt)
	})
	return workspaces, nil
}

// projectsFromEditor collects the project list by letting the user edit a
// commented template, then validating every path.
func (m *Manager) projectsFromEditor(ctx context.Context, safeName string) ([]string, error) {
	tempDir, err := os.MkdirTemp("", "arbor-workspace-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, safeName+".yml")
	if err := os.WriteFile(tempFile, []byte(projectsTemplate), 0644); err != nil {
		return nil, err
	}

	if err := m.editor.Open(ctx, tempFile); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace project list: %w", err)
	}

	var config struct {
		Projects []string `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse workspace project list: %w", err)
	}

	if err := validateProjects(config.Projects); err != nil {
		return nil, err
	}
	return config.Projects, nil
}
