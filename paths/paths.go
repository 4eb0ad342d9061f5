// Package paths provides centralized path resolution for Arbor's data directories.
//
// All state lives under a single base directory, ~/.arbor by default:
//
//   - registry.json: the worktree registry
//   - worktrees/: created worktrees (overridable via ARBOR_WORKTREE_PATH)
//   - workspaces/: one JSON document per workspace
//   - aliases/: reusable project-set templates
//   - prompts/: system prompt files for agents
//   - logs/: log files
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

// WorktreePathEnv overrides the directory under which worktrees are created.
const WorktreePathEnv = "ARBOR_WORKTREE_PATH"

var (
	mu   sync.Mutex
	base string
)

// BaseDir returns the root data directory (~/.arbor). The resolution is
// cached after the first call.
func BaseDir() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if base != "" {
		return base, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base = filepath.Join(home, ".arbor")
	return base, nil
}

// WorktreesDir returns the directory under which worktrees are created.
// The ARBOR_WORKTREE_PATH environment variable, when set, takes precedence
// over the default location and is consulted on every call so tests can
// redirect worktree creation.
func WorktreesDir() (string, error) {
	if p := os.Getenv(WorktreePathEnv); p != "" {
		return p, nil
	}
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "worktrees"), nil
}

// WorkspacesDir returns the directory holding workspace documents.
func WorkspacesDir() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspaces"), nil
}

// AliasesDir returns the directory holding alias templates.
func AliasesDir() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aliases"), nil
}

// PromptsDir returns the directory holding agent system prompt files.
func PromptsDir() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompts"), nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// RegistryFilePath returns the full path to the worktree registry document.
func RegistryFilePath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "registry.json"), nil
}

// Reset clears the cached base directory resolution. This is intended for
// testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	base = ""
}
