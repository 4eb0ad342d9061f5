package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestBaseDir_UnderHome(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	dir, err := BaseDir()
	if err != nil {
		t.Fatalf("BaseDir failed: %v", err)
	}
	if filepath.Base(dir) != ".arbor" {
		t.Errorf("BaseDir should end in .arbor, got %s", dir)
	}
}

func TestWorktreesDir_Default(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv(WorktreePathEnv, "")

	dir, err := WorktreesDir()
	if err != nil {
		t.Fatalf("WorktreesDir failed: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".arbor", "worktrees")) {
		t.Errorf("unexpected default worktrees dir: %s", dir)
	}
}

func TestWorktreesDir_EnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv(WorktreePathEnv, "/tmp/custom-worktrees")

	dir, err := WorktreesDir()
	if err != nil {
		t.Fatalf("WorktreesDir failed: %v", err)
	}
	if dir != "/tmp/custom-worktrees" {
		t.Errorf("env override not honored, got %s", dir)
	}
}

func TestSubdirectories(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	base, err := BaseDir()
	if err != nil {
		t.Fatalf("BaseDir failed: %v", err)
	}

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"workspaces", WorkspacesDir, filepath.Join(base, "workspaces")},
		{"aliases", AliasesDir, filepath.Join(base, "aliases")},
		{"prompts", PromptsDir, filepath.Join(base, "prompts")},
		{"logs", LogsDir, filepath.Join(base, "logs")},
		{"registry", RegistryFilePath, filepath.Join(base, "registry.json")},
	}

	for _, tt := range tests {
		got, err := tt.fn()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}
