package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pexec "github.com/arborhq/arbor/exec"
)

func newAliasFixture(t *testing.T) (*AliasManager, *pexec.MockExecutor, string) {
	t.Helper()
	t.Setenv("EDITOR", "vi")

	root := t.TempDir()
	mock := pexec.NewMockExecutor(nil)
	editor := NewEditorWithStreams(mock, bytes.NewBufferString("\n"), &bytes.Buffer{})
	return NewAliasManager(filepath.Join(root, "aliases"), editor), mock, root
}

// stubEditorWrite makes the mocked editor invocation rewrite the file being
// edited, simulating the user filling in the template.
func stubEditorWrite(t *testing.T, mock *pexec.MockExecutor, content string) {
	t.Helper()
	mock.AddRule(func(dir, name string, args []string) bool {
		if name != "vi" || len(args) != 1 {
			return false
		}
		if err := os.WriteFile(args[0], []byte(content), 0644); err != nil {
			t.Fatalf("stub editor write failed: %v", err)
		}
		return true
	}, pexec.MockResponse{})
}

func TestAliasCreateAndLoad(t *testing.T) {
	manager, mock, root := newAliasFixture(t)

	project := filepath.Join(root, "proj")
	if err := os.MkdirAll(filepath.Join(project, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	stubEditorWrite(t, mock, "name: team\nprojects:\n  - "+project+"\n")

	if err := manager.Create(context.Background(), "team"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	config, err := manager.Load("team")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config.Name != "team" {
		t.Errorf("wrong name: %q", config.Name)
	}
	if len(config.Projects) != 1 || config.Projects[0] != project {
		t.Errorf("wrong projects: %v", config.Projects)
	}
}

func TestAliasCreate_EmptyProjectsDeletesFile(t *testing.T) {
	manager, mock, root := newAliasFixture(t)

	// The user saves the template without uncommenting any project.
	stubEditorWrite(t, mock, "name: team\nprojects:\n")

	err := manager.Create(context.Background(), "team")
	if err == nil {
		t.Fatal("an alias without projects must fail creation")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}

	if _, err := os.Stat(filepath.Join(root, "aliases", "team.yml")); !os.IsNotExist(err) {
		t.Error("invalid alias file must be deleted")
	}
}

func TestAliasCreate_EditorFailureDeletesFile(t *testing.T) {
	manager, mock, root := newAliasFixture(t)

	mock.AddPrefixMatch("vi", nil, pexec.MockResponse{ExitCode: 1})

	if err := manager.Create(context.Background(), "team"); err == nil {
		t.Fatal("editor failure must fail creation")
	}
	if _, err := os.Stat(filepath.Join(root, "aliases", "team.yml")); !os.IsNotExist(err) {
		t.Error("alias file must be deleted when the editor fails")
	}
}

func TestAliasLoad_InvalidProject(t *testing.T) {
	manager, _, root := newAliasFixture(t)

	dir := filepath.Join(root, "aliases")
	os.MkdirAll(dir, 0755)
	missing := filepath.Join(root, "gone")
	content := "name: team\nprojects:\n  - " + missing + "\n"
	os.WriteFile(filepath.Join(dir, "team.yml"), []byte(content), 0644)

	_, err := manager.Load("team")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != missing {
		t.Errorf("wrong path in error: %q", verr.Path)
	}
}

func TestAliasLoad_NotGitRepo(t *testing.T) {
	manager, _, root := newAliasFixture(t)

	plain := filepath.Join(root, "plain")
	os.MkdirAll(plain, 0755)
	dir := filepath.Join(root, "aliases")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "team.yml"), []byte("name: team\nprojects:\n  - "+plain+"\n"), 0644)

	_, err := manager.Load("team")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAliasRemove(t *testing.T) {
	manager, _, root := newAliasFixture(t)

	dir := filepath.Join(root, "aliases")
	os.MkdirAll(dir, 0755)
	path := filepath.Join(dir, "team.yml")
	os.WriteFile(path, []byte("name: team\n"), 0644)

	if err := manager.Remove("team"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("alias file should be gone")
	}

	if err := manager.Remove("team"); err == nil {
		t.Error("removing a missing alias must fail")
	}
}

func TestAliasList(t *testing.T) {
	manager, _, root := newAliasFixture(t)

	names, err := manager.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no aliases, got %v", names)
	}

	dir := filepath.Join(root, "aliases")
	os.MkdirAll(dir, 0755)
	for _, name := range []string{"zeta", "alpha"} {
		os.WriteFile(filepath.Join(dir, name+".yml"), []byte(fmt.Sprintf("name: %s\n", name)), 0644)
	}
	// Non-YAML files are ignored.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	names, err = manager.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("expected sorted alias names, got %v", names)
	}
}
