package workspace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	pexec "github.com/arborhq/arbor/exec"
)

func TestEditorCommand(t *testing.T) {
	t.Setenv("EDITOR", "")
	if got := Command(); got != "vi" {
		t.Errorf("default editor should be vi, got %q", got)
	}

	t.Setenv("EDITOR", "nvim")
	if got := Command(); got != "nvim" {
		t.Errorf("EDITOR should win, got %q", got)
	}
}

func TestEditorOpen_VimLikeSkipsPause(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	mock := pexec.NewMockExecutor(nil)
	errW := &bytes.Buffer{}
	// An empty reader: a pause would block scanning forever, but vim-like
	// editors must not pause at all.
	editor := NewEditorWithStreams(mock, strings.NewReader(""), errW)

	if err := editor.Open(context.Background(), "/tmp/file.yml"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	calls := mock.GetCalls()
	if len(calls) != 1 || calls[0].Name != "vim" || calls[0].Args[0] != "/tmp/file.yml" {
		t.Errorf("unexpected editor invocation: %+v", calls)
	}
	if errW.Len() != 0 {
		t.Errorf("no pause prompt expected, got %q", errW.String())
	}
}

func TestEditorOpen_GUIEditorPauses(t *testing.T) {
	t.Setenv("EDITOR", "code")
	mock := pexec.NewMockExecutor(nil)
	errW := &bytes.Buffer{}
	editor := NewEditorWithStreams(mock, strings.NewReader("\n"), errW)

	if err := editor.Open(context.Background(), "/tmp/file.yml"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !strings.Contains(errW.String(), "Press Enter") {
		t.Errorf("expected pause prompt, got %q", errW.String())
	}
}

func TestEditorOpen_NonZeroExit(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	mock := pexec.NewMockExecutor(nil)
	mock.AddPrefixMatch("vim", nil, pexec.MockResponse{ExitCode: 1})
	editor := NewEditorWithStreams(mock, strings.NewReader(""), &bytes.Buffer{})

	if err := editor.Open(context.Background(), "/tmp/file.yml"); err == nil {
		t.Fatal("a failing editor must fail the edit")
	}
}

func TestEditorOpen_EditorPathIsVimLike(t *testing.T) {
	t.Setenv("EDITOR", "/usr/local/bin/nvim")
	mock := pexec.NewMockExecutor(nil)
	errW := &bytes.Buffer{}
	editor := NewEditorWithStreams(mock, strings.NewReader(""), errW)

	if err := editor.Open(context.Background(), "/tmp/file.yml"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if errW.Len() != 0 {
		t.Errorf("full-path vim-like editor must not pause, got %q", errW.String())
	}
}
