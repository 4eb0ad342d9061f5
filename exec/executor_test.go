package exec

import (
	"context"
	"errors"
	"testing"
)

func TestRealExecutor_Run(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	stdout, stderr, err := executor.Run(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}
}

func TestRealExecutor_Output(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	output, err := executor.Output(ctx, "", "echo", "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(output) != "world\n" {
		t.Errorf("expected 'world\\n', got %q", string(output))
	}
}

func TestRealExecutor_Interactive_ExitCode(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	code, err := executor.Interactive(ctx, "", nil, "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
}

func TestRealExecutor_Interactive_Success(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	code, err := executor.Interactive(ctx, "", []string{"ARBOR_TEST_VAR=1"}, "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestMockExecutor_Run(t *testing.T) {
	mock := NewMockExecutor(nil)

	mock.AddExactMatch("git", []string{"status"}, MockResponse{
		Stdout: []byte("On branch main"),
	})

	ctx := context.Background()
	stdout, stderr, err := mock.Run(ctx, "/some/dir", "git", "status")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "On branch main" {
		t.Errorf("expected 'On branch main', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}

	calls := mock.GetCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/some/dir" {
		t.Errorf("expected dir '/some/dir', got %q", calls[0].Dir)
	}
}

func TestMockExecutor_PrefixMatch(t *testing.T) {
	mock := NewMockExecutor(nil)

	mock.AddPrefixMatch("git", []string{"worktree", "add"}, MockResponse{
		Stdout: []byte("Preparing worktree"),
	})

	ctx := context.Background()
	stdout, _, err := mock.Run(ctx, "", "git", "worktree", "add", "-b", "feature", "/path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "Preparing worktree" {
		t.Errorf("prefix rule should match, got %q", string(stdout))
	}
}

func TestMockExecutor_Error(t *testing.T) {
	mock := NewMockExecutor(nil)
	wantErr := errors.New("fatal: not a git repository")

	mock.AddExactMatch("git", []string{"rev-parse"}, MockResponse{
		Stderr: []byte("fatal: not a git repository"),
		Err:    wantErr,
	})

	_, stderr, err := mock.Run(context.Background(), "", "git", "rev-parse")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected configured error, got %v", err)
	}
	if string(stderr) != "fatal: not a git repository" {
		t.Errorf("unexpected stderr: %q", string(stderr))
	}
}

func TestMockExecutor_Interactive(t *testing.T) {
	mock := NewMockExecutor(nil)

	mock.AddExactMatch("claude", nil, MockResponse{ExitCode: 2})

	code, err := mock.Interactive(context.Background(), "/work", nil, "claude")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestMockExecutor_UnmatchedDefaultsToSuccess(t *testing.T) {
	mock := NewMockExecutor(nil)

	stdout, stderr, err := mock.Run(context.Background(), "", "git", "fetch")
	if err != nil || stdout != nil || stderr != nil {
		t.Errorf("unmatched command should return empty success, got %q %q %v", stdout, stderr, err)
	}
}

func TestMockExecutor_Fallback(t *testing.T) {
	real := NewRealExecutor()
	mock := NewMockExecutor(real)

	mock.AddExactMatch("git", []string{"status"}, MockResponse{Stdout: []byte("mocked")})

	// Unmatched command falls through to the real executor.
	stdout, err := mock.Output(context.Background(), "", "echo", "fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "fallback\n" {
		t.Errorf("expected fallback output, got %q", string(stdout))
	}
}

func TestMockExecutor_CombinedOutput(t *testing.T) {
	mock := NewMockExecutor(nil)

	mock.AddExactMatch("git", []string{"worktree", "remove", "/p"}, MockResponse{
		Stdout: []byte("out"),
		Stderr: []byte("err"),
	})

	combined, err := mock.CombinedOutput(context.Background(), "", "git", "worktree", "remove", "/p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(combined) != "outerr" {
		t.Errorf("expected combined output, got %q", string(combined))
	}
}
