package workspace

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pexec "github.com/arborhq/arbor/exec"
)

// Editor opens files in the user's text editor and waits for them to finish.
type Editor struct {
	executor pexec.CommandExecutor
	in       io.Reader
	errW     io.Writer
}

// NewEditor creates an Editor wired to the real terminal.
func NewEditor(executor pexec.CommandExecutor) *Editor {
	return &Editor{executor: executor, in: os.Stdin, errW: os.Stderr}
}

// NewEditorWithStreams creates an Editor with custom streams for testing.
func NewEditorWithStreams(executor pexec.CommandExecutor, in io.Reader, errW io.Writer) *Editor {
	return &Editor{executor: executor, in: in, errW: errW}
}

// Command returns the editor command from $EDITOR, defaulting to vi.
func Command() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// isVimLike reports whether the editor blocks the terminal until the user
// quits. GUI editors typically return immediately, so Open pauses until the
// user confirms they are done editing.
func isVimLike(editor string) bool {
	switch filepath.Base(editor) {
	case "vim", "nvim", "vi":
		return true
	}
	return false
}

// Open launches the editor on path with inherited terminal streams and
// blocks until it exits. A non-zero editor exit fails the edit.
func (e *Editor) Open(ctx context.Context, path string) error {
	editor := Command()

	status, err := e.executor.Interactive(ctx, "", nil, editor, path)
	if err != nil {
		return fmt.Errorf("failed to launch editor %s: %w", editor, err)
	}
	if status != 0 {
		return fmt.Errorf("editor exited with status %d", status)
	}

	if !isVimLike(editor) {
		fmt.Fprint(e.errW, "Press Enter to continue...")
		scanner := bufio.NewScanner(e.in)
		scanner.Scan()
	}
	return nil
}
