package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pexec "github.com/arborhq/arbor/exec"
	"github.com/arborhq/arbor/git"
	"github.com/arborhq/arbor/prompt"
	"github.com/arborhq/arbor/registry"
	"github.com/arborhq/arbor/workspace"
	"github.com/arborhq/arbor/worktree"
)

// Config carries the wired dependencies for the command tree. Everything is
// constructed by the caller; the CLI holds no ambient state.
type Config struct {
	Executor     pexec.CommandExecutor
	Git          *git.GitService
	Store        *registry.Store
	Workspaces   *workspace.Manager
	Aliases      *workspace.AliasManager
	Prompts      *prompt.Manager
	WorktreeBase string
	WorkDir      string // the invoking directory, treated as the project root
	Out          io.Writer
	Err          io.Writer
}

// App is the arbor command tree.
type App struct {
	cfg      Config
	exitCode int
}

// New creates the App over its wired dependencies.
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// worktrees returns a lifecycle manager rooted at the invoking directory.
func (a *App) worktrees() *worktree.Manager {
	return worktree.NewManager(a.cfg.WorkDir, a.cfg.WorktreeBase, a.cfg.Git, a.cfg.Store)
}

// fail records a non-zero exit without surfacing a cobra error, for cases
// where the message has already been written.
func (a *App) fail(code int) error {
	a.exitCode = code
	return nil
}

// Run executes the command tree and returns the process exit code. An
// agent's exit status propagates here unchanged.
func (a *App) Run(args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.cfg.Out)
	root.SetErr(a.cfg.Err)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.cfg.Err, "Error: %v\n", err)
		return 1
	}
	return a.exitCode
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "arbor",
		Short: "Manage git worktrees with AI agents for parallel development",
		Long: `Arbor creates git worktrees for feature branches and launches coding
agents inside them, so several lines of work can proceed in parallel
checkouts of the same repository.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation lists worktrees.
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.Context())
		},
	}

	root.AddCommand(
		a.createCommand(),
		a.listCommand(),
		a.removeCommand(),
		a.statusCommand(),
		a.pathCommand(),
		a.workspaceCommand(),
		a.aliasCommand(),
		a.promptCommand(),
		a.doctorCommand(),
	)
	return root
}
