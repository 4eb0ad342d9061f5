package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List worktrees",
		Long: `Inside a git repository, ls shows this project's worktrees: those the
registry knows about and git still reports live. Outside a repository it
shows every registered worktree across projects, newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd.Context())
		},
	}
}

func (a *App) runList(ctx context.Context) error {
	records, err := a.worktrees().List(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(a.cfg.Err, "No active worktrees found.")
		return a.fail(1)
	}

	for _, r := range records {
		fmt.Fprintf(a.cfg.Out, "%s - %s (%s)\n", r.ProjectName, r.Branch, r.Agent)
	}
	return nil
}
