package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show detailed status of all worktrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.worktrees().List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.cfg.Out, "Worktree Status:")
			for _, r := range records {
				fmt.Fprintf(a.cfg.Out, "  Branch: %s\n", r.Branch)
				fmt.Fprintf(a.cfg.Out, "    Path: %s\n", r.Path)
				fmt.Fprintf(a.cfg.Out, "    Agent: %s\n", r.Agent)
				fmt.Fprintf(a.cfg.Out, "    Status: %s\n", r.Status)
				fmt.Fprintf(a.cfg.Out, "    Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
				fmt.Fprintln(a.cfg.Out)
			}
			return nil
		},
	}
}

func (a *App) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path <branch>",
		Short: "Print the worktree path for a branch",
		Long: `Path prints the absolute worktree directory for a branch, suitable for
shell substitution: cd "$(arbor path my-branch)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := args[0]

			records, err := a.worktrees().List(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range records {
				if r.Branch == branch {
					fmt.Fprintln(a.cfg.Out, r.Path)
					return nil
				}
			}
			fmt.Fprintf(a.cfg.Err, "Worktree for branch '%s' not found\n", branch)
			return a.fail(1)
		},
	}
}
