package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove [branch]",
		Short: "Remove a worktree",
		Long: `Remove tears down the worktree for the branch and deletes its registry
record. The branch itself is deleted afterwards on a best-effort basis.
Without a branch argument the removable worktrees are listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := a.worktrees()

			if len(args) == 0 {
				records, err := manager.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(a.cfg.Err, "No active worktrees found to remove.")
					return a.fail(1)
				}
				fmt.Fprintln(a.cfg.Err, "Please specify a branch name to remove. Available worktrees:")
				for _, r := range records {
					fmt.Fprintf(a.cfg.Err, "  %s\n", r.Branch)
				}
				return a.fail(1)
			}

			branch := args[0]
			if err := manager.Remove(cmd.Context(), branch, force); err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Removed worktree for branch '%s'\n", branch)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the worktree has uncommitted changes")
	return cmd
}
