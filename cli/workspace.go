package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) workspaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage multi-project workspaces",
		Long: `A workspace groups worktrees across repositories: every project gets a
worktree on the same branch, so one change can span several repos.`,
	}

	var aliasName string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a workspace across multiple projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.cfg.Workspaces.Create(cmd.Context(), args[0], aliasName)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Created workspace '%s' with %d project(s)\n", info.Name, len(info.Projects))
			return nil
		},
	}
	create.Flags().StringVar(&aliasName, "alias", "", "Take the project list from this alias instead of the editor")

	list := &cobra.Command{
		Use:   "ls",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspaces, err := a.cfg.Workspaces.List()
			if err != nil {
				return err
			}
			if len(workspaces) == 0 {
				fmt.Fprintln(a.cfg.Err, "No workspaces found.")
				return a.fail(1)
			}
			for _, ws := range workspaces {
				fmt.Fprintf(a.cfg.Out, "%s (%d projects)\n", ws.Name, len(ws.Projects))
			}
			return nil
		},
	}

	var force bool
	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a workspace and its worktrees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Workspaces.Remove(cmd.Context(), args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Removed workspace '%s'\n", args[0])
			return nil
		},
	}
	remove.Flags().BoolVar(&force, "force", false, "Remove worktrees even with uncommitted changes")

	cmd.AddCommand(create, list, remove)
	return cmd
}

func (a *App) aliasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage reusable workspace project lists",
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an alias by editing a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Aliases.Create(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Created alias '%s'\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "ls",
		Short: "List aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.cfg.Aliases.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(a.cfg.Err, "No aliases found.")
				return a.fail(1)
			}
			for _, name := range names {
				fmt.Fprintln(a.cfg.Out, name)
			}
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Aliases.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Removed alias '%s'\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(create, list, remove)
	return cmd
}
