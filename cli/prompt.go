package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) promptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Manage system prompt files",
		Long: `Prompts are markdown files passed to agents as system prompts via
create --system-prompt <name>.`,
	}

	list := &cobra.Command{
		Use:   "ls",
		Short: "List available prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.cfg.Prompts.List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(a.cfg.Err, "No prompts found in %s\n", a.cfg.Prompts.Dir())
				return a.fail(1)
			}
			for _, name := range names {
				fmt.Fprintln(a.cfg.Out, name)
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	return cmd
}

func (a *App) doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := CheckAll(DefaultPrerequisites())
			fmt.Fprint(a.cfg.Out, FormatCheckResults(results))

			if err := ValidateRequired(DefaultPrerequisites()); err != nil {
				fmt.Fprintf(a.cfg.Err, "\n%v\n", err)
				return a.fail(1)
			}
			return nil
		},
	}
}
