package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborhq/arbor/agent"
	"github.com/arborhq/arbor/worktree"
)

func (a *App) createCommand() *cobra.Command {
	var (
		agentTag      string
		systemPrompt  string
		baseBranch    string
		customCommand string
	)

	cmd := &cobra.Command{
		Use:   "create <branch> [-- agent-args...]",
		Short: "Create a new worktree and launch an agent in it",
		Long: `Create makes a worktree for the branch (creating the branch from the
base branch when it does not exist yet), copies the project's .env files
into it, and launches the chosen agent inside it. Arguments after -- are
forwarded to the agent verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := args[0]

			// Everything after -- belongs to the agent.
			var agentArgs []string
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				agentArgs = args[at:]
				if at < 1 {
					return fmt.Errorf("branch name is required before --")
				}
			}

			// Resolve the launcher first: an unknown agent tag is a
			// configuration error and must not leave a worktree or
			// registry record behind.
			recordTag := agentTag
			var launcher agent.Launcher
			switch {
			case customCommand != "":
				recordTag = "custom"
				launcher = agent.NewCustom(a.cfg.Executor, customCommand)
			case agentTag != worktree.AgentNone:
				var err error
				launcher, err = agent.ForTag(agentTag, a.cfg.Executor, a.cfg.Prompts)
				if err != nil {
					return err
				}
			}

			rec, err := a.worktrees().Create(cmd.Context(), branch, recordTag, baseBranch)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.cfg.Out, "Created worktree for branch '%s' at: %s\n", branch, rec.Path)

			if launcher == nil {
				return nil
			}

			status, err := launcher.Start(cmd.Context(), rec, agent.Options{
				SystemPrompt: systemPrompt,
				Args:         agentArgs,
			})
			if err != nil {
				return err
			}
			return a.fail(status)
		},
	}

	cmd.Flags().StringVar(&agentTag, "agent", "claude", "Agent to launch (claude, gemini, none)")
	cmd.Flags().StringVar(&systemPrompt, "system-prompt", "", "Name of a system prompt file in the prompts directory")
	cmd.Flags().StringVar(&baseBranch, "base-branch", "", "Base branch to create the new branch from (defaults to current branch)")
	cmd.Flags().StringVar(&customCommand, "custom-command", "", "Launch this command instead of a named agent")
	return cmd
}
