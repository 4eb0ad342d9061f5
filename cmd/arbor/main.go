// Command arbor manages git worktrees with AI agents for parallel
// development.
package main

import (
	"fmt"
	"os"

	"github.com/arborhq/arbor/cli"
	pexec "github.com/arborhq/arbor/exec"
	"github.com/arborhq/arbor/git"
	"github.com/arborhq/arbor/logger"
	"github.com/arborhq/arbor/paths"
	"github.com/arborhq/arbor/prompt"
	"github.com/arborhq/arbor/registry"
	"github.com/arborhq/arbor/workspace"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Close()

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	worktreeBase, err := paths.WorktreesDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	workspacesDir, err := paths.WorkspacesDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	aliasesDir, err := paths.AliasesDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	promptsDir, err := paths.PromptsDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	registryPath, err := paths.RegistryFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	executor := pexec.NewRealExecutor()
	gitService := git.NewGitServiceWithExecutor(executor)
	store := registry.NewStore(registryPath, worktreeBase, workspacesDir)
	editor := workspace.NewEditor(executor)
	aliases := workspace.NewAliasManager(aliasesDir, editor)
	workspaces := workspace.NewManager(workspacesDir, worktreeBase, gitService, store, aliases, editor, os.Stderr)
	prompts := prompt.NewManager(promptsDir)

	app := cli.New(cli.Config{
		Executor:     executor,
		Git:          gitService,
		Store:        store,
		Workspaces:   workspaces,
		Aliases:      aliases,
		Prompts:      prompts,
		WorktreeBase: worktreeBase,
		WorkDir:      workDir,
		Out:          os.Stdout,
		Err:          os.Stderr,
	})
	return app.Run(os.Args[1:])
}
