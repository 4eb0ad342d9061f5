// Package agent launches coding agents inside worktrees. A launcher execs
// the agent command in the worktree directory with inherited terminal
// streams and a set of ARBOR_* environment variables describing the
// worktree; the agent's exit status becomes the tool's exit status.
package agent

import (
	"context"
	"fmt"

	pexec "github.com/arborhq/arbor/exec"
	"github.com/arborhq/arbor/logger"
	"github.com/arborhq/arbor/prompt"
	"github.com/arborhq/arbor/registry"
)

// Options carries per-launch settings.
type Options struct {
	// SystemPrompt names a prompt file to pass to agents that support one.
	SystemPrompt string
	// Args are extra arguments forwarded to the agent verbatim.
	Args []string
}

// Launcher starts an agent in a worktree and blocks until it exits.
type Launcher interface {
	Start(ctx context.Context, rec *registry.Record, opts Options) (int, error)
}

// ForTag returns the launcher for a known agent tag. Unknown tags are a
// configuration error, never a silent no-op.
func ForTag(tag string, executor pexec.CommandExecutor, prompts *prompt.Manager) (Launcher, error) {
	switch tag {
	case "claude":
		return &claudeLauncher{executor: executor, prompts: prompts}, nil
	case "gemini":
		return &geminiLauncher{executor: executor}, nil
	default:
		return nil, fmt.Errorf("unknown agent %q (known agents: claude, gemini)", tag)
	}
}

// NewCustom returns a launcher that execs an arbitrary command instead of a
// named agent.
func NewCustom(executor pexec.CommandExecutor, command string) Launcher {
	return &customLauncher{executor: executor, command: command}
}

// environment builds the ARBOR_* variables every agent receives.
func environment(rec *registry.Record) []string {
	return []string{
		"ARBOR_WORKTREE=" + rec.Path,
		"ARBOR_BRANCH=" + rec.Branch,
		"ARBOR_PROJECT=" + rec.ProjectName,
		"ARBOR_WORKTREE_ID=" + rec.ID,
		"ARBOR_AGENT=" + rec.Agent,
	}
}

type claudeLauncher struct {
	executor pexec.CommandExecutor
	prompts  *prompt.Manager
}

func (l *claudeLauncher) Start(ctx context.Context, rec *registry.Record, opts Options) (int, error) {
	log := logger.WithComponent("agent")

	args := append([]string{}, opts.Args...)
	if opts.SystemPrompt != "" {
		content, err := l.prompts.Load(opts.SystemPrompt)
		if err != nil {
			return -1, fmt.Errorf("failed to load system prompt: %w", err)
		}
		args = append(args, "--append-system-prompt", content)
	}

	log.Info("starting agent", "agent", "claude", "branch", rec.Branch, "path", rec.Path)
	return l.executor.Interactive(ctx, rec.Path, environment(rec), "claude", args...)
}

type geminiLauncher struct {
	executor pexec.CommandExecutor
}

func (l *geminiLauncher) Start(ctx context.Context, rec *registry.Record, opts Options) (int, error) {
	log := logger.WithComponent("agent")

	log.Info("starting agent", "agent", "gemini", "branch", rec.Branch, "path", rec.Path)
	return l.executor.Interactive(ctx, rec.Path, environment(rec), "gemini", opts.Args...)
}

type customLauncher struct {
	executor pexec.CommandExecutor
	command  string
}

func (l *customLauncher) Start(ctx context.Context, rec *registry.Record, opts Options) (int, error) {
	log := logger.WithComponent("agent")

	log.Info("starting custom command", "command", l.command, "branch", rec.Branch, "path", rec.Path)
	return l.executor.Interactive(ctx, rec.Path, environment(rec), l.command, opts.Args...)
}
