// Package git wraps the git worktree primitives Arbor depends on.
//
// Git remains the authority on worktree state; this package only issues
// commands and parses their output. The package is organized into:
//   - service.go: GitService struct and constructor
//   - errors.go: typed errors surfaced to callers
//   - worktree.go: worktree add/remove/list, branch queries
package git
