// Package registry persists worktree metadata in a single JSON document.
//
// Git knows which worktrees exist; the registry knows everything git does
// not: which agent owns a worktree, which project it came from, and when it
// was created. The registry is the only durable home for that metadata.
// Records migrated from the legacy per-worktree sidecar scheme carry
// ProjectRootUnknown because the sidecar never recorded an origin repo.
package registry

import "time"

// Status describes a worktree's lifecycle state. Only StatusActive is
// produced today; the other two values are reserved.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// ProjectRootUnknown marks records whose origin repository could not be
// determined, which is the case for all records migrated from sidecar files.
// Such records never match a project-scoped listing; they stay visible only
// in the cross-project view.
const ProjectRootUnknown = "unknown"

// Record is one worktree's registry entry.
type Record struct {
	ID          string    `json:"id"`
	Branch      string    `json:"branch"`
	Path        string    `json:"path"`
	ProjectRoot string    `json:"project_root"`
	ProjectName string    `json:"project_name"`
	Agent       string    `json:"agent"`
	CreatedAt   time.Time `json:"created_at"`
	Status      Status    `json:"status"`
}
