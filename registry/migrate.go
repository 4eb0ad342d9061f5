package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/arborhq/arbor/logger"
)

// SidecarFileName is the legacy per-worktree metadata file superseded by
// the central registry.
const SidecarFileName = ".arbor-info.json"

// sidecarRecord is the legacy schema: identical to Record minus the
// project_root field, which the sidecar scheme never stored.
type sidecarRecord struct {
	ID          string    `json:"id"`
	Branch      string    `json:"branch"`
	Path        string    `json:"path"`
	ProjectName string    `json:"project_name"`
	Agent       string    `json:"agent"`
	CreatedAt   time.Time `json:"created_at"`
	Status      Status    `json:"status"`
}

// migrate scans for legacy sidecar files, converts them to current-schema
// records, deletes the sidecars, and persists the batch if anything was
// found. It runs at most once in practice: after the first Save the registry
// file exists and Load never reaches this path again.
//
// Sidecar files are deleted immediately after a successful parse, before the
// batch save, so a save failure can drop migrated metadata. Every read path
// self-heals this way without a separate upgrade step.
func (s *Store) migrate() ([]Record, error) {
	log := logger.WithComponent("registry")

	var migrated []Record

	// Worktrees live directly under the base directory.
	migrated = append(migrated, s.collectSidecars(s.worktreesDir)...)

	// Workspaces historically nested worktrees one level deeper:
	// <workspacesDir>/<workspace>/<project>/.arbor-info.json
	if entries, err := os.ReadDir(s.workspacesDir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			migrated = append(migrated, s.collectSidecars(filepath.Join(s.workspacesDir, entry.Name()))...)
		}
	}

	if len(migrated) == 0 {
		// Nothing to migrate; the registry file is created lazily on
		// first Add.
		return nil, nil
	}

	log.Info("migrated legacy sidecar files", "count", len(migrated))
	if err := s.Save(migrated); err != nil {
		return nil, err
	}
	return migrated, nil
}

// collectSidecars parses and deletes sidecar files in the immediate
// subdirectories of dir. Unreadable or unparsable sidecars are skipped and
// left in place.
func (s *Store) collectSidecars(dir string) []Record {
	log := logger.WithComponent("registry")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var records []Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sidecarPath := filepath.Join(dir, entry.Name(), SidecarFileName)
		data, err := os.ReadFile(sidecarPath)
		if err != nil {
			continue
		}

		var legacy sidecarRecord
		if err := json.Unmarshal(data, &legacy); err != nil {
			log.Warn("skipping unparsable sidecar file", "path", sidecarPath, "error", err)
			continue
		}

		records = append(records, Record{
			ID:          legacy.ID,
			Branch:      legacy.Branch,
			Path:        legacy.Path,
			ProjectRoot: ProjectRootUnknown,
			ProjectName: legacy.ProjectName,
			Agent:       legacy.Agent,
			CreatedAt:   legacy.CreatedAt,
			Status:      legacy.Status,
		})

		if err := os.Remove(sidecarPath); err != nil {
			log.Warn("failed to delete sidecar file after migration", "path", sidecarPath, "error", err)
		}
	}
	return records
}
