package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arborhq/arbor/logger"
)

// CorruptError reports a registry file that exists but cannot be parsed.
// A missing file is not corruption; that triggers migration instead.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("registry file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// document is the on-disk shape: a JSON object with one field holding the
// full ordered record list.
type document struct {
	Worktrees []Record `json:"worktrees"`
}

// Store reads and writes the registry document. It also owns the one-time
// migration from the legacy sidecar-file scheme, which runs lazily the first
// time Load finds no registry file.
type Store struct {
	filePath      string // the registry JSON document
	worktreesDir  string // scanned for legacy sidecar files
	workspacesDir string // legacy workspace worktrees nested one level deeper
}

// NewStore creates a Store backed by filePath. worktreesDir and
// workspacesDir locate legacy sidecar files during migration.
func NewStore(filePath, worktreesDir, workspacesDir string) *Store {
	return &Store{
		filePath:      filePath,
		worktreesDir:  worktreesDir,
		workspacesDir: workspacesDir,
	}
}

// FilePath returns the path of the backing registry document.
func (s *Store) FilePath() string {
	return s.filePath
}

// Load returns all records. If the registry file does not exist, the legacy
// sidecar migration runs instead of returning an empty list.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return s.migrate()
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Path: s.filePath, Err: err}
	}
	return doc.Worktrees, nil
}

// Save replaces the registry document with the given record list. The write
// is atomic: a temp file in the same directory is renamed over the target,
// so a crash mid-write leaves the previous document intact.
func (s *Store) Save(records []Record) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	doc := document{Worktrees: records}
	if doc.Worktrees == nil {
		doc.Worktrees = []Record{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".registry-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Add appends a record and persists the result. Load and save are not
// atomic as a pair; the last concurrent writer wins.
func (s *Store) Add(record Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records = append(records, record)
	if err := s.Save(records); err != nil {
		return err
	}

	logger.WithComponent("registry").Info("record added",
		"id", record.ID, "branch", record.Branch, "path", record.Path)
	return nil
}

// RemoveByPath drops the record whose Path matches and persists the result.
// Removing a path with no record is a no-op.
func (s *Store) RemoveByPath(path string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	remaining := make([]Record, 0, len(records))
	removed := 0
	for _, r := range records {
		if r.Path == path {
			removed++
			continue
		}
		remaining = append(remaining, r)
	}
	if err := s.Save(remaining); err != nil {
		return err
	}

	if removed > 0 {
		logger.WithComponent("registry").Info("record removed", "path", path)
	}
	return nil
}
