// Package prompt manages system prompt files for agents. Prompts are plain
// markdown files in one directory, addressed by name with the .md extension
// optional.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Manager resolves and loads prompt files from a single directory.
type Manager struct {
	dir string
}

// NewManager creates a Manager over dir. The directory is created on
// demand when a prompt is saved, not here.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the prompts directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Path returns the file a prompt name resolves to. The .md extension is
// appended unless the name already carries it.
func (m *Manager) Path(name string) string {
	filename := name
	if !strings.HasSuffix(filename, ".md") {
		filename += ".md"
	}
	return filepath.Join(m.dir, filename)
}

// Load reads a prompt's content by name.
func (m *Manager) Load(name string) (string, error) {
	path := m.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("prompt %q not found at %s", name, path)
		}
		return "", fmt.Errorf("failed to read prompt %q: %w", name, err)
	}
	return string(data), nil
}

// List returns the names of all prompts, sorted. A missing directory is an
// empty list.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".md"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
