package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasConfig is a reusable project-set template. Aliases are human-edited
// YAML files with an independent lifecycle; they never touch the registry.
type AliasConfig struct {
	Name     string   `yaml:"name"`
	Projects []string `yaml:"projects"`
}

const aliasTemplate = `# Arbor Workspace Alias
# Add the full paths to the git repositories for this alias.

name: %s
projects:
#  - /path/to/your/first/project
#  - /path/to/your/second/project
`

// AliasManager manages alias template files in one directory.
type AliasManager struct {
	dir    string
	editor *Editor
}

// NewAliasManager creates an AliasManager over dir.
func NewAliasManager(dir string, editor *Editor) *AliasManager {
	return &AliasManager{dir: dir, editor: editor}
}

func (m *AliasManager) aliasPath(name string) string {
	return filepath.Join(m.dir, name+".yml")
}

// Create writes a commented template, opens it in the editor, and validates
// the result. Invalid content deletes the newly created file.
func (m *AliasManager) Create(ctx context.Context, name string) error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}

	path := m.aliasPath(name)
	template := fmt.Sprintf(aliasTemplate, name)
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return err
	}

	if err := m.editor.Open(ctx, path); err != nil {
		os.Remove(path)
		return err
	}

	if err := m.validateFile(path); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// Load reads and validates an alias by name.
func (m *AliasManager) Load(name string) (*AliasConfig, error) {
	path := m.aliasPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias %q: %w", name, err)
	}

	var config AliasConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse alias %q: %w", name, err)
	}

	if err := validateProjects(config.Projects); err != nil {
		return nil, err
	}
	return &config, nil
}

// Remove deletes an alias file.
func (m *AliasManager) Remove(name string) error {
	path := m.aliasPath(name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("alias %q not found", name)
	}
	return os.Remove(path)
}

// List returns the names of all aliases, sorted.
func (m *AliasManager) List() ([]string, error) {
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
		if name, ok := strings.CutSuffix(entry.Name(), ".yml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *AliasManager) validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read alias file: %w", err)
	}

	var config AliasConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse alias file: %w", err)
	}

	if len(config.Projects) == 0 {
		return &ValidationError{Path: path, Reason: "alias must list at least one project"}
	}
	return validateProjects(config.Projects)
}
