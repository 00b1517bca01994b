package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager generates a completion script for one shell and can install it
// into the conventional per-user completion directory.
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths

	generator Generator
	script    string
}

// NewManager creates a manager for shell and the given program name.
func NewManager(shell, programName string) (*Manager, error) {
	gen, ok := GetGenerator(shell)
	if !ok {
		return nil, fmt.Errorf("unsupported shell: %s", shell)
	}
	paths, err := completionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   gen,
	}, nil
}

// Accept generates and stores the completion script from the provided data.
func (m *Manager) Accept(data Data) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the previously generated script.
func (m *Manager) Script() string {
	return m.script
}

// Save writes the previously generated script into the completion
// directory, creating it as needed.
func (m *Manager) Save() error {
	if m.script == "" {
		return fmt.Errorf("no completion script generated")
	}

	dir, err := m.ensurePath()
	if err != nil {
		return err
	}

	info := m.fileConventions()
	target := filepath.Join(dir, info.Prefix+m.ProgramName+info.Extension)
	if err := os.WriteFile(target, []byte(m.script), 0o644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}
	return nil
}

func (m *Manager) ensurePath() (string, error) {
	if err := os.MkdirAll(m.Paths.Primary, 0o755); err == nil {
		return m.Paths.Primary, nil
	}
	if m.Paths.Fallback != "" {
		if err := os.MkdirAll(m.Paths.Fallback, 0o755); err == nil {
			return m.Paths.Fallback, nil
		}
	}
	return "", fmt.Errorf("failed to create completion directory %s", m.Paths.Primary)
}

func (m *Manager) fileConventions() FileInfo {
	switch m.Shell {
	case "zsh":
		// zsh completion files start with _ (e.g. _git)
		return FileInfo{Prefix: "_"}
	case "fish":
		return FileInfo{Extension: ".fish"}
	}
	return FileInfo{}
}
