package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// completionPaths returns the per-user install locations for shell.
func completionPaths(shell string) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch shell {
	case "bash":
		return Paths{
			Primary:  dataDir(home, "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
		}, nil
	case "zsh":
		return Paths{
			Primary:  filepath.Join(home, ".zsh", "completions"),
			Fallback: filepath.Join(home, ".zfunc"),
		}, nil
	case "fish":
		return Paths{
			Primary: configDir(home, "fish", "completions"),
		}, nil
	}
	return Paths{}, fmt.Errorf("unsupported shell: %s", shell)
}

func dataDir(home string, parts ...string) string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(append([]string{base}, parts...)...)
}

func configDir(home string, parts ...string) string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(append([]string{base}, parts...)...)
}
