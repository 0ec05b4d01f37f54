package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const SolutionFileName = "sln.yaml"

// FindSolutionFile walks up from dir looking for a solution file, the
// way build tools look for their manifest. When none exists anywhere
// up the tree, the answer is a fresh file in dir itself.
func FindSolutionFile(dir string) string {
	current := dir
	for {
		candidate := filepath.Join(current, SolutionFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			return filepath.Join(dir, SolutionFileName)
		}
		current = parent
	}
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}

func ShortenPath(path string) string {
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
