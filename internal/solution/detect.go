package solution

import (
	"fmt"
	"os"
	"path/filepath"
)

var markers = []struct {
	file string
	kind Kind
}{
	{"go.mod", KindGo},
	{"Cargo.toml", KindRust},
	{"package.json", KindNode},
	{"pyproject.toml", KindPython},
	{"requirements.txt", KindPython},
	{"mix.exs", KindElixir},
	{"Gemfile", KindRuby},
	{"pom.xml", KindJava},
	{"build.gradle", KindJava},
	{"build.gradle.kts", KindJava},
	{"Makefile", KindGeneric},
}

// DetectProjectFile locates the manifest file that anchors the project
// rooted at dir. The first matching marker wins, so a directory with
// both go.mod and a Makefile is a Go project.
func DetectProjectFile(dir string) (string, Kind, error) {
	for _, m := range markers {
		file := filepath.Join(dir, m.file)
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file, m.kind, nil
		}
	}
	return "", "", fmt.Errorf("no project file found in %s", dir)
}

// KindOf classifies an already-known project file by its base name.
func KindOf(file string) Kind {
	base := filepath.Base(file)
	for _, m := range markers {
		if base == m.file {
			return m.kind
		}
	}
	return KindGeneric
}
