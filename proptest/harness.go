package proptest

import (
	"os"
	"path/filepath"
	"sln/internal/solution"
	"testing"

	"pgregory.net/rapid"
)

const (
	minProjects        = 0
	maxProjects        = 12
	typicalMinProjects = 1
	typicalMaxProjects = 8
)

type ProjectGenOpt func(*projectGenConfig)

type projectGenConfig struct {
	name *string
}

func WithName(name string) ProjectGenOpt {
	return func(c *projectGenConfig) {
		c.name = &name
	}
}

// GenProject creates a real project directory under dir, anchored by a
// go.mod file, and returns the entry describing it.
func GenProject(t *rapid.T, dir string, opts ...ProjectGenOpt) solution.Project {
	cfg := &projectGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var name string
	if cfg.name != nil {
		name = *cfg.name
	} else {
		name = validNameGen().Draw(t, "name")
	}

	subdir := subdirGen.Draw(t, "subdir")
	path := filepath.Join(dir, subdir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}
	file := filepath.Join(path, "go.mod")
	if err := os.WriteFile(file, []byte("module "+name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write project file: %v", err)
	}

	return solution.NewProject(name, file).WithKind(solution.KindGo)
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenProject(opts ...ProjectGenOpt) solution.Project {
	return GenProject(h.T, h.Dir, opts...)
}

type SolutionHarness struct {
	Harness
	Solution solution.Solution
}

// NewSolutionHarness places the solution file in its own subdirectory
// so generated projects never collide with it.
func NewSolutionHarness(tb testing.TB, t *rapid.T) *SolutionHarness {
	tb.Helper()
	dir := tb.TempDir()
	sol, err := solution.NewYAMLSolution(filepath.Join(dir, "workspace", "sln.yaml"))
	if err != nil {
		t.Fatalf("failed to create solution: %v", err)
	}
	return &SolutionHarness{
		Harness:  Harness{T: t, Dir: filepath.Join(dir, "workspace")},
		Solution: sol,
	}
}

func (h *SolutionHarness) MustAddProject(opts ...ProjectGenOpt) solution.Project {
	p := h.GenProject(opts...)
	if err := h.Solution.Add(p); err != nil {
		h.T.Fatalf("failed to add project: %v", err)
	}
	return p
}

func (h *SolutionHarness) AddProjects(minCount, maxCount int) []solution.Project {
	count := rapid.IntRange(minCount, maxCount).Draw(h.T, "count")
	projects := make([]solution.Project, 0, count)
	for i := 0; i < count; i++ {
		p := h.GenProject()
		if err := h.Solution.Add(p); err != nil {
			continue // duplicate generated path, skip
		}
		projects = append(projects, p)
	}
	return projects
}
