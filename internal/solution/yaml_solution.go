package solution

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type solutionFile struct {
	Version  int       `yaml:"version"`
	Projects []Project `yaml:"projects"`
}

// YAMLSolution persists the solution model to a single YAML file. The
// file's own location matters: deletion guards compare project
// directories against the solution file's directory.
type YAMLSolution struct {
	path     string
	projects map[string]Project
	byFile   map[string]string
	mu       sync.RWMutex
}

func NewYAMLSolution(path string) (*YAMLSolution, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &YAMLSolution{
		path:     path,
		projects: make(map[string]Project),
		byFile:   make(map[string]string),
	}, nil
}

func (s *YAMLSolution) Path() string {
	return s.path
}

func (s *YAMLSolution) Add(p Project) error {
	if err := p.ValidateAndNormalize(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byFile[p.File]; exists {
		return ErrAlreadyExists
	}

	s.projects[p.ID] = p
	s.byFile[p.File] = p.ID
	return nil
}

func (s *YAMLSolution) Get(id string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (s *YAMLSolution) GetByFile(file string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byFile[file]
	if !ok {
		return Project{}, ErrNotFound
	}
	return s.projects[id], nil
}

func (s *YAMLSolution) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.projects, id)
	delete(s.byFile, p.File)
	return nil
}

func (s *YAMLSolution) List() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listUnlocked()
}

func (s *YAMLSolution) listUnlocked() []Project {
	projects := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := strings.ToLower(projects[i].Name), strings.ToLower(projects[j].Name)
		if a == b {
			return projects[i].ID < projects[j].ID
		}
		return a < b
	})
	return projects
}

func (s *YAMLSolution) Search(query string) []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return s.listUnlocked()
	}

	query = strings.ToLower(query)
	var results []Project

	for _, p := range s.listUnlocked() {
		if matchesQuery(p, query) {
			results = append(results, p)
		}
	}

	return results
}

func matchesQuery(p Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	return strings.Contains(strings.ToLower(p.File), query)
}

func (s *YAMLSolution) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

func (s *YAMLSolution) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := solutionFile{
		Version:  1,
		Projects: s.listUnlocked(),
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *YAMLSolution) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read solution file: %w", err)
	}

	var file solutionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse solution file %q: %w", s.path, err)
	}

	s.projects = make(map[string]Project, len(file.Projects))
	s.byFile = make(map[string]string, len(file.Projects))

	for _, p := range file.Projects {
		s.projects[p.ID] = p
		s.byFile[p.File] = p.ID
	}

	return nil
}
