package solution

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("project name cannot be empty")
	ErrRelativePath = errors.New("project file path must be absolute")
	ErrFileNotExist = errors.New("project file does not exist")
)

type Kind string

const (
	KindGo      Kind = "go"
	KindRust    Kind = "rust"
	KindNode    Kind = "node"
	KindPython  Kind = "python"
	KindElixir  Kind = "elixir"
	KindRuby    Kind = "ruby"
	KindJava    Kind = "java"
	KindGeneric Kind = "generic"
)

type Project struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	File    string    `yaml:"file"`
	Kind    Kind      `yaml:"kind,omitempty"`
	AddedAt time.Time `yaml:"added_at"`
}

func NewProject(name, file string) Project {
	return Project{
		ID:      uuid.New().String(),
		Name:    name,
		File:    file,
		AddedAt: time.Now(),
	}
}

func (p Project) WithKind(kind Kind) Project {
	newP := p
	newP.Kind = kind
	return newP
}

// DisplayName is the name shown in prompts and reports.
func (p Project) DisplayName() string {
	return p.Name
}

// ProjectFile is the absolute path to the project's manifest file.
func (p Project) ProjectFile() string {
	return p.File
}

// Dir is the directory containing the project file.
func (p Project) Dir() string {
	return filepath.Dir(p.File)
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (p *Project) ValidateAndNormalize() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	if !filepath.IsAbs(p.File) {
		return fmt.Errorf("%w: got %q", ErrRelativePath, p.File)
	}

	info, err := os.Stat(p.File)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotExist, p.File)
		}
		return fmt.Errorf("cannot access project file %q: %w", p.File, err)
	}
	if info.IsDir() {
		return fmt.Errorf("project file is a directory: %s", p.File)
	}

	return nil
}
