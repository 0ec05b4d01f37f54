package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sln/internal/config"
	"sln/internal/solution"
)

type AddCmd struct {
	Path string `arg:"" help:"Path to the project directory or project file"`
	Name string `short:"n" help:"Project name (defaults to directory name)"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	path, err := config.ExpandPath(cmd.Path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", path)
	}

	var file string
	var kind solution.Kind
	if info.IsDir() {
		file, kind, err = solution.DetectProjectFile(path)
		if err != nil {
			return fmt.Errorf("%w (pass the project file directly)", err)
		}
	} else {
		file = path
		kind = solution.KindOf(path)
	}

	name := cmd.Name
	if name == "" {
		name = filepath.Base(filepath.Dir(file))
	}

	p := solution.NewProject(name, file).WithKind(kind)

	if err := g.Sln.Add(p); err != nil {
		return fmt.Errorf("failed to add project %q: %w", name, err)
	}

	if err := g.Sln.Save(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	fmt.Fprintf(g.Out, "Added: %s (%s)\n", p.Name, p.File)
	return nil
}
