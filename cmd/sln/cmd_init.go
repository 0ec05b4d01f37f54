package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sln/internal/config"
	"sln/internal/solution"
)

type InitCmd struct {
	Dir string `arg:"" optional:"" help:"Directory for the solution file (defaults to the current directory)"`
}

func (cmd *InitCmd) Run(g *Globals) error {
	dir := cmd.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = cwd
	}

	dir, err := config.ExpandPath(dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	path := filepath.Join(dir, config.SolutionFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("solution file already exists: %s", path)
	}

	sol, err := solution.NewYAMLSolution(path)
	if err != nil {
		return fmt.Errorf("failed to create solution: %w", err)
	}
	if err := sol.Save(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	fmt.Fprintf(g.Out, "Created: %s\n", path)
	return nil
}
