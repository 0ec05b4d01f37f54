package main

import "fmt"

type RmCmd struct {
	Name string `arg:"" help:"Project name to remove from the solution" completion:"sln list -n"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	project, err := findProject(g.Sln, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if err := g.Sln.Remove(project.ID); err != nil {
		return fmt.Errorf("failed to remove project %q: %w", project.Name, err)
	}

	if err := g.Sln.Save(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	fmt.Fprintf(g.Out, "Removed: %s (files left on disk)\n", project.Name)
	return nil
}
