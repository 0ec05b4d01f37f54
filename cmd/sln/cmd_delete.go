package main

import (
	"fmt"
	"sln/internal/deleter"
	"sln/internal/solution"
	"sln/internal/ui"
)

type DeleteCmd struct {
	Names []string `arg:"" optional:"" help:"Projects to delete (interactive selection when omitted)" completion:"sln list -n"`
	Yes   bool     `short:"y" help:"Skip the confirmation prompt"`
}

func (cmd *DeleteCmd) Run(g *Globals) error {
	selected, err := cmd.selectProjects(g)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}
	if len(selected) == 0 {
		return nil
	}

	projects := make([]deleter.Project, len(selected))
	for i, p := range selected {
		projects[i] = p
	}

	if !cmd.Yes {
		ok, err := g.Confirm(deleter.ConfirmMessage(projects))
		if err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if !ok {
			fmt.Fprintln(g.Out, "Cancelled.")
			return nil
		}
	}

	batch := deleter.Batch{
		SolutionFile: g.Sln.Path(),
		Detach: func(p deleter.Project) error {
			target, err := g.Sln.GetByFile(p.ProjectFile())
			if err != nil {
				return err
			}
			return g.Sln.Remove(target.ID)
		},
	}
	report := batch.Run(projects)

	// Detached projects stay detached even when their directory
	// deletion failed, so the solution file is saved regardless.
	if err := g.Sln.Save(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	if report.Failed() {
		fmt.Fprint(g.Out, ui.RenderReport(report.Lines(), report.Critical))
	}
	return nil
}

func (cmd *DeleteCmd) selectProjects(g *Globals) ([]solution.Project, error) {
	if len(cmd.Names) > 0 {
		selected := make([]solution.Project, 0, len(cmd.Names))
		seen := make(map[string]bool)
		for _, name := range cmd.Names {
			p, err := findProject(g.Sln, name)
			if err != nil {
				return nil, err
			}
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			selected = append(selected, p)
		}
		return selected, nil
	}

	all := g.Sln.List()
	if len(all) == 0 {
		fmt.Fprintln(g.Out, "No projects in solution.")
		return nil, nil
	}
	return g.Pick(all)
}
