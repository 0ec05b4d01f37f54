package main

import "fmt"

type ShowCmd struct {
	Name string `arg:"" help:"Project name" completion:"sln list -n"`
	Path bool   `help:"Output only the project directory (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	project, err := findProject(g.Sln, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if cmd.Path {
		fmt.Fprintln(g.Out, project.Dir())
		return nil
	}

	fmt.Fprintf(g.Out, "Name:   %s\n", project.Name)
	fmt.Fprintf(g.Out, "File:   %s\n", project.File)
	if project.Kind != "" {
		fmt.Fprintf(g.Out, "Kind:   %s\n", project.Kind)
	}
	return nil
}
