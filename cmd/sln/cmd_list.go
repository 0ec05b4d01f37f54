package main

import (
	"fmt"
	"sln/cmd/sln/render"
)

type ListCmd struct {
	Names bool `short:"n" help:"Output only project names (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	projects := g.Sln.List()

	if cmd.Names {
		for _, p := range projects {
			fmt.Fprintln(g.Out, p.Name)
		}
		return nil
	}

	view := render.ProjectListView{}
	for _, p := range projects {
		view.Items = append(view.Items, render.ProjectListItem{
			Name:      p.Name,
			Dir:       p.Dir(),
			Kind:      string(p.Kind),
			Timestamp: p.AddedAt,
		})
	}

	fmt.Fprint(g.Out, g.Render.RenderProjectList(view))
	return nil
}
