package main

import (
	"fmt"
	"os"
	"sln/cmd/sln/render"
	"sln/internal/config"
	"sln/internal/solution"
	"sln/internal/ui"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Add        AddCmd        `cmd:"" aliases:"a" help:"Add a project to the solution"`
	List       ListCmd       `cmd:"" aliases:"ls" help:"List projects in the solution"`
	Rm         RmCmd         `cmd:"" help:"Remove a project from the solution (keeps its files)"`
	Delete     DeleteCmd     `cmd:"" aliases:"del" help:"Remove projects from the solution and delete their directories"`
	Show       ShowCmd       `cmd:"" help:"Show project details"`
	Init       InitCmd       `cmd:"" help:"Create a solution file"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	SolutionPath string `name:"solution" short:"s" help:"Path to solution file"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	solutionPath := c.SolutionPath
	if solutionPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		solutionPath = config.FindSolutionFile(cwd)
	}

	sol, err := solution.NewYAMLSolution(solutionPath)
	if err != nil {
		return fmt.Errorf("failed to open solution: %w", err)
	}
	if err := sol.Load(); err != nil {
		return fmt.Errorf("failed to load solution: %w", err)
	}

	globals := &Globals{
		Sln:     sol,
		Out:     os.Stdout,
		Render:  render.NewLipglossRendererAuto(os.Stdout),
		Confirm: ui.Confirm,
		Pick:    ui.PickProjects,
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("sln"),
		kong.Description("Solution tracker: group projects and manage their lifecycle"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
