package main

import (
	"io"
	"sln/cmd/sln/render"
	"sln/internal/solution"
)

type Globals struct {
	Sln    solution.Solution
	Out    io.Writer
	Render render.Renderer

	// Confirm and Pick stand in for the interactive prompts so tests
	// can script user responses.
	Confirm func(message string) (bool, error)
	Pick    func(projects []solution.Project) ([]solution.Project, error)
}
