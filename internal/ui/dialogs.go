package ui

import (
	"errors"
	"fmt"
	"sln/internal/solution"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func DialogTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Confirm asks an OK/Cancel question with OK focused. Aborting the
// prompt counts as Cancel.
func Confirm(message string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("OK").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(DialogTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// PickProjects lets the user select projects interactively when none
// were named on the command line.
func PickProjects(projects []solution.Project) ([]solution.Project, error) {
	options := make([]huh.Option[solution.Project], len(projects))
	for i, p := range projects {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Dir()), p)
	}

	var picked []solution.Project
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[solution.Project]().
				Title("Select projects to delete").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(DialogTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	return picked, nil
}
