package main

import (
	"errors"
	"fmt"
	"io"
	"sln/internal/solution"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []solution.Project
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple projects match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple projects match. Please be more specific:")
	for _, p := range e.Matches {
		fmt.Fprintf(w, "  - %s (%s)\n", p.Name, p.Dir())
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

func findProject(sol solution.Solution, query string) (solution.Project, error) {
	projects := sol.Search(query)
	if len(projects) == 0 {
		return solution.Project{}, fmt.Errorf("no project found matching: %s", query)
	}
	if len(projects) > 1 {
		// An exact name match wins over partial ones.
		var exact []solution.Project
		for _, p := range projects {
			if p.Name == query {
				exact = append(exact, p)
			}
		}
		if len(exact) == 1 {
			return exact[0], nil
		}
		return solution.Project{}, &AmbiguousMatchError{Query: query, Matches: projects}
	}
	return projects[0], nil
}
