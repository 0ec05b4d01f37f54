// Package deleter removes projects from a solution and wipes their
// directories from disk, collecting per-project failures instead of
// aborting the batch.
package deleter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSharedDirectory guards against deleting a project directory that
// is also the solution's directory: wiping it would take the solution
// file with it.
var ErrSharedDirectory = errors.New("solution and project share the same directory")

// Project is the view of a solution entry the deleter needs.
type Project interface {
	DisplayName() string
	ProjectFile() string
}

// Batch deletes a sequence of projects from one solution. Detach must
// remove the project from the solution model without touching disk.
// RemoveAll defaults to os.RemoveAll.
type Batch struct {
	SolutionFile string
	Detach       func(p Project) error
	RemoveAll    func(dir string) error
}

type Failure struct {
	Project Project
	Err     error
}

// Report aggregates per-project failures in the order they occurred.
// Critical is set when any failure is a genuine error rather than the
// shared-directory guard.
type Report struct {
	Failures []Failure
	Critical bool
}

func (r Report) Failed() bool {
	return len(r.Failures) > 0
}

// Lines formats one report line per failure.
func (r Report) Lines() []string {
	lines := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		lines[i] = fmt.Sprintf("'%s': %s", f.Project.DisplayName(), f.Err)
	}
	return lines
}

// Run processes every project in order. A project is always detached
// from the solution first; its directory is then deleted unless it is
// the solution's own directory. No failure stops the batch.
func (b *Batch) Run(projects []Project) Report {
	removeAll := b.RemoveAll
	if removeAll == nil {
		removeAll = os.RemoveAll
	}

	solutionDir := containerDir(b.SolutionFile)

	var report Report
	for _, p := range projects {
		if err := b.deleteOne(p, solutionDir, removeAll); err != nil {
			report.Failures = append(report.Failures, Failure{Project: p, Err: err})
			if !errors.Is(err, ErrSharedDirectory) {
				report.Critical = true
			}
		}
	}
	return report
}

func (b *Batch) deleteOne(p Project, solutionDir string, removeAll func(string) error) error {
	dir := containerDir(p.ProjectFile())

	// Detach before the guard: a project sharing the solution's
	// directory still leaves the solution, only its files survive.
	if err := b.Detach(p); err != nil {
		return err
	}

	if sameDir(dir, solutionDir) {
		return ErrSharedDirectory
	}

	return removeAll(dir)
}

// containerDir resolves the directory holding a file. Trailing
// separators on the input never change the result.
func containerDir(file string) string {
	trimmed := strings.TrimRight(file, `/\`)
	if trimmed == "" {
		return string(filepath.Separator)
	}
	return filepath.Dir(trimmed)
}

// sameDir compares directories case-insensitively, byte for byte
// otherwise.
func sameDir(a, b string) bool {
	return strings.EqualFold(a, b)
}
