package proptest

import (
	"sln/internal/solution"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertProjectsEqual(t *rapid.T, expected, actual solution.Project) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateApproxTime(0),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []solution.Project) {
	t.Helper()
	superIDs := make(map[string]bool)
	for _, p := range superset {
		superIDs[p.ID] = true
	}
	for _, p := range subset {
		if !superIDs[p.ID] {
			t.Fatalf("subset contains ID %s not in superset", p.ID)
		}
	}
}

func assertNoDuplicateFiles(t *rapid.T, projects []solution.Project) {
	t.Helper()
	files := make(map[string]bool)
	for _, p := range projects {
		if files[p.File] {
			t.Fatalf("duplicate project file found: %s", p.File)
		}
		files[p.File] = true
	}
}
