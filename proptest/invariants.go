package proptest

import (
	"sln/internal/solution"

	"pgregory.net/rapid"
)

// verifyStructuralInvariants checks what must hold after any sequence
// of operations: the count matches the listing, project files are
// unique, and every entry has an identity.
func verifyStructuralInvariants(t *rapid.T, sol solution.Solution) {
	count := sol.Count()
	list := sol.List()

	if count != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", count, len(list))
	}

	filesSeen := make(map[string]bool)
	for _, p := range list {
		if filesSeen[p.File] {
			t.Fatalf("duplicate project file %q in List()", p.File)
		}
		filesSeen[p.File] = true

		if p.ID == "" {
			t.Fatalf("project %q has empty ID", p.Name)
		}
		if p.Name == "" {
			t.Fatalf("project %q has empty name", p.ID)
		}
	}
}
