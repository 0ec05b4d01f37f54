package proptest

import (
	"sln/internal/solution"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestSolutionAddRemoveRestoresCount(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewSolutionHarness(t, rt)
		h.AddProjects(minProjects, maxProjects)
		before := h.Solution.Count()

		p := h.MustAddProject()
		if h.Solution.Count() != before+1 {
			rt.Fatalf("count after add: got %d, want %d", h.Solution.Count(), before+1)
		}

		if err := h.Solution.Remove(p.ID); err != nil {
			rt.Fatalf("remove failed: %v", err)
		}
		if h.Solution.Count() != before {
			rt.Fatalf("count after remove: got %d, want %d", h.Solution.Count(), before)
		}

		verifyStructuralInvariants(rt, h.Solution)
	})
}

func TestSolutionGetByFileConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewSolutionHarness(t, rt)
		h.AddProjects(typicalMinProjects, typicalMaxProjects)

		for _, p := range h.Solution.List() {
			got, err := h.Solution.GetByFile(p.File)
			if err != nil {
				rt.Fatalf("GetByFile(%q) failed: %v", p.File, err)
			}
			assertProjectsEqual(rt, p, got)
		}
	})
}

func TestSolutionSearchIsSubsetOfList(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewSolutionHarness(t, rt)
		h.AddProjects(minProjects, maxProjects)

		query := shortQueryGen.Draw(rt, "query")
		results := h.Solution.Search(query)

		assertSubset(rt, results, h.Solution.List())
		assertNoDuplicateFiles(rt, results)

		for _, p := range results {
			lower := strings.ToLower(query)
			if !strings.Contains(strings.ToLower(p.Name), lower) &&
				!strings.Contains(strings.ToLower(p.File), lower) {
				rt.Fatalf("result %q does not match query %q", p.Name, query)
			}
		}
	})
}

func TestSolutionListIsSortedByName(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewSolutionHarness(t, rt)
		h.AddProjects(minProjects, maxProjects)

		list := h.Solution.List()
		for i := 0; i < len(list)-1; i++ {
			a := strings.ToLower(list[i].Name)
			b := strings.ToLower(list[i+1].Name)
			if a > b {
				rt.Fatalf("list not sorted at %d: %q > %q", i, a, b)
			}
		}
	})
}

func TestSolutionDuplicateFileRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := NewSolutionHarness(t, rt)
		p := h.MustAddProject()

		dup := solution.NewProject("other-"+p.Name, p.File)
		if err := h.Solution.Add(dup); err == nil {
			rt.Fatalf("duplicate file %q was accepted", p.File)
		}
		verifyStructuralInvariants(rt, h.Solution)
	})
}
