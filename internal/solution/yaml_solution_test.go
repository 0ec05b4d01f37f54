package solution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolution(t *testing.T) *YAMLSolution {
	t.Helper()
	sol, err := NewYAMLSolution(filepath.Join(t.TempDir(), "sln.yaml"))
	require.NoError(t, err)
	return sol
}

func addTestProject(t *testing.T, sol *YAMLSolution, name string) Project {
	t.Helper()
	file := writeProjectFile(t, t.TempDir(), "go.mod")
	p := NewProject(name, file).WithKind(KindGo)
	require.NoError(t, sol.Add(p))
	return p
}

func TestYAMLSolution_AddAndGet(t *testing.T) {
	sol := newTestSolution(t)
	p := addTestProject(t, sol, "app")

	got, err := sol.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.File, got.File)

	byFile, err := sol.GetByFile(p.File)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byFile.ID)
}

func TestYAMLSolution_AddRejectsDuplicateFile(t *testing.T) {
	sol := newTestSolution(t)
	p := addTestProject(t, sol, "app")

	dup := NewProject("copy", p.File)
	assert.ErrorIs(t, sol.Add(dup), ErrAlreadyExists)
	assert.Equal(t, 1, sol.Count())
}

func TestYAMLSolution_AddValidates(t *testing.T) {
	sol := newTestSolution(t)

	err := sol.Add(Project{ID: "x", Name: "", File: "/tmp/go.mod"})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, 0, sol.Count())
}

func TestYAMLSolution_Remove(t *testing.T) {
	t.Run("removes and clears file index", func(t *testing.T) {
		sol := newTestSolution(t)
		p := addTestProject(t, sol, "app")

		require.NoError(t, sol.Remove(p.ID))
		assert.Equal(t, 0, sol.Count())

		_, err := sol.Get(p.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = sol.GetByFile(p.File)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		sol := newTestSolution(t)
		assert.ErrorIs(t, sol.Remove("missing"), ErrNotFound)
	})
}

func TestYAMLSolution_ListIsSortedByName(t *testing.T) {
	sol := newTestSolution(t)
	addTestProject(t, sol, "zeta")
	addTestProject(t, sol, "Alpha")
	addTestProject(t, sol, "mid")

	list := sol.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "mid", list[1].Name)
	assert.Equal(t, "zeta", list[2].Name)
}

func TestYAMLSolution_Search(t *testing.T) {
	sol := newTestSolution(t)
	addTestProject(t, sol, "frontend")
	addTestProject(t, sol, "backend")

	t.Run("empty query returns all", func(t *testing.T) {
		assert.Len(t, sol.Search(""), 2)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := sol.Search("FRONT")
		require.Len(t, results, 1)
		assert.Equal(t, "frontend", results[0].Name)
	})

	t.Run("substring matches both", func(t *testing.T) {
		assert.Len(t, sol.Search("end"), 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, sol.Search("nothing"))
	})
}

func TestYAMLSolution_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sln.yaml")

	sol1, err := NewYAMLSolution(path)
	require.NoError(t, err)
	p := addTestProject(t, sol1, "persisted")
	require.NoError(t, sol1.Save())

	sol2, err := NewYAMLSolution(path)
	require.NoError(t, err)
	require.NoError(t, sol2.Load())

	assert.Equal(t, 1, sol2.Count())
	got, err := sol2.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.File, got.File)
	assert.Equal(t, p.Kind, got.Kind)
}

func TestYAMLSolution_SaveLeavesNoTempFile(t *testing.T) {
	sol := newTestSolution(t)
	addTestProject(t, sol, "app")
	require.NoError(t, sol.Save())

	_, err := os.Stat(sol.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestYAMLSolution_LoadMissingFileIsEmpty(t *testing.T) {
	sol := newTestSolution(t)
	require.NoError(t, sol.Load())
	assert.Equal(t, 0, sol.Count())
}

func TestYAMLSolution_LoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sln.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	sol, err := NewYAMLSolution(path)
	require.NoError(t, err)
	err = sol.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse solution file")
}
