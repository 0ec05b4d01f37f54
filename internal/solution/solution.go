package solution

import "errors"

var (
	ErrNotFound      = errors.New("project not found")
	ErrAlreadyExists = errors.New("project already in solution")
)

// Solution is the in-memory model of a solution file: a named set of
// projects, each backed by a project file somewhere on disk.
type Solution interface {
	Add(p Project) error
	Get(id string) (Project, error)
	GetByFile(file string) (Project, error)
	Remove(id string) error
	List() []Project
	Search(query string) []Project
	Count() int
	Path() string
	Save() error
	Load() error
}
