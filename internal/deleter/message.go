package deleter

import (
	"fmt"
	"strings"
)

// ConfirmMessage builds the prompt shown before a batch runs. One
// project gets the singular form; several get their quoted names
// joined in the order given.
func ConfirmMessage(projects []Project) string {
	if len(projects) == 1 {
		return fmt.Sprintf("Are you sure you want to delete the project '%s' and its directory from disk?",
			projects[0].DisplayName())
	}

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = fmt.Sprintf("'%s'", p.DisplayName())
	}
	return fmt.Sprintf("Are you sure you want to delete the projects %s and their directories from disk?",
		strings.Join(names, ", "))
}
