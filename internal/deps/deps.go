package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement names an external binary and what the audio tools use it for.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status is the outcome of resolving a Requirement. Command holds the
// resolved path when the binary was found.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Check resolves a single requirement against PATH. Commands containing a
// path separator are checked as given.
func Check(req Requirement) Status {
	status := Status{
		Name:        req.Name,
		Command:     strings.TrimSpace(req.Command),
		Description: strings.TrimSpace(req.Description),
	}
	if status.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	resolved, err := exec.LookPath(status.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		return status
	}
	status.Command = resolved
	status.Available = true
	return status
}

// CheckBinaries reports availability for each requirement, in order.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, len(requirements))
	for i, req := range requirements {
		results[i] = Check(req)
	}
	return results
}
