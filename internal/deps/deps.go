// Package deps verifies the external binaries datefix shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency datefix relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Exiftool returns the requirement for the embedded-metadata tool.
func Exiftool(binary string) Requirement {
	return Requirement{
		Name:        "ExifTool",
		Command:     binary,
		Description: "Reads and writes embedded capture dates",
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Verify checks the requirements and returns an error describing the first
// missing non-optional dependency.
func Verify(requirements []Requirement) error {
	for _, status := range CheckBinaries(requirements) {
		if status.Available || status.Optional {
			continue
		}
		return fmt.Errorf("dependency %s unavailable: %s", status.Name, status.Detail)
	}
	return nil
}
