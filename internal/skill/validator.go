package skill

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports skill metadata that violates the SKILL.md format
// rules. The message joins every violation with "; ".
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// namePattern allows lowercase alphanumerics separated by single hyphens,
// with no leading, trailing, or consecutive hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const (
	maxNameLength          = 64
	maxDescriptionLength   = 1024
	maxCompatibilityLength = 500
)

// ValidateMetadata checks metadata against the format limits and returns
// every violation found. An empty slice means the metadata is valid.
func ValidateMetadata(meta Metadata) []string {
	var problems []string

	if !namePattern.MatchString(meta.Name) {
		problems = append(problems, fmt.Sprintf(
			"Invalid name '%s': must be lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens",
			meta.Name))
	}
	if len(meta.Name) > maxNameLength {
		problems = append(problems, fmt.Sprintf("Name too long: %d > %d characters", len(meta.Name), maxNameLength))
	}
	if len(meta.Description) > maxDescriptionLength {
		problems = append(problems, fmt.Sprintf("Description too long: %d > %d characters", len(meta.Description), maxDescriptionLength))
	}
	if meta.Compatibility != "" && len(meta.Compatibility) > maxCompatibilityLength {
		problems = append(problems, fmt.Sprintf("Compatibility too long: %d > %d characters", len(meta.Compatibility), maxCompatibilityLength))
	}

	return problems
}

// Validate checks metadata and returns a ValidationError listing every
// violation, or nil when the metadata is valid.
func Validate(meta Metadata) error {
	if problems := ValidateMetadata(meta); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
