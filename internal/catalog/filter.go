package catalog

import (
	"strings"

	"toolctl/internal/workspace"
)

// FilterProviders narrows providers to those whose name or skill identifier
// contains query, case-insensitively. An empty query returns the input
// slice as-is.
func FilterProviders(providers []workspace.SkillProvider, query string) []workspace.SkillProvider {
	if query == "" {
		return providers
	}
	q := strings.ToLower(query)
	filtered := make([]workspace.SkillProvider, 0, len(providers))
	for _, p := range providers {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.SkillIdentifier), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
