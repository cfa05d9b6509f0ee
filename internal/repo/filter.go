package repo

import (
	"path/filepath"
	"strings"

	"nat/internal/domain"
)

// FilterByName filters tests by identifier pattern using wildcard matching.
// Supports patterns like "size.*" or "*OneClass"; a pattern without
// wildcards matches as a substring.
func FilterByName(tests []domain.Test, pattern string) []domain.Test {
	if pattern == "" {
		return tests
	}

	var filtered []domain.Test
	for _, test := range tests {
		if matchesPattern(test.Identifier, pattern) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

func matchesPattern(identifier, pattern string) bool {
	if matched, err := filepath.Match(pattern, identifier); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(identifier, pattern)
	}

	// Fall back to segment matching for patterns like "*Class*"
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(identifier, part) {
			return false
		}
	}
	return hasNonEmpty
}
