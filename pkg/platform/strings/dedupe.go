// Package strings provides string list helpers for query parameters.
package strings

import (
	"strings"
)

// SplitDedupe flattens repeated and comma-separated values, trims whitespace,
// drops empties and duplicates, and lowercases when fold is true. Order of first
// appearance is preserved; a nil result means "no filter".
//
// Example:
//
//	SplitDedupe([]string{"invalid_state, not_found", "invalid_state", " "}, false)
//	// Returns: []string{"invalid_state", "not_found"}
func SplitDedupe(values []string, fold bool) []string {
	var result []string
	seen := make(map[string]struct{})

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if fold {
				part = strings.ToLower(part)
			}
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			result = append(result, part)
		}
	}

	return result
}
