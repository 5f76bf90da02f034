// Package utils contains general helper functions used across dirtree.
package utils

import "strings"

// DeduplicateNames trims surrounding whitespace, drops empty values and removes
// duplicates while preserving order. The first occurrence of each name is kept.
func DeduplicateNames(names []string) []string {
	encounteredNames := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" {
			continue
		}
		if _, exists := encounteredNames[trimmedName]; exists {
			continue
		}
		encounteredNames[trimmedName] = struct{}{}
		result = append(result, trimmedName)
	}
	return result
}
