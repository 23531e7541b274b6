// Package shared provides common utility functions used across multiple
// packages in the colcon-ls codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// PreprocessPaths trims and deduplicates caller-supplied paths while
// preserving their order and their spelling. Two spellings of the same
// directory (through symlinks or relative segments) count as duplicates,
// compared by canonical path, and the first spelling given is the one
// kept so output paths stay rooted the way the caller wrote them.
func PreprocessPaths(raw []string) []string {
	seen := map[string]struct{}{}
	var unique []string
	for _, path := range raw {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		key := canonicalKey(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, trimmed)
	}
	return unique
}

func canonicalKey(path string) string {
	if canon, err := filepath.EvalSymlinks(path); err == nil {
		path = canon
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
