package ports

import (
	"context"

	"colcon-ls/internal/types"
)

// DiscoveryPort walks one base path and returns package records in
// traversal order. Unreadable directories are skipped with a warning;
// a missing base path is an error.
type DiscoveryPort interface {
	Walk(ctx context.Context, basePath string, recurse bool) ([]types.PackageRecord, error)
}

// ClassifierPort decides whether a candidate directory is a package root.
type ClassifierPort interface {
	Classify(ctx context.Context, candidate types.Candidate) (types.PackageRecord, bool)
}

// PathPolicy captures the platform naming conventions the walker honors.
// It is injected so the engine carries no inline platform special cases.
type PathPolicy interface {
	// Hidden reports whether an entry name is hidden by convention.
	Hidden(name string) bool
	// Skip reports whether an entry is tooling metadata that is never a
	// package and never worth descending into.
	Skip(name string) bool
}
