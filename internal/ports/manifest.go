package ports

import "colcon-ls/internal/types"

// ManifestPort parses package.xml manifests.
type ManifestPort interface {
	// ParseManifest reads the package.xml at path and extracts the fields
	// discovery needs: <name>, <version>, <export><build_type> and the
	// <buildtool_depend> entries. Malformed XML is an error; callers
	// degrade to the directory base name instead of failing the run.
	ParseManifest(path string) (types.Manifest, error)
}
