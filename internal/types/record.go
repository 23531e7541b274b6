package types

// PackageRecord is the durable output unit of a discovery run.
type PackageRecord struct {
	// Name is the package identity from the manifest <name> element, or
	// the directory base name when the manifest is malformed or unnamed.
	Name string `yaml:"name"`
	// Path is the package directory, rooted at the base path as it was
	// given on the command line.
	Path string `yaml:"path"`
	// BuildType is the inferred toolchain classification.
	BuildType BuildType `yaml:"build_type"`
}

// Manifest holds the package.xml fields discovery cares about. Everything
// else in the manifest is ignored.
type Manifest struct {
	Name            string
	Version         string
	ExportBuildType string
	BuildtoolDeps   []string
}

// Candidate is the ephemeral view of a directory under classification:
// the facts the walker gathered about its immediate contents.
type Candidate struct {
	Dir           string
	HasManifest   bool
	Manifest      Manifest
	HasCMakeLists bool
	HasSetupPy    bool
}
