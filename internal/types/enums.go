package types

// BuildType classifies the toolchain of a discovered package. The set is
// closed: classification maps everything else onto BuildTypeUnknown.
type BuildType string

const (
	BuildTypeAmentCMake  BuildType = "ament_cmake"
	BuildTypeCMake       BuildType = "cmake"
	BuildTypeAmentPython BuildType = "ament_python"
	BuildTypeUnknown     BuildType = "unknown"
)

// Known reports whether b is one of the recognized build types.
func (b BuildType) Known() bool {
	switch b {
	case BuildTypeAmentCMake, BuildTypeCMake, BuildTypeAmentPython, BuildTypeUnknown:
		return true
	default:
		return false
	}
}

// OutputMode selects how discovered records are rendered.
type OutputMode string

const (
	OutputModeLines OutputMode = "lines"
	OutputModeNames OutputMode = "names"
	OutputModePaths OutputMode = "paths"
	OutputModeYAML  OutputMode = "yaml"
)
