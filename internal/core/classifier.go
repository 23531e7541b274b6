package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"colcon-ls/internal/ports"
	"colcon-ls/internal/types"
)

// ClassifierCore turns a candidate directory into a package record, or
// rejects it. All rules are local to buildTypeFor so a new toolchain
// family is added by extending the BuildType set and that one rule list.
type ClassifierCore struct {
	versions *versionCache
}

func NewClassifierCore() *ClassifierCore {
	return &ClassifierCore{versions: newVersionCache()}
}

func (c *ClassifierCore) Classify(ctx context.Context, cand types.Candidate) (types.PackageRecord, bool) {
	if !cand.HasManifest {
		return types.PackageRecord{}, false
	}
	name := cand.Manifest.Name
	if name == "" {
		name = filepath.Base(cand.Dir)
	}
	if cand.Manifest.Version != "" && !c.versions.wellFormed(cand.Manifest.Version) {
		log.Debug().
			Str("package", name).
			Str("version", cand.Manifest.Version).
			Msg("manifest version is not a well-formed version string")
	}
	return types.PackageRecord{
		Name:      name,
		Path:      cand.Dir,
		BuildType: buildTypeFor(cand),
	}, true
}

// buildTypeFor evaluates the classification rules in fixed priority
// order, first match wins:
//  1. an explicit <export><build_type> in the manifest
//  2. CMakeLists.txt plus ament evidence
//  3. CMakeLists.txt alone
//  4. setup.py plus ament evidence
//  5. nothing recognized
func buildTypeFor(cand types.Candidate) types.BuildType {
	if cand.Manifest.ExportBuildType != "" {
		return mapExportBuildType(cand.Manifest.ExportBuildType)
	}
	ament := hasAmentBuildtool(cand.Manifest)
	switch {
	case cand.HasCMakeLists && ament:
		return types.BuildTypeAmentCMake
	case cand.HasCMakeLists:
		return types.BuildTypeCMake
	case cand.HasSetupPy && ament:
		return types.BuildTypeAmentPython
	default:
		return types.BuildTypeUnknown
	}
}

func mapExportBuildType(value string) types.BuildType {
	mapped := types.BuildType(value)
	if mapped.Known() {
		return mapped
	}
	return types.BuildTypeUnknown
}

// hasAmentBuildtool reports whether the manifest declares an ament build
// tool, e.g. <buildtool_depend>ament_cmake</buildtool_depend>.
func hasAmentBuildtool(m types.Manifest) bool {
	for _, dep := range m.BuildtoolDeps {
		if strings.HasPrefix(dep, "ament_") {
			return true
		}
	}
	return false
}

var _ ports.ClassifierPort = (*ClassifierCore)(nil)
