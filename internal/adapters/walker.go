package adapters

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"colcon-ls/internal/ports"
	"colcon-ls/internal/types"
)

// hardIgnoreMarkers exclude a directory and its whole subtree. The set
// matches the sentinels honored by colcon, catkin and ament.
var hardIgnoreMarkers = [...]string{"COLCON_IGNORE", "CATKIN_IGNORE", "AMENT_IGNORE"}

// containerMarker excludes a directory from candidacy but still allows
// descending into its children.
const containerMarker = "COLCON_CONTAINER"

const manifestFile = "package.xml"

// WalkerAdapter discovers package roots under a base path. The traversal
// uses an explicit work stack instead of call-stack recursion, and a
// directory classified as a package is never descended into.
type WalkerAdapter struct {
	Policy     ports.PathPolicy
	Manifest   ports.ManifestPort
	Classifier ports.ClassifierPort
}

func NewWalkerAdapter(policy ports.PathPolicy, manifest ports.ManifestPort, classifier ports.ClassifierPort) *WalkerAdapter {
	return &WalkerAdapter{Policy: policy, Manifest: manifest, Classifier: classifier}
}

func (a *WalkerAdapter) Walk(ctx context.Context, basePath string, recurse bool) ([]types.PackageRecord, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("base path does not exist: " + basePath).
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("base path is not a directory: " + basePath)
	}

	// One visited set per walk, keyed by canonical path, so each real
	// directory is entered at most once even through symlinks.
	visited := map[string]struct{}{}
	if canon, err := filepath.EvalSymlinks(basePath); err == nil {
		visited[canon] = struct{}{}
	}

	var records []types.PackageRecord
	stack := []string{basePath}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn().Str("path", dir).Err(err).Msg("skipping unreadable directory")
			continue
		}
		// os.ReadDir sorts by name; classify in that order so sibling
		// records keep lexical discovery order for the dedup policy.
		var pending []string
		for _, entry := range entries {
			child, ok := a.admit(dir, entry, visited)
			if !ok {
				continue
			}
			rec, isPackage := a.examine(ctx, child)
			switch {
			case isPackage:
				records = append(records, rec)
			case recurse:
				pending = append(pending, child)
			}
		}
		// Push in reverse so the stack pops lexically, keeping traversal
		// order stable across runs.
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}
	return records, nil
}

// admit applies the path policy, the ignore markers and the symlink guard
// to one directory entry. It returns the joined child path and whether the
// walker should look at it at all.
func (a *WalkerAdapter) admit(dir string, entry fs.DirEntry, visited map[string]struct{}) (string, bool) {
	name := entry.Name()
	if a.Policy.Hidden(name) || a.Policy.Skip(name) {
		return "", false
	}
	child := filepath.Join(dir, name)
	if !entry.IsDir() {
		if entry.Type()&fs.ModeSymlink == 0 {
			return "", false
		}
		info, err := os.Stat(child)
		if err != nil || !info.IsDir() {
			return "", false
		}
	}
	if canon, err := filepath.EvalSymlinks(child); err == nil {
		if _, seen := visited[canon]; seen {
			return "", false
		}
		visited[canon] = struct{}{}
	}
	if hasAnyMarker(child, hardIgnoreMarkers[:]) {
		return "", false
	}
	return child, true
}

// examine classifies one admitted directory. Container-marked directories
// and directories without a manifest are not packages and fall through to
// recursion.
func (a *WalkerAdapter) examine(ctx context.Context, dir string) (types.PackageRecord, bool) {
	if fileExists(filepath.Join(dir, containerMarker)) {
		return types.PackageRecord{}, false
	}
	cand := types.Candidate{Dir: dir}
	manifestPath := filepath.Join(dir, manifestFile)
	if fileExists(manifestPath) {
		cand.HasManifest = true
		manifest, err := a.Manifest.ParseManifest(manifestPath)
		if err != nil {
			log.Warn().Str("path", manifestPath).Err(err).
				Msg("malformed package.xml, falling back to directory name")
			manifest = types.Manifest{}
		}
		cand.Manifest = manifest
		cand.HasCMakeLists = fileExists(filepath.Join(dir, "CMakeLists.txt"))
		cand.HasSetupPy = fileExists(filepath.Join(dir, "setup.py"))
	}
	return a.Classifier.Classify(ctx, cand)
}

func hasAnyMarker(dir string, markers []string) bool {
	for _, marker := range markers {
		if fileExists(filepath.Join(dir, marker)) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ ports.DiscoveryPort = (*WalkerAdapter)(nil)
