package adapters

import (
	"encoding/xml"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"colcon-ls/internal/ports"
	"colcon-ls/internal/types"
)

// PackageXMLAdapter parses package.xml manifests with a modtime cache so
// repeated lookups of the same file do not re-parse unchanged content.
type PackageXMLAdapter struct {
	mu    sync.Mutex
	cache map[string]packageXMLCacheEntry
}

func NewPackageXMLAdapter() *PackageXMLAdapter {
	return &PackageXMLAdapter{cache: map[string]packageXMLCacheEntry{}}
}

type packageXML struct {
	Name    string        `xml:"name"`
	Version string        `xml:"version"`
	Export  exportSection `xml:"export"`

	// REP-140 manifests declare their build tool here.
	BuildtoolDepend []simpleDepend `xml:"buildtool_depend"`
}

type exportSection struct {
	BuildType string `xml:"build_type"`
}

type simpleDepend struct {
	Value string `xml:",chardata"`
}

type packageXMLCacheEntry struct {
	modTime  time.Time
	manifest types.Manifest
}

func (a *PackageXMLAdapter) ParseManifest(path string) (types.Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.manifest, nil
	}
	a.mu.Unlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var pkg packageXML
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}

	manifest := types.Manifest{
		Name:            strings.TrimSpace(pkg.Name),
		Version:         strings.TrimSpace(pkg.Version),
		ExportBuildType: strings.TrimSpace(pkg.Export.BuildType),
	}
	for _, dep := range pkg.BuildtoolDepend {
		if value := strings.TrimSpace(dep.Value); value != "" {
			manifest.BuildtoolDeps = append(manifest.BuildtoolDeps, value)
		}
	}

	a.mu.Lock()
	a.cache[path] = packageXMLCacheEntry{modTime: info.ModTime(), manifest: manifest}
	a.mu.Unlock()
	return manifest, nil
}

var _ ports.ManifestPort = (*PackageXMLAdapter)(nil)
