// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ManifestXML renders a minimal package.xml with the given fields. Empty
// fields are omitted so malformed-manifest cases can be built by hand.
func ManifestXML(name, version, exportBuildType string, buildtools ...string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n<package format=\"3\">\n")
	if name != "" {
		fmt.Fprintf(&b, "  <name>%s</name>\n", name)
	}
	if version != "" {
		fmt.Fprintf(&b, "  <version>%s</version>\n", version)
	}
	for _, tool := range buildtools {
		fmt.Fprintf(&b, "  <buildtool_depend>%s</buildtool_depend>\n", tool)
	}
	if exportBuildType != "" {
		fmt.Fprintf(&b, "  <export>\n    <build_type>%s</build_type>\n  </export>\n", exportBuildType)
	}
	b.WriteString("</package>\n")
	return b.String()
}

// WritePackage creates dir with the given package.xml content plus any
// extra empty marker files (CMakeLists.txt, setup.py, ignore sentinels).
func WritePackage(t *testing.T, dir string, manifest string, extras ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.xml"), []byte(manifest), 0o644))
	WriteMarkers(t, dir, extras...)
}

// WriteMarkers creates dir if needed and drops empty files into it.
func WriteMarkers(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}
