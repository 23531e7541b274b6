package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colcon-ls/internal/core"
	"colcon-ls/internal/types"
	"colcon-ls/tests/testutil"
)

func newTestWalker() *WalkerAdapter {
	return NewWalkerAdapter(NewDefaultPathPolicy(), NewPackageXMLAdapter(), core.NewClassifierCore())
}

func TestWalkerFindsPackages(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, "src", "pkg_a"),
		testutil.ManifestXML("pkg_a", "1.0.0", ""), "CMakeLists.txt")
	testutil.WritePackage(t, filepath.Join(root, "src", "pkg_b"),
		testutil.ManifestXML("pkg_b", "1.0.0", "", "ament_python"), "setup.py")

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pkg_a", records[0].Name)
	assert.Equal(t, filepath.Join(root, "src", "pkg_a"), records[0].Path)
	assert.Equal(t, types.BuildTypeCMake, records[0].BuildType)
	assert.Equal(t, "pkg_b", records[1].Name)
	assert.Equal(t, types.BuildTypeAmentPython, records[1].BuildType)
}

// Sibling packages must come out in lexical order: duplicate-name
// resolution keeps the earliest record, so emission order is contract.
func TestWalkerEmitsSiblingsInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, "zzz"),
		testutil.ManifestXML("dup", "2.0.0", ""), "CMakeLists.txt")
	testutil.WritePackage(t, filepath.Join(root, "aaa"),
		testutil.ManifestXML("dup", "1.0.0", ""), "CMakeLists.txt")

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, filepath.Join(root, "aaa"), records[0].Path)
	assert.Equal(t, filepath.Join(root, "zzz"), records[1].Path)
}

func TestWalkerSkipsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, "pkg"),
		testutil.ManifestXML("pkg", "1.0.0", ""), "CMakeLists.txt")
	sealed := filepath.Join(root, "sealed")
	require.NoError(t, os.MkdirAll(filepath.Join(sealed, "inner"), 0o755))
	require.NoError(t, os.Chmod(sealed, 0o000))
	t.Cleanup(func() { _ = os.Chmod(sealed, 0o755) })

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pkg", records[0].Name)
}

func TestWalkerDoesNotDescendIntoPackages(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "outer")
	testutil.WritePackage(t, outer, testutil.ManifestXML("outer", "1.0.0", ""), "CMakeLists.txt")
	testutil.WritePackage(t, filepath.Join(outer, "nested"),
		testutil.ManifestXML("nested", "1.0.0", ""), "CMakeLists.txt")

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "outer", records[0].Name)
}

func TestWalkerHonorsHardIgnoreMarkers(t *testing.T) {
	for _, marker := range []string{"COLCON_IGNORE", "CATKIN_IGNORE", "AMENT_IGNORE"} {
		t.Run(marker, func(t *testing.T) {
			root := t.TempDir()
			ignored := filepath.Join(root, "ignored")
			testutil.WriteMarkers(t, ignored, marker)
			testutil.WritePackage(t, filepath.Join(ignored, "pkg"),
				testutil.ManifestXML("pkg", "1.0.0", ""), "CMakeLists.txt")
			testutil.WritePackage(t, filepath.Join(root, "kept"),
				testutil.ManifestXML("kept", "1.0.0", ""), "CMakeLists.txt")

			records, err := newTestWalker().Walk(t.Context(), root, true)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "kept", records[0].Name)
		})
	}
}

func TestWalkerContainerMarkerStillRecurses(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	// The container directory carries its own manifest; the marker keeps
	// it from becoming a package while its children are still found.
	testutil.WritePackage(t, src, testutil.ManifestXML("container", "1.0.0", ""),
		"CMakeLists.txt", "COLCON_CONTAINER")
	testutil.WritePackage(t, filepath.Join(src, "pkg"),
		testutil.ManifestXML("pkg", "1.0.0", ""), "CMakeLists.txt")

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pkg", records[0].Name)
}

func TestWalkerSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, ".hidden", "pkg"),
		testutil.ManifestXML("pkg", "1.0.0", ""), "CMakeLists.txt")
	testutil.WritePackage(t, filepath.Join(root, ".git", "pkg"),
		testutil.ManifestXML("vcs", "1.0.0", ""), "CMakeLists.txt")

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWalkerNonRecursiveChecksDirectChildrenOnly(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, "direct"),
		testutil.ManifestXML("direct", "1.0.0", ""), "CMakeLists.txt")
	testutil.WritePackage(t, filepath.Join(root, "deeper", "pkg"),
		testutil.ManifestXML("deep", "1.0.0", ""), "CMakeLists.txt")

	records, err := newTestWalker().Walk(t.Context(), root, false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "direct", records[0].Name)
}

func TestWalkerMalformedManifestFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "broken_pkg")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.xml"), []byte("<package><name>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), nil, 0o644))

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "broken_pkg", records[0].Name)
	assert.Equal(t, types.BuildTypeCMake, records[0].BuildType)
}

func TestWalkerMissingBasePathErrors(t *testing.T) {
	_, err := newTestWalker().Walk(t.Context(), "/nonexistent/path/that/does/not/exist", true)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWalkerBasePathIsFileErrors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "not_a_dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := newTestWalker().Walk(t.Context(), file, true)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWalkerEmptyBasePathYieldsNoRecords(t *testing.T) {
	records, err := newTestWalker().Walk(t.Context(), t.TempDir(), true)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWalkerSymlinkLoopTerminates(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackage(t, filepath.Join(root, "pkg"),
		testutil.ManifestXML("pkg", "1.0.0", ""), "CMakeLists.txt")
	if err := os.Symlink(root, filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	records, err := newTestWalker().Walk(t.Context(), root, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pkg", records[0].Name)
}
