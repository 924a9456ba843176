package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p), 0o755))
	}
}

func names(t *testing.T, root string) []string {
	t.Helper()
	instances, err := Scan(root)
	require.NoError(t, err)
	result := make([]string, 0, len(instances))
	for _, inst := range instances {
		result = append(result, inst.Name)
	}
	return result
}

func TestScanStrictModeExcludesUnmarkedSiblings(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "A/logs", "A/plugins/old", "A/plugins/updates", "B")

	require.Equal(t, []string{"A"}, names(t, root))
}

func TestScanFallbackAcceptsAllDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "X", "Y")

	require.Equal(t, []string{"X", "Y"}, names(t, root))
}

func TestScanEitherMarkerIsSufficient(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "logs-only/logs", "plugins-only/plugins", "neither")

	require.Equal(t, []string{"logs-only", "plugins-only"}, names(t, root))
}

func TestScanIgnoresPlainFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "bot/logs")
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o644))

	require.Equal(t, []string{"bot"}, names(t, root))
}

func TestScanMarkerMustBeDirectory(t *testing.T) {
	t.Parallel()

	// "logs" exists but is a file, so the strict rule does not match and the
	// fallback keeps every directory.
	root := t.TempDir()
	mkdirs(t, root, "A", "B")
	require.NoError(t, os.WriteFile(filepath.Join(root, "A", "logs"), []byte("x"), 0o644))

	require.Equal(t, []string{"A", "B"}, names(t, root))
}

func TestScanSortsCaseInsensitively(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "beta/logs", "Alpha/logs", "gamma/logs")

	require.Equal(t, []string{"Alpha", "beta", "gamma"}, names(t, root))
}

func TestScanDoesNotRecurse(t *testing.T) {
	t.Parallel()

	// A nested bot two levels down must not be picked up.
	root := t.TempDir()
	mkdirs(t, root, "A/logs", "A/nested/logs")

	require.Equal(t, []string{"A"}, names(t, root))
}

func TestScanMissingRootReturnsError(t *testing.T) {
	t.Parallel()

	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestScanEmptyRootReturnsNoInstances(t *testing.T) {
	t.Parallel()

	instances, err := Scan(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, instances)
}
