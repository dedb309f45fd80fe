// pkg/stage/archive_test.go
package stage_test

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/sigkit/extbuild/pkg/stage"
)

// readArchive decodes a tar.xz artifact into a name-to-content map. Directory
// entries map to an empty string.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	xzReader, err := xz.NewReader(f)
	require.NoError(t, err)

	entries := map[string]string{}
	tarReader := tar.NewReader(xzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		var content []byte
		if header.Typeflag == tar.TypeReg {
			content, err = io.ReadAll(tarReader)
			require.NoError(t, err)
		}
		entries[header.Name] = string(content)
	}
	return entries
}

func TestPack(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usr", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "usr", "lib", "libcore.so"), []byte("core"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "manifest.yaml"), []byte("name: core\n"), 0o644))

	dest := filepath.Join(t.TempDir(), "artifact.tar.xz")
	require.NoError(t, stage.Pack(root, dest))

	entries := readArchive(t, dest)
	assert.Equal(t, "core", entries["usr/lib/libcore.so"])
	assert.Equal(t, "name: core\n", entries["manifest.yaml"])
	assert.Contains(t, entries, "usr/")
	assert.Contains(t, entries, "usr/lib/")
}

func TestPack_MissingRoot(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "artifact.tar.xz")

	err := stage.Pack(filepath.Join(t.TempDir(), "absent"), dest)

	assert.Error(t, err)
}

func TestPack_RootNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := stage.Pack(file, filepath.Join(dir, "artifact.tar.xz"))

	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	sum, err := stage.Checksum(path)

	require.NoError(t, err)
	assert.Len(t, sum, 64)

	again, err := stage.Checksum(path)
	require.NoError(t, err)
	assert.Equal(t, sum, again)
}

func TestChecksum_DiffersPerContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0o644))

	sumA, err := stage.Checksum(a)
	require.NoError(t, err)
	sumB, err := stage.Checksum(b)
	require.NoError(t, err)

	assert.NotEqual(t, sumA, sumB)
}

func TestChecksum_MissingFile(t *testing.T) {
	_, err := stage.Checksum(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
