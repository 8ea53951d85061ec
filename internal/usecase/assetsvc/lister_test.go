package assetsvc

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/asset_lite/internal/models"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
}

func byPath(files []models.FileEntry) map[string]models.FileEntry {
	out := make(map[string]models.FileEntry, len(files))
	for _, f := range files {
		out[f.Path] = f
	}
	return out
}

func TestList_RecursiveWithExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")
	writeFile(t, root, "version.json", `{"version":"1.0.0"}`)
	writeFile(t, root, "css/site.css", "body{}")
	writeFile(t, root, "img/icons/logo.PNG", "png")
	writeFile(t, root, "img/icons/version.json", "{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	got, err := List(root, map[string]struct{}{"version.json": {}})
	require.NoError(t, err)
	assert.Empty(t, got.Skipped)

	files := byPath(got.Files)
	require.Len(t, files, 3)
	assert.Len(t, got.Files, 3, "one entry per file")

	a := files["a.txt"]
	assert.Equal(t, "a.txt", a.Name)
	assert.Equal(t, int64(5), a.Size)
	assert.Equal(t, "txt", a.Type)
	assert.False(t, a.LastModified.IsZero())

	assert.Equal(t, "site.css", files["css/site.css"].Name)
	assert.Equal(t, "PNG", files["img/icons/logo.PNG"].Type)

	for _, f := range got.Files {
		assert.NotEqual(t, "version.json", f.Name)
	}
}

func TestList_NoExcludeKeepsEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "version.json", "{}")
	writeFile(t, root, "Makefile", "all:")

	got, err := List(root, nil)
	require.NoError(t, err)

	files := byPath(got.Files)
	assert.Contains(t, files, "version.json")
	assert.Equal(t, "", files["Makefile"].Type)
}

func TestList_DeepTree(t *testing.T) {
	root := t.TempDir()
	rel := ""
	for i := 0; i < 200; i++ {
		rel = filepath.Join(rel, "d")
	}
	writeFile(t, root, filepath.ToSlash(filepath.Join(rel, "leaf.bin")), "x")

	got, err := List(root, nil)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "leaf.bin", got.Files[0].Name)
}

func TestList_MissingRootFails(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestList_UnreadableSubdirIsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	writeFile(t, root, "ok.txt", "ok")
	writeFile(t, root, "locked/secret.txt", "s")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	got, err := List(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"locked"}, got.Skipped)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "ok.txt", got.Files[0].Path)
}

func TestList_BrokenSymlinkIsLoggedAndSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, root, "ok.txt", "ok")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.txt"), filepath.Join(root, "dangling.txt")))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	got, err := List(root, nil)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "ok.txt", got.Files[0].Path)
	assert.Contains(t, buf.String(), "skip entry=dangling.txt")
}

func TestList_SymlinksFollowFilesNotDirs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, root, "real/inner.txt", "abc")
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "inner.txt"), filepath.Join(root, "alias.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "loop")))

	got, err := List(root, nil)
	require.NoError(t, err)

	files := byPath(got.Files)
	assert.Len(t, files, 2)
	assert.Equal(t, int64(3), files["alias.txt"].Size)
	assert.Contains(t, files, "real/inner.txt")
	assert.NotContains(t, files, "loop/inner.txt")
}
