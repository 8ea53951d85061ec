package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/asset_lite/internal/models"
)

func newProjectsRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "101"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "202"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "101", "version.txt"), []byte("1.4.2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "101", "data.json"), []byte(`{"title":"demo"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "303"), []byte("not a dir"), 0o644))
	return root
}

func TestProjectStore_List(t *testing.T) {
	s := NewProjectStore(newProjectsRoot(t))

	got, err := s.List()
	require.NoError(t, err)

	assert.ElementsMatch(t, []models.Project{
		{ID: "101", Version: "1.4.2"},
		{ID: "202", Version: "1.0.0"},
	}, got)
}

func TestProjectStore_ListMissingRoot(t *testing.T) {
	s := NewProjectStore(filepath.Join(t.TempDir(), "nope"))
	_, err := s.List()
	assert.Error(t, err)
}

func TestProjectStore_Content(t *testing.T) {
	root := newProjectsRoot(t)
	s := NewProjectStore(root)

	v, data, err := s.Content("101")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v)
	assert.JSONEq(t, `{"title":"demo"}`, string(data))

	v, data, err = s.Content("202")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
	assert.JSONEq(t, `{}`, string(data))

	_, _, err = s.Content("999")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(root, "202", "data.json"), []byte(`{broken`), 0o644))
	_, _, err = s.Content("202")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestProjectStore_Bump(t *testing.T) {
	root := newProjectsRoot(t)
	s := NewProjectStore(root)

	v, err := s.Bump("101")
	require.NoError(t, err)
	assert.Equal(t, "1.4.3", v)

	b, err := os.ReadFile(filepath.Join(root, "101", "version.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1.4.3", string(b))

	got, err := s.Version("101")
	require.NoError(t, err)
	assert.Equal(t, "1.4.3", got)

	_, err = s.Bump("assets")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.Version("../101")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjectStore_ReadsDoNotWriteDefaults(t *testing.T) {
	root := newProjectsRoot(t)
	s := NewProjectStore(root)

	_, err := s.List()
	require.NoError(t, err)
	v, err := s.Version("202")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)

	_, err = os.Stat(filepath.Join(root, "202", "version.txt"))
	assert.True(t, os.IsNotExist(err), "version.txt appears only after Bump")

	_, err = s.Bump("202")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "202", "version.txt"))
	assert.NoError(t, err)
}
