package splitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "00_build", FileName(0, "build"))
	assert.Equal(t, "07_run", FileName(7, "run"))
	assert.Equal(t, "99_stop", FileName(99, "stop"))
	assert.Equal(t, "100_stop", FileName(100, "stop"))
	assert.Equal(t, "1234_x", FileName(1234, "x"))
}

func TestWriter_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	w := NewWriter(dir)

	require.NoError(t, w.EnsureDir())
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	// Existing directory is fine.
	require.NoError(t, w.EnsureDir())
}

func TestWriter_EnsureDirBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := NewWriter(filepath.Join(blocker, "out")).EnsureDir()
	var dirErr *DirectoryCreateError
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, filepath.Join(blocker, "out"), dirErr.Dir)
}

func TestWriter_WriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	existing := filepath.Join(dir, "00_build")
	require.NoError(t, os.WriteFile(existing, []byte("a much longer previous content"), 0o644))

	f := Fragment{Index: 0, Text: "<pjd><command>build</command></pjd>"}
	path, err := w.Write(f, "build")
	require.NoError(t, err)
	assert.Equal(t, existing, path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Text, string(got))
}

func TestWriter_WriteError(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.Write(Fragment{Index: 3, Text: "<pjd></pjd>"}, "missing/dir")
	var writeErr *FileWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, path, writeErr.Path)
	assert.Equal(t, filepath.Join(w.Dir(), "03_missing", "dir"), path)
}
