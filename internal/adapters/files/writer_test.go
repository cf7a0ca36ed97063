package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirWriter_WriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	w := NewDirWriter(dir)

	path, err := w.WriteFile("turmas.csv", []byte("CLASS\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "turmas.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CLASS\n", string(data))
}

func TestDirWriter_Overwrites(t *testing.T) {
	w := NewDirWriter(t.TempDir())

	_, err := w.WriteFile("a.csv", []byte("first version"))
	require.NoError(t, err)
	path, err := w.WriteFile("a.csv", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(w.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestDirWriter_RejectsPaths(t *testing.T) {
	w := NewDirWriter(t.TempDir())

	for _, name := range []string{"", "../escape.csv", "sub/file.csv"} {
		_, err := w.WriteFile(name, nil)
		assert.Error(t, err, name)
	}
}
