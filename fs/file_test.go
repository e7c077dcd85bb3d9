package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Report Output
// Reports are staged next to their destination and moved into place on commit

func TestFile_WritesToStagingPath(t *testing.T) {
	t.Parallel()

	// Given a file targeting a report path
	path := filepath.Join(t.TempDir(), "catalogo.csv")
	f, err := fs.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Abort() })

	// When I write content
	_, err = f.Write([]byte("a,b\n"))
	require.NoError(t, err)

	// Then the staging file exists
	_, err = os.Stat(path + ".tmp")
	require.NoError(t, err, "staging file should exist before commit")

	// And the destination does not exist yet
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "destination should not exist until commit")
}

func TestFile_CommitReplacesDestination(t *testing.T) {
	t.Parallel()

	// Given an existing report
	path := filepath.Join(t.TempDir(), "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	// When I write and commit a new one
	f, err := fs.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("new"))
	require.NoError(t, err)
	err = f.Commit()

	// Then the destination has the new content
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// And the staging file is gone
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "staging file should be removed after commit")
}

func TestFile_AbortKeepsDestination(t *testing.T) {
	t.Parallel()

	// Given an existing report
	path := filepath.Join(t.TempDir(), "catalogo.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	// When I write and abort
	f, err := fs.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("partial"))
	require.NoError(t, err)
	err = f.Abort()

	// Then the destination is untouched
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	// And the staging file is removed
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "staging file should be removed after abort")
}

func TestFile_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "2026", "catalogo.csv")
	f, err := fs.Create(path)
	require.NoError(t, err)

	require.NoError(t, f.Commit())
	assert.Equal(t, path, f.Path())
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestReadReferenceNames(t *testing.T) {
	t.Parallel()

	t.Run("loads names from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "lista_minsa.txt")
		require.NoError(t, os.WriteFile(path, []byte("Paracetamol\nAmoxicilina\n\nsal\n"), 0644))

		names, err := fs.ReadReferenceNames(path)

		require.NoError(t, err)
		assert.Equal(t, 2, names.Len())
		assert.True(t, names.Matches("PARACETAMOL 500MG"))
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadReferenceNames(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, botica.ENOTFOUND, botica.ErrorCode(err))
	})
}
