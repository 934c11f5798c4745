package btree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")

	tree := newTestTree(t, 2)
	require.NoError(t, tree.Insert(1, "a", 10))
	require.NoError(t, tree.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"snap.json", "snap.json.crc32"}, names)
}

func TestLoad_ChecksumMismatchYieldsEmptyTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")

	tree := newTestTree(t, 2)
	require.NoError(t, tree.Insert(1, "a", 10))
	require.NoError(t, tree.Save(path))

	require.NoError(t, os.WriteFile(crcPath(path), []byte("deadbeef"), 0o644))

	other := newTestTree(t, 2)
	require.NoError(t, other.Load(path))
	assert.Empty(t, other.Dump())
}

func TestSave_EmptyTreeSerializesAsNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")

	tree := newTestTree(t, 2)
	require.NoError(t, tree.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestSave_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snap.json")

	tree := newTestTree(t, 2)
	require.NoError(t, tree.Insert(1, "a", 10))
	require.NoError(t, tree.Save(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWithSnapshot_PersistsAfterEveryMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")

	tree, err := New(2, WithSnapshot(path))
	require.NoError(t, err)

	require.NoError(t, tree.Insert(1, "a", 10))

	other := newTestTree(t, 2)
	require.NoError(t, other.Load(path))
	_, found := other.Search(1)
	assert.True(t, found, "snapshot should reflect the insert without an explicit Save call")
}
