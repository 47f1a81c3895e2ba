package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, err := m.Get("pos")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set("pos", `{"x":50,"y":50}`))
	v, err := m.Get("pos")
	require.NoError(t, err)
	assert.Equal(t, `{"x":50,"y":50}`, v)

	require.NoError(t, m.Set("pos", "replaced"))
	v, err = m.Get("pos")
	require.NoError(t, err)
	assert.Equal(t, "replaced", v)

	require.NoError(t, m.Remove("pos"))
	_, err = m.Get("pos")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is fine.
	require.NoError(t, m.Remove("pos"))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.Get("pos")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.Set("pos", `{"x":12.5,"y":80}`))

	// A fresh open must see the value written by the first store.
	g, err := OpenFile(path)
	require.NoError(t, err)
	v, err := g.Get("pos")
	require.NoError(t, err)
	assert.Equal(t, `{"x":12.5,"y":80}`, v)
}

func TestFileRemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("pos", "v"))
	require.NoError(t, f.Remove("pos"))

	g, err := OpenFile(path)
	require.NoError(t, err)
	_, err = g.Get("pos")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.Remove("never-set"))
}

func TestFileMissingIsEmpty(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	_, err = f.Get("anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileCorruptResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.Get("pos")
	assert.ErrorIs(t, err, ErrNotFound)

	// The store still works after recovering from the corrupt file.
	require.NoError(t, f.Set("pos", "fresh"))
	g, err := OpenFile(path)
	require.NoError(t, err)
	v, err := g.Get("pos")
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestFileCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "save.json")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("pos", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
