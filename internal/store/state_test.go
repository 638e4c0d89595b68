package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFile_GetMissingFile(t *testing.T) {
	f := NewStateFile(filepath.Join(t.TempDir(), "state.json"))

	v, ok, err := f.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStateFile_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	f := NewStateFile(path)

	require.NoError(t, f.Set("theme", "dark"))

	v, ok, err := f.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// A fresh instance reads what was persisted.
	v, ok, err = NewStateFile(path).Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestStateFile_Overwrite(t *testing.T) {
	f := NewStateFile(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, f.Set("theme", "dark"))
	require.NoError(t, f.Set("other", "x"))
	require.NoError(t, f.Set("theme", "light"))

	v, _, err := f.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	v, _, err = f.Get("other")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestStateFile_UpdatedAt(t *testing.T) {
	f := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	_, ok, err := f.UpdatedAt("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.Set("theme", "dark"))

	at, ok, err := f.UpdatedAt("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, fixed.Equal(at))
}

func TestStateFile_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	f := NewStateFile(path)
	_, _, err := f.Get("theme")
	assert.Error(t, err)

	// Set replaces the corrupted file.
	require.NoError(t, f.Set("theme", "dark"))
	v, ok, err := f.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("theme", "dark"))
	v, ok, err := m.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	m.Err = errors.New("boom")
	_, _, err = m.Get("theme")
	assert.Error(t, err)
	assert.Error(t, m.Set("theme", "light"))
}
