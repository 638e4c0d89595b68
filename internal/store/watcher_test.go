package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	changed := make(chan struct{}, 16)
	fw, err := NewFileWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	require.NoError(t, fw.Start())
	defer func() { _ = fw.Stop() }()

	require.NoError(t, NewStateFile(path).Set("theme", "dark"))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	changed := make(chan struct{}, 16)
	fw, err := NewFileWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	require.NoError(t, fw.Start())
	defer func() { _ = fw.Stop() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("unexpected change notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcher_StopIdempotent(t *testing.T) {
	fw, err := NewFileWatcher(filepath.Join(t.TempDir(), "state.json"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, fw.Start())
	require.NoError(t, fw.Start())
	assert.NoError(t, fw.Stop())
}
