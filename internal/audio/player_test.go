package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_PreloadCaches(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "start.wav")
	p := NewPlayer(nil)

	require.NoError(t, p.Preload(path))
	assert.True(t, p.Cached(path))

	p.InvalidateCache(path)
	assert.False(t, p.Cached(path))

	require.NoError(t, p.Preload(path))
	p.ClearCache()
	assert.False(t, p.Cached(path))
}

func TestPlayer_PreloadEmptyPath(t *testing.T) {
	assert.NoError(t, NewPlayer(nil).Preload(""))
	assert.NoError(t, NewPlayer(nil).Play(""))
}

func TestPlayer_PreloadErrors(t *testing.T) {
	dir := t.TempDir()
	p := NewPlayer(nil)

	err := p.Preload(filepath.Join(dir, "missing.wav"))
	assert.ErrorContains(t, err, "failed to open sound file")

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("la la"), 0644))
	assert.ErrorContains(t, p.Preload(txt), "unsupported audio format")

	bad := filepath.Join(dir, "bad.wav")
	require.NoError(t, os.WriteFile(bad, []byte("not a wav"), 0644))
	assert.ErrorContains(t, p.Preload(bad), "failed to decode sound")
	assert.False(t, p.Cached(bad))
}

func TestPlayer_SetVolumeClamps(t *testing.T) {
	p := NewPlayer(nil)
	assert.Equal(t, 1.0, p.GetVolume())

	p.SetVolume(0.25)
	assert.Equal(t, 0.25, p.GetVolume())

	p.SetVolume(-1)
	assert.Equal(t, 0.0, p.GetVolume())

	p.SetVolume(3)
	assert.Equal(t, 1.0, p.GetVolume())
}

func TestVolumeExponent(t *testing.T) {
	assert.InDelta(t, 0.0, volumeExponent(1), 1e-9)
	assert.InDelta(t, -1.0, volumeExponent(0.5), 1e-9)
	assert.InDelta(t, -2.0, volumeExponent(0.25), 1e-9)
	assert.Equal(t, -10.0, volumeExponent(0))
}

func TestPlayer_CloseWithoutSpeaker(t *testing.T) {
	path := writeWAV(t, t.TempDir(), "stop.wav")
	p := NewPlayer(nil)
	require.NoError(t, p.Preload(path))

	p.Close()
	assert.False(t, p.Cached(path))
}
