package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/require"
)

// silence streams n samples of silence.
type silence struct{ n int }

func (s *silence) Stream(samples [][2]float64) (int, bool) {
	if s.n <= 0 {
		return 0, false
	}
	n := min(len(samples), s.n)
	for i := range samples[:n] {
		samples[i] = [2]float64{}
	}
	s.n -= n
	return n, true
}

func (s *silence) Err() error { return nil }

// writeWAV writes a short silent WAV file and returns its path.
func writeWAV(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, &silence{n: 2205}, format))
	require.NoError(t, f.Close())

	return path
}
