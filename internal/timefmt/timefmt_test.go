package timefmt

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected Parts
	}{
		{"zero", 0, Parts{"00", "00", "00", "000"}},
		{"millis_only", 7, Parts{"00", "00", "00", "007"}},
		{"one_of_each", 3661000, Parts{"01", "01", "01", "000"}},
		{"just_under_minute", 59999, Parts{"00", "00", "59", "999"}},
		{"day_not_wrapped", 25 * 3600000, Parts{"25", "00", "00", "000"}},
		{"hundred_hours", 3600000 * 100, Parts{"100", "00", "00", "000"}},
		{"mixed", 45296789, Parts{"12", "34", "56", "789"}},
		{"negative_clamped", -5, Parts{"00", "00", "00", "000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.ms))
		})
	}
}

func TestFormat_Reconstructs(t *testing.T) {
	for _, ms := range []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999, 360000001, 1234567890} {
		p := Format(ms)

		h, err := strconv.ParseInt(p.Hours, 10, 64)
		require.NoError(t, err)
		m, err := strconv.ParseInt(p.Minutes, 10, 64)
		require.NoError(t, err)
		s, err := strconv.ParseInt(p.Seconds, 10, 64)
		require.NoError(t, err)
		milli, err := strconv.ParseInt(p.Milliseconds, 10, 64)
		require.NoError(t, err)

		assert.Less(t, m, int64(60))
		assert.Less(t, s, int64(60))
		assert.Less(t, milli, int64(1000))
		assert.Equal(t, ms, ((h*60+m)*60+s)*1000+milli, "ms=%d", ms)
	}
}

func TestParts_String(t *testing.T) {
	assert.Equal(t, "01:02:03.004", Format(3723004).String())
}

func TestClock(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local)
	h, m, s := Clock(at)
	assert.Equal(t, "07", h)
	assert.Equal(t, "05", m)
	assert.Equal(t, "03", s)
}
