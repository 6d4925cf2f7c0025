package timepick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xevion/go-timepick/types"
)

const sampleConstraints = `
min_time: "08:00"
max_time: "18:00"
interval:
  hours: 1
  minutes: 15
disabled:
  - "12:00"
  - "12:15"
cron:
  - "50 17"
`

func TestParseConstraints(t *testing.T) {
	c, err := ParseConstraints([]byte(sampleConstraints))
	require.NoError(t, err)

	minTime, ok := c.MinTime()
	require.True(t, ok)
	assert.Equal(t, tp(8, 0), minTime)

	assert.Len(t, c.SelectableTimes(), 24*4+1)
	assert.Equal(t, []types.Timepoint{tp(12, 0), tp(12, 15)}, c.DisabledTimes())

	assert.True(t, c.IsOutOfRange(tp(12, 15), types.Minute, types.Minute))
	assert.False(t, c.IsOutOfRange(tp(17, 50), types.Minute, types.Minute))
	assert.Equal(t, tp(12, 30), c.RoundToNearest(tp(12, 25), types.Absolute, types.Minute))
}

func TestParseConstraints_Empty(t *testing.T) {
	c, err := ParseConstraints(nil)
	require.NoError(t, err)
	assert.False(t, c.IsOutOfRange(tp(3, 33), types.Absolute, types.Minute))
}

func TestParseConstraints_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "earliest: \"08:00\"\n"},
		{"bad time", "min_time: \"8am\"\n"},
		{"inverted bounds", "min_time: \"18:00\"\nmax_time: \"08:00\"\n"},
		{"bad interval", "interval: {hours: 0, minutes: 15}\n"},
		{"malformed", "disabled: [\"12:00\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConstraints([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConstraints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConstraints), 0o600))

	c, err := LoadConstraints(path)
	require.NoError(t, err)
	maxTime, ok := c.MaxTime()
	require.True(t, ok)
	assert.Equal(t, tp(18, 0), maxTime)

	_, err = LoadConstraints(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
