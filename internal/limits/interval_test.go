package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xevion/go-timepick/types"
)

func TestIntervalTimes(t *testing.T) {
	t.Run("every minute", func(t *testing.T) {
		points, err := IntervalTimes(1, 1)
		require.NoError(t, err)
		assert.Len(t, points, 24*60)
		assert.Equal(t, types.New(0, 0), points[0])
		assert.Equal(t, types.New(23, 59), points[len(points)-1])
	})

	t.Run("quarter hours", func(t *testing.T) {
		points, err := IntervalTimes(1, 15)
		require.NoError(t, err)
		assert.Len(t, points, 24*4)
		assert.Equal(t, []types.Timepoint{
			types.New(0, 0), types.New(0, 15), types.New(0, 30), types.New(0, 45), types.New(1, 0),
		}, points[:5])
	})

	t.Run("whole hours every six", func(t *testing.T) {
		points, err := IntervalTimes(6, 60)
		require.NoError(t, err)
		assert.Equal(t, []types.Timepoint{
			types.New(0, 0), types.New(6, 0), types.New(12, 0), types.New(18, 0),
		}, points)
	})

	t.Run("uneven minute interval", func(t *testing.T) {
		points, err := IntervalTimes(24, 25)
		require.NoError(t, err)
		assert.Equal(t, []types.Timepoint{types.New(0, 0), types.New(0, 25), types.New(0, 50)}, points)
	})
}

func TestIntervalTimes_Invalid(t *testing.T) {
	tests := []struct {
		name            string
		hour, minute    int
	}{
		{name: "zero hour", hour: 0, minute: 1},
		{name: "hour too large", hour: 25, minute: 1},
		{name: "zero minute", hour: 1, minute: 0},
		{name: "minute too large", hour: 1, minute: 61},
		{name: "negative", hour: -1, minute: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntervalTimes(tt.hour, tt.minute)
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}
