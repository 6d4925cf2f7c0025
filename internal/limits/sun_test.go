package limits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xevion/go-timepick/types"
)

// London, mid summer
const (
	latitude  = 51.5074
	longitude = -0.1278
)

var midsummer = time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)

func TestSunTime_SunriseBeforeSunset(t *testing.T) {
	rise, err := SunTime(latitude, longitude, midsummer, false, 0)
	require.NoError(t, err)

	set, err := SunTime(latitude, longitude, midsummer, true, 0)
	require.NoError(t, err)

	assert.NotEqual(t, rise, set)
}

func TestSunTime_Offset(t *testing.T) {
	tests := []struct {
		name    string
		sunset  bool
		offset  time.Duration
		minutes int
	}{
		{name: "thirty minutes after sunrise", sunset: false, offset: 30 * time.Minute, minutes: 30},
		{name: "an hour before sunset", sunset: true, offset: -time.Hour, minutes: -60},
		{name: "seconds are dropped", sunset: false, offset: 90 * time.Second, minutes: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := SunTime(latitude, longitude, midsummer, tt.sunset, 0)
			require.NoError(t, err)

			shifted, err := SunTime(latitude, longitude, midsummer, tt.sunset, tt.offset)
			require.NoError(t, err)

			assert.Equal(t, base.Add(types.Minute, tt.minutes), shifted)
		})
	}
}

func TestSunTime_PolarNight(t *testing.T) {
	winter := time.Date(2025, 12, 21, 12, 0, 0, 0, time.UTC)

	_, err := SunTime(89.0, 0, winter, false, 0)
	assert.ErrorIs(t, err, ErrNoSunEvent)

	_, err = SunTime(89.0, 0, winter, true, 0)
	assert.ErrorIs(t, err, ErrNoSunEvent)
}
