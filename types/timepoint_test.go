package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name           string
		hour, minute   int
		expectedHour   int
		expectedMinute int
	}{
		{name: "in range", hour: 9, minute: 30, expectedHour: 9, expectedMinute: 30},
		{name: "midnight", hour: 0, minute: 0, expectedHour: 0, expectedMinute: 0},
		{name: "hour overflow", hour: 25, minute: 0, expectedHour: 1, expectedMinute: 0},
		{name: "minute overflow", hour: 10, minute: 75, expectedHour: 10, expectedMinute: 15},
		{name: "negative hour", hour: -1, minute: 0, expectedHour: 23, expectedMinute: 0},
		{name: "negative minute", hour: 3, minute: -5, expectedHour: 3, expectedMinute: 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := New(tt.hour, tt.minute)
			assert.Equal(t, tt.expectedHour, tp.Hour())
			assert.Equal(t, tt.expectedMinute, tp.Minute())
		})
	}
}

func TestNew_FullDay(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			tp := New(h, m)
			if tp.Hour() != h || tp.Minute() != m {
				t.Fatalf("New(%d, %d) = %s", h, m, tp)
			}
		}
	}
}

func TestTimepoint_CompareMatchesSeconds(t *testing.T) {
	points := []Timepoint{New(0, 0), New(0, 59), New(1, 0), New(12, 30), New(23, 59)}

	sign := func(d int) int {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
		return 0
	}

	for _, x := range points {
		for _, y := range points {
			assert.Equal(t, sign(x.Seconds()-y.Seconds()), x.Compare(y), "%s vs %s", x, y)
		}
	}
}

func TestTimepoint_Seconds(t *testing.T) {
	assert.Equal(t, 0, New(0, 0).Seconds())
	assert.Equal(t, 9*3600+15*60, New(9, 15).Seconds())
	assert.Equal(t, 86340, New(23, 59).Seconds())
}

func TestTimepoint_Add(t *testing.T) {
	tests := []struct {
		name     string
		start    Timepoint
		axis     Axis
		value    int
		expected Timepoint
	}{
		{name: "minute forward", start: New(9, 15), axis: Minute, value: 10, expected: New(9, 25)},
		{name: "minute carries hour", start: New(9, 55), axis: Minute, value: 10, expected: New(10, 5)},
		{name: "minute backward across midnight", start: New(0, 0), axis: Minute, value: -1, expected: New(23, 59)},
		{name: "minute forward across midnight", start: New(23, 59), axis: Minute, value: 1, expected: New(0, 0)},
		{name: "hour keeps minute", start: New(22, 45), axis: Hour, value: 3, expected: New(1, 45)},
		{name: "hour backward", start: New(0, 10), axis: Hour, value: -1, expected: New(23, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.start.Add(tt.axis, tt.value)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTimepoint_AddIsImmutable(t *testing.T) {
	tp := New(8, 0)
	_ = tp.Add(Minute, 30)
	assert.Equal(t, New(8, 0), tp)
}

func TestTimepoint_EqualAt(t *testing.T) {
	a := New(9, 15)

	assert.True(t, a.EqualAt(New(9, 45), Hour))
	assert.False(t, a.EqualAt(New(9, 45), Minute))
	assert.True(t, a.EqualAt(New(9, 15), Minute))
	assert.False(t, a.EqualAt(New(10, 15), Hour))
	assert.False(t, a.EqualAt(New(10, 15), Minute))
}

func TestTimepoint_Get(t *testing.T) {
	tp := New(14, 42)
	assert.Equal(t, 14, tp.Get(Hour))
	assert.Equal(t, 42, tp.Get(Minute))
	assert.Equal(t, 14, tp.Get(Absolute))
}

func TestParseTimepoint(t *testing.T) {
	tp, err := ParseTimepoint("07:05")
	require.NoError(t, err)
	assert.Equal(t, New(7, 5), tp)

	for _, bad := range []string{"", "7", "24:00", "12:60", "noon"} {
		_, err := ParseTimepoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimepoint_TextRoundTrip(t *testing.T) {
	original := New(18, 3)

	text, err := original.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "18:03", string(text))

	var decoded Timepoint
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, original, decoded)
}

func TestFromTime(t *testing.T) {
	tt := time.Date(2025, 8, 2, 21, 7, 33, 0, time.UTC)
	assert.Equal(t, New(21, 7), FromTime(tt))
}

func TestAxis_Text(t *testing.T) {
	for _, axis := range []Axis{Hour, Minute, Absolute} {
		text, err := axis.MarshalText()
		require.NoError(t, err)

		var decoded Axis
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, axis, decoded)
	}

	var a Axis
	assert.Error(t, a.UnmarshalText([]byte("second")))
}
