package timepick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeKeys(e *keyEntry, digits ...int) []bool {
	accepted := make([]bool, len(digits))
	for i, d := range digits {
		accepted[i] = e.add(d)
	}
	return accepted
}

func TestKeyEntry_LegalSequences(t *testing.T) {
	tests := []struct {
		name     string
		digits   []int
		accepted []bool
		display  string
		complete bool
	}{
		{
			name:     "single digit hour",
			digits:   []int{9, 5, 5},
			accepted: []bool{true, true, true},
			display:  "-9:55",
			complete: true,
		},
		{
			name:     "two digit hour",
			digits:   []int{2, 3, 0, 9},
			accepted: []bool{true, true, true, true},
			display:  "23:09",
			complete: true,
		},
		{
			name:     "explicit leading zero",
			digits:   []int{0, 7, 3, 0},
			accepted: []bool{true, true, true, true},
			display:  "07:30",
			complete: true,
		},
		{
			name:     "hour 2 with minute in the forties",
			digits:   []int{2, 4, 6},
			accepted: []bool{true, true, true},
			display:  "-2:46",
			complete: true,
		},
		{
			name:     "minute tens above five rejected",
			digits:   []int{7, 6},
			accepted: []bool{true, false},
			display:  "--:-7",
			complete: false,
		},
		{
			name:     "hour above 23 rejected",
			digits:   []int{2, 4, 0, 0},
			accepted: []bool{true, true, true, false},
			display:  "-2:40",
			complete: true,
		},
		{
			name:     "fifth digit rejected",
			digits:   []int{1, 2, 3, 4, 5},
			accepted: []bool{true, true, true, true, false},
			display:  "12:34",
			complete: true,
		},
		{
			name:     "two digits are not a time yet",
			digits:   []int{1, 5},
			accepted: []bool{true, true},
			display:  "--:15",
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e keyEntry
			assert.Equal(t, tt.accepted, typeKeys(&e, tt.digits...))
			assert.Equal(t, tt.display, e.display())
			assert.Equal(t, tt.complete, e.fullyLegal())
		})
	}
}

func TestKeyEntry_Empty(t *testing.T) {
	var e keyEntry
	assert.True(t, e.empty())
	assert.Equal(t, "--:--", e.display())
	assert.False(t, e.fullyLegal())

	_, ok := e.deleteLast()
	assert.False(t, ok)
}

func TestKeyEntry_DeleteLast(t *testing.T) {
	var e keyEntry
	typeKeys(&e, 1, 8, 4, 5)

	last, ok := e.deleteLast()
	assert.True(t, ok)
	assert.Equal(t, 5, last)
	assert.Equal(t, "-1:84", e.display())

	e.reset()
	assert.True(t, e.empty())
}

func TestKey_Digit(t *testing.T) {
	d, ok := Key('7').digit()
	assert.True(t, ok)
	assert.Equal(t, 7, d)

	_, ok = Key('a').digit()
	assert.False(t, ok)
	_, ok = KeyEnter.digit()
	assert.False(t, ok)
}
