package types

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 3600

// Timepoint is a wall-clock time at minute granularity, in 24 hour mode.
// It carries no date and no timezone. The zero value is midnight.
type Timepoint struct {
	hour   int
	minute int
}

// New returns the Timepoint for the given hour and minute. Out of range
// values are wrapped into 0-23 and 0-59, so New never fails.
func New(hour, minute int) Timepoint {
	return Timepoint{
		hour:   mod(hour, 24),
		minute: mod(minute, 60),
	}
}

// FromTime returns the wall-clock hour and minute of t in its own location.
func FromTime(t time.Time) Timepoint {
	return New(t.Hour(), t.Minute())
}

// ParseTimepoint parses a "HH:MM" string.
func ParseTimepoint(s string) (Timepoint, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Timepoint{}, fmt.Errorf("failed to parse time string %q; format must be HH:MM: %w", s, err)
	}
	return New(t.Hour(), t.Minute()), nil
}

func fromSeconds(seconds int) Timepoint {
	seconds = mod(seconds, secondsPerDay)
	return Timepoint{
		hour:   seconds / 3600,
		minute: (seconds % 3600) / 60,
	}
}

func (t Timepoint) Hour() int {
	return t.hour
}

func (t Timepoint) Minute() int {
	return t.minute
}

// Get returns the minute for the Minute axis and the hour for any other axis.
func (t Timepoint) Get(axis Axis) int {
	if axis == Minute {
		return t.minute
	}
	return t.hour
}

// Seconds returns the number of seconds since midnight.
func (t Timepoint) Seconds() int {
	return 3600*t.hour + 60*t.minute
}

// Add returns t shifted by value units of the axis, wrapping around midnight.
// Negative values step backwards.
func (t Timepoint) Add(axis Axis, value int) Timepoint {
	return fromSeconds(t.Seconds() + value*axis.seconds())
}

// Compare returns -1, 0 or 1 depending on whether t is before, equal to, or after other.
func (t Timepoint) Compare(other Timepoint) int {
	switch d := t.Seconds() - other.Seconds(); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (t Timepoint) Before(other Timepoint) bool {
	return t.Compare(other) < 0
}

func (t Timepoint) After(other Timepoint) bool {
	return t.Compare(other) > 0
}

func (t Timepoint) Equal(other Timepoint) bool {
	return t == other
}

// EqualAt reports whether t and other agree on every field down to the given resolution.
// At Hour resolution only the hour is compared.
func (t Timepoint) EqualAt(other Timepoint, resolution Axis) bool {
	if resolution == Hour {
		return t.hour == other.hour
	}
	return t == other
}

// String returns the time as "HH:MM".
func (t Timepoint) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t Timepoint) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timepoint) UnmarshalText(text []byte) error {
	parsed, err := ParseTimepoint(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// mod is the non-negative remainder of a / b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
