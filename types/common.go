package types

import "fmt"

// DurationString represents a duration, such as "2s" or "24h".
// See https://pkg.go.dev/time#ParseDuration for all valid time units.
type DurationString string

// TimeString is a 24-hr format time "HH:MM" such as "07:30".
type TimeString string

// Axis selects which field of a Timepoint is being validated or rounded.
// It corresponds to the picker wheel that is currently active.
type Axis int

const (
	Hour Axis = iota
	Minute

	// Absolute checks a Timepoint against the constraint set as a whole,
	// without favouring either field.
	Absolute Axis = -1
)

func (a Axis) String() string {
	switch a {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	default:
		return "absolute"
	}
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hour":
		*a = Hour
	case "minute":
		*a = Minute
	case "absolute":
		*a = Absolute
	default:
		return fmt.Errorf("unknown axis %q", text)
	}
	return nil
}

// seconds returns the number of seconds one unit of the axis spans.
func (a Axis) seconds() int {
	if a == Minute {
		return 60
	}
	return 3600
}
