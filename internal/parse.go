package internal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Xevion/go-timepick/types"
)

// Parses a HH:MM string.
func ParseTime(s types.TimeString) (types.Timepoint, error) {
	t, err := types.ParseTimepoint(string(s))
	if err != nil {
		slog.Error("Invalid time string", "value", s, "error", err)
		return types.Timepoint{}, err
	}
	return t, nil
}

func ParseDuration(s types.DurationString) (time.Duration, error) {
	d, err := time.ParseDuration(string(s))
	if err != nil {
		parsingErr := fmt.Errorf("couldn't parse string duration: \"%s\" see https://pkg.go.dev/time#ParseDuration for valid time units: %w", s, err)
		slog.Error(parsingErr.Error())
		return 0, parsingErr
	}
	return d, nil
}
