// Package limits generates constraint inputs for a picker: grids of
// selectable times and sun-relative bounds.
package limits

import (
	"errors"
	"fmt"

	"github.com/Xevion/go-timepick/types"
)

var ErrInvalidInterval = errors.New("invalid interval")

// IntervalTimes returns every time of the day whose hour is a multiple of hourInterval
// and whose minute is a multiple of minuteInterval, in ascending order.
// hourInterval must be in [1,24] and minuteInterval in [1,60]. Passing 60 as the
// minute interval yields whole hours only.
func IntervalTimes(hourInterval, minuteInterval int) ([]types.Timepoint, error) {
	if hourInterval < 1 || hourInterval > 24 {
		return nil, fmt.Errorf("%w: hour interval must be between 1 and 24, got %d", ErrInvalidInterval, hourInterval)
	}
	if minuteInterval < 1 || minuteInterval > 60 {
		return nil, fmt.Errorf("%w: minute interval must be between 1 and 60, got %d", ErrInvalidInterval, minuteInterval)
	}

	points := make([]types.Timepoint, 0, (24/hourInterval+1)*(60/minuteInterval+1))
	for hour := 0; hour < 24; hour += hourInterval {
		for minute := 0; minute < 60; minute += minuteInterval {
			points = append(points, types.New(hour, minute))
		}
	}

	return points, nil
}
