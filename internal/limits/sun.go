package limits

import (
	"errors"
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/nathan-osman/go-sunrise"

	"github.com/Xevion/go-timepick/types"
)

// ErrNoSunEvent is returned when the sun does not rise or set on the requested day.
var ErrNoSunEvent = errors.New("sun does not rise or set on the given day")

// SunTime returns the local time of sunrise (or sunset) at the given location and date,
// shifted by offset. Offsets that cross midnight wrap around the clock.
func SunTime(latitude, longitude float64, date time.Time, sunset bool, offset time.Duration) (types.Timepoint, error) {
	rise, set := sunrise.SunriseSunset(latitude, longitude, date.Year(), date.Month(), date.Day())

	sun := rise
	if sunset {
		sun = set
	}

	if sun.IsZero() {
		return types.Timepoint{}, ErrNoSunEvent
	}

	c := carbon.CreateFromStdTime(sun, carbon.Local)
	if offset != 0 {
		c = c.AddMinutes(int(offset.Minutes()))
	}

	return types.New(c.Hour(), c.Minute()), nil
}
