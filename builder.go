package timepick

import (
	"errors"
	"fmt"
	"time"

	"github.com/dromara/carbon/v2"

	"github.com/Xevion/go-timepick/internal"
	"github.com/Xevion/go-timepick/internal/limits"
	"github.com/Xevion/go-timepick/types"
)

// ConstraintsBuilder assembles a Constraints value through a chain of calls.
// Errors are collected along the way and reported together by Build.
type ConstraintsBuilder struct {
	errors      []error
	constraints *Constraints
}

func NewConstraintsBuilder() *ConstraintsBuilder {
	return &ConstraintsBuilder{
		constraints: NewConstraints(),
	}
}

// apply records err, or adopts next when there is none.
func (b *ConstraintsBuilder) apply(next *Constraints, err error) *ConstraintsBuilder {
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	b.constraints = next
	return b
}

// MinTime sets the inclusive lower bound.
func (b *ConstraintsBuilder) MinTime(t types.Timepoint) *ConstraintsBuilder {
	return b.apply(b.constraints.WithMinTime(t))
}

// MaxTime sets the inclusive upper bound.
func (b *ConstraintsBuilder) MaxTime(t types.Timepoint) *ConstraintsBuilder {
	return b.apply(b.constraints.WithMaxTime(t))
}

// Between sets both bounds from "HH:MM" strings.
func (b *ConstraintsBuilder) Between(start, end types.TimeString) *ConstraintsBuilder {
	startTime, err := internal.ParseTime(start)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	endTime, err := internal.ParseTime(end)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	return b.MinTime(startTime).MaxTime(endTime)
}

// Selectable adds times to the allow-list.
// You can call this multiple times; the lists are merged.
func (b *ConstraintsBuilder) Selectable(times ...types.Timepoint) *ConstraintsBuilder {
	b.constraints = b.constraints.WithSelectableTimes(times...)
	return b
}

// Disabled adds times to the deny-list.
func (b *ConstraintsBuilder) Disabled(times ...types.Timepoint) *ConstraintsBuilder {
	b.constraints = b.constraints.WithDisabledTimes(times...)
	return b
}

// Interval makes every hourInterval-th hour and every minuteInterval-th minute selectable.
// hourInterval must be in [1,24] and minuteInterval in [1,60].
func (b *ConstraintsBuilder) Interval(hourInterval, minuteInterval int) *ConstraintsBuilder {
	times, err := limits.IntervalTimes(hourInterval, minuteInterval)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	return b.Selectable(times...)
}

// Cron makes every time matched by a two-field "minute hour" cron expression selectable.
func (b *ConstraintsBuilder) Cron(expression string) *ConstraintsBuilder {
	times, err := limits.CronTimes(expression)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	if len(times) == 0 {
		b.errors = append(b.errors, fmt.Errorf("cron expression %q matches no time of day", expression))
		return b
	}
	return b.Selectable(times...)
}

func (b *ConstraintsBuilder) onSun(sunset bool, latitude, longitude float64, date time.Time, offset ...types.DurationString) *ConstraintsBuilder {
	var offsetDuration time.Duration
	if len(offset) > 0 {
		var err error
		offsetDuration, err = internal.ParseDuration(offset[0])
		if err != nil {
			b.errors = append(b.errors, err)
			return b
		}
	}

	t, err := limits.SunTime(latitude, longitude, date, sunset, offsetDuration)
	if err != nil {
		b.errors = append(b.errors, fmt.Errorf("%.4f,%.4f on %s: %w", latitude, longitude, date.Format(time.DateOnly), err))
		return b
	}

	if sunset {
		return b.MaxTime(t)
	}
	return b.MinTime(t)
}

// NotBeforeSunrise sets the lower bound to sunrise at the given location and date.
// Only the first offset, if provided, is considered, e.g. "30m" or "-1h".
func (b *ConstraintsBuilder) NotBeforeSunrise(latitude, longitude float64, date time.Time, offset ...types.DurationString) *ConstraintsBuilder {
	return b.onSun(false, latitude, longitude, date, offset...)
}

// NotAfterSunset sets the upper bound to sunset at the given location and date.
// Only the first offset, if provided, is considered.
func (b *ConstraintsBuilder) NotAfterSunset(latitude, longitude float64, date time.Time, offset ...types.DurationString) *ConstraintsBuilder {
	return b.onSun(true, latitude, longitude, date, offset...)
}

// FromConfig applies every setting of a ConstraintConfig. Selectable and disabled
// lists are merged with whatever the builder already holds.
func (b *ConstraintsBuilder) FromConfig(cfg types.ConstraintConfig) *ConstraintsBuilder {
	if cfg.MinTime != "" {
		if t, err := internal.ParseTime(cfg.MinTime); err != nil {
			b.errors = append(b.errors, err)
		} else {
			b.MinTime(t)
		}
	}
	if cfg.MaxTime != "" {
		if t, err := internal.ParseTime(cfg.MaxTime); err != nil {
			b.errors = append(b.errors, err)
		} else {
			b.MaxTime(t)
		}
	}

	b.Selectable(b.parseAll(cfg.Selectable)...)
	b.Disabled(b.parseAll(cfg.Disabled)...)

	if cfg.Interval != nil {
		b.Interval(cfg.Interval.Hours, cfg.Interval.Minutes)
	}
	for _, expr := range cfg.Cron {
		b.Cron(expr)
	}

	if sun := cfg.Sun; sun != nil {
		date := carbon.Now(carbon.Local).StdTime()
		if sun.Date != "" {
			parsed, err := time.ParseInLocation(time.DateOnly, sun.Date, time.Local)
			if err != nil {
				b.errors = append(b.errors, fmt.Errorf("invalid sun date %q: %w", sun.Date, err))
				return b
			}
			date = parsed
		}
		if sun.AfterSunrise != "" {
			b.NotBeforeSunrise(sun.Latitude, sun.Longitude, date, sun.AfterSunrise)
		}
		if sun.BeforeSunset != "" {
			b.NotAfterSunset(sun.Latitude, sun.Longitude, date, sun.BeforeSunset)
		}
	}

	return b
}

func (b *ConstraintsBuilder) parseAll(times []types.TimeString) []types.Timepoint {
	out := make([]types.Timepoint, 0, len(times))
	for _, s := range times {
		t, err := internal.ParseTime(s)
		if err != nil {
			b.errors = append(b.errors, err)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Build returns the assembled Constraints.
// It will return an error if any errors occurred during configuration.
func (b *ConstraintsBuilder) Build() (*Constraints, error) {
	if len(b.errors) > 0 {
		return nil, fmt.Errorf("invalid constraints: %w", errors.Join(b.errors...))
	}
	return b.constraints, nil
}
