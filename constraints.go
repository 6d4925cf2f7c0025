package timepick

import (
	"errors"
	"fmt"

	"github.com/Xevion/go-timepick/internal/ordered"
	"github.com/Xevion/go-timepick/types"
)

// ErrInvalidBounds is returned when a minimum time would end up after the maximum time.
var ErrInvalidBounds = errors.New("minimum time must not be after maximum time")

// Constraints decides which Timepoints can be picked: inclusive min/max bounds,
// an optional allow-list of selectable times, and a deny-list of disabled times.
//
// A Constraints value is immutable. Every With* method returns a new value, so a
// Constraints can be shared freely and queried from any goroutine.
type Constraints struct {
	minTime *types.Timepoint
	maxTime *types.Timepoint

	selectable *ordered.Set
	disabled   *ordered.Set
	// selectable minus disabled, recomputed whenever either list changes
	exclusive *ordered.Set
}

// NewConstraints returns a constraint set that allows every time of the day.
func NewConstraints() *Constraints {
	return &Constraints{
		selectable: ordered.New(),
		disabled:   ordered.New(),
		exclusive:  ordered.New(),
	}
}

// clone shares the sets, which are never mutated once a Constraints is built.
func (c *Constraints) clone() *Constraints {
	cp := *c
	return &cp
}

// WithMinTime returns a copy with the inclusive lower bound set.
// It fails with ErrInvalidBounds if minTime is after the current maximum.
func (c *Constraints) WithMinTime(minTime types.Timepoint) (*Constraints, error) {
	if c.maxTime != nil && minTime.After(*c.maxTime) {
		return nil, fmt.Errorf("%w: min %s, max %s", ErrInvalidBounds, minTime, *c.maxTime)
	}

	out := c.clone()
	out.minTime = &minTime
	return out, nil
}

// WithMaxTime returns a copy with the inclusive upper bound set.
// It fails with ErrInvalidBounds if maxTime is before the current minimum.
func (c *Constraints) WithMaxTime(maxTime types.Timepoint) (*Constraints, error) {
	if c.minTime != nil && maxTime.Before(*c.minTime) {
		return nil, fmt.Errorf("%w: min %s, max %s", ErrInvalidBounds, *c.minTime, maxTime)
	}

	out := c.clone()
	out.maxTime = &maxTime
	return out, nil
}

// WithSelectableTimes returns a copy with the given times added to the allow-list.
// Once the allow-list is non-empty, only its members (minus disabled times) can be picked.
func (c *Constraints) WithSelectableTimes(times ...types.Timepoint) *Constraints {
	out := c.clone()
	out.selectable = c.selectable.Clone()
	out.selectable.Add(times...)
	out.exclusive = out.selectable.Difference(out.disabled)
	return out
}

// WithDisabledTimes returns a copy with the given times added to the deny-list.
func (c *Constraints) WithDisabledTimes(times ...types.Timepoint) *Constraints {
	out := c.clone()
	out.disabled = c.disabled.Clone()
	out.disabled.Add(times...)
	out.exclusive = out.selectable.Difference(out.disabled)
	return out
}

func (c *Constraints) MinTime() (types.Timepoint, bool) {
	if c.minTime == nil {
		return types.Timepoint{}, false
	}
	return *c.minTime, true
}

func (c *Constraints) MaxTime() (types.Timepoint, bool) {
	if c.maxTime == nil {
		return types.Timepoint{}, false
	}
	return *c.maxTime, true
}

// SelectableTimes returns the configured allow-list in ascending order.
func (c *Constraints) SelectableTimes() []types.Timepoint {
	return c.selectable.Points()
}

// DisabledTimes returns the configured deny-list in ascending order.
func (c *Constraints) DisabledTimes() []types.Timepoint {
	return c.disabled.Points()
}

// EffectiveSelectableTimes returns the allow-list with disabled times removed.
func (c *Constraints) EffectiveSelectableTimes() []types.Timepoint {
	return c.exclusive.Points()
}

// IsOutOfRange reports whether point cannot be picked on the given axis.
//
// On the Hour axis only the hour of point matters: an hour is legal as long as some
// legal time falls within it. On the Minute axis the full time is checked. The deny-list
// is only consulted on an axis when resolution equals that axis. Any other axis falls
// back to checking point against the constraint set as a whole.
func (c *Constraints) IsOutOfRange(point types.Timepoint, axis types.Axis, resolution types.Axis) bool {
	switch axis {
	case types.Hour:
		if c.minTime != nil && c.minTime.Hour() > point.Hour() {
			return true
		}
		if c.maxTime != nil && c.maxTime.Hour()+1 <= point.Hour() {
			return true
		}

		if !c.exclusive.Empty() {
			return !c.bracketedBy(c.exclusive, point, types.Hour)
		}

		if !c.disabled.Empty() && resolution == types.Hour {
			return c.bracketedBy(c.disabled, point, types.Hour)
		}

		return false
	case types.Minute:
		if c.minTime != nil && c.minTime.After(point) {
			return true
		}
		if c.maxTime != nil && c.maxTime.Before(point) {
			return true
		}

		if !c.exclusive.Empty() {
			return !c.bracketedBy(c.exclusive, point, types.Minute)
		}

		if !c.disabled.Empty() && resolution == types.Minute {
			return c.bracketedBy(c.disabled, point, types.Minute)
		}

		return false
	default:
		return c.isOutOfRange(point)
	}
}

// isOutOfRange runs the plain membership checks against point.
func (c *Constraints) isOutOfRange(point types.Timepoint) bool {
	if cc := checkMinTime(c.minTime, point); cc.fail {
		return true
	}
	if cc := checkMaxTime(c.maxTime, point); cc.fail {
		return true
	}
	if !c.exclusive.Empty() {
		return checkAllowlistTimes(c.exclusive, point).fail
	}
	return checkDisabledTimes(c.disabled, point).fail
}

// bracketedBy reports whether the floor or ceiling of point in set equals point
// at the given resolution.
func (c *Constraints) bracketedBy(set *ordered.Set, point types.Timepoint, resolution types.Axis) bool {
	if ceil, ok := set.Ceiling(point); ok && point.EqualAt(ceil, resolution) {
		return true
	}
	if floor, ok := set.Floor(point); ok && point.EqualAt(floor, resolution) {
		return true
	}
	return false
}

// RoundToNearest returns the legal Timepoint closest to t when adjusting fields on the given axis.
//
// Bounds win outright: anything before the minimum rounds to the minimum and anything after
// the maximum rounds to the maximum. When no legal value can be found without changing a
// field the axis must keep, t is returned unchanged; callers should treat an unchanged
// result in a constrained picker as "could not round".
func (c *Constraints) RoundToNearest(t types.Timepoint, axis types.Axis, resolution types.Axis) types.Timepoint {
	if c.minTime != nil && c.minTime.After(t) {
		return *c.minTime
	}
	if c.maxTime != nil && c.maxTime.Before(t) {
		return *c.maxTime
	}

	if !c.exclusive.Empty() {
		return c.roundToSelectable(t, axis)
	}

	if !c.disabled.Empty() {
		// nothing finer than the axis to adjust
		if axis == resolution {
			return t
		}
		if resolution != types.Hour && resolution != types.Minute {
			return t
		}

		if c.bracketedBy(c.disabled, t, resolution) {
			return c.searchValidTimepoint(t, axis, resolution)
		}
		return t
	}

	return t
}

func (c *Constraints) roundToSelectable(t types.Timepoint, axis types.Axis) types.Timepoint {
	floor, hasFloor := c.exclusive.Floor(t)
	ceil, hasCeil := c.exclusive.Ceiling(t)

	if !hasFloor || !hasCeil {
		only := floor
		if !hasFloor {
			only = ceil
		}
		if only.Hour() != t.Hour() {
			return t
		}
		if axis == types.Minute && only.Minute() != t.Minute() {
			return t
		}
		return only
	}

	floorHour := floor.Hour() == t.Hour()
	ceilHour := ceil.Hour() == t.Hour()

	switch axis {
	case types.Hour:
		switch {
		case !floorHour && ceilHour:
			return ceil
		case floorHour && !ceilHour:
			return floor
		case !floorHour && !ceilHour:
			return t
		}
	case types.Minute:
		switch {
		case !floorHour && !ceilHour:
			return t
		case !floorHour && ceilHour:
			if ceil.Minute() == t.Minute() {
				return ceil
			}
			return t
		case floorHour && !ceilHour:
			if floor.Minute() == t.Minute() {
				return floor
			}
			return t
		}

		floorMinute := floor.Minute() == t.Minute()
		ceilMinute := ceil.Minute() == t.Minute()
		switch {
		case !floorMinute && ceilMinute:
			return ceil
		case floorMinute && !ceilMinute:
			return floor
		}
	}

	floorDist := t.Seconds() - floor.Seconds()
	ceilDist := ceil.Seconds() - t.Seconds()
	if floorDist < ceilDist {
		return floor
	}
	return ceil
}

// searchValidTimepoint walks outwards from t one resolution step at a time, looking for the
// closest time that is not disabled while keeping the axis field of t. Forward wins ties.
// If every candidate is disabled, t is returned unchanged.
func (c *Constraints) searchValidTimepoint(t types.Timepoint, axis types.Axis, resolution types.Axis) types.Timepoint {
	forward, backward := t, t

	steps := 24
	if resolution == types.Minute {
		steps *= 60
	}

	forwardAligned, backwardAligned := true, true
	for i := 0; i < steps; i++ {
		forward = forward.Add(resolution, 1)
		backward = backward.Add(resolution, -1)

		// a direction that leaves the axis value stays abandoned
		forwardAligned = forwardAligned && forward.Get(axis) == t.Get(axis)
		backwardAligned = backwardAligned && backward.Get(axis) == t.Get(axis)

		if forwardAligned && !c.bracketedBy(c.disabled, forward, resolution) {
			return forward
		}
		if backwardAligned && !c.bracketedBy(c.disabled, backward, resolution) {
			return backward
		}

		if !forwardAligned && !backwardAligned {
			break
		}
	}

	return t
}
