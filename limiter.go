package timepick

import (
	"github.com/Xevion/go-timepick/types"
)

// Limiter decides which times a Picker may show. *Constraints is the built-in
// implementation; supply your own through SetLimiter for rules it cannot express.
type Limiter interface {
	// IsOutOfRange reports whether point cannot be picked on the given axis.
	IsOutOfRange(point types.Timepoint, axis types.Axis, resolution types.Axis) bool

	// RoundToNearest returns the closest legal time to t, adjusting fields on the given axis.
	// Returning t unchanged signals that no legal rounding was found.
	RoundToNearest(t types.Timepoint, axis types.Axis, resolution types.Axis) types.Timepoint
}

// Policy selects where a Picker's constraints come from. It is either a
// DefaultPolicy or a CustomPolicy.
type Policy interface {
	isPolicy()
}

// DefaultPolicy uses a built-in constraint set, which the Picker's setters update.
type DefaultPolicy struct {
	Constraints *Constraints
}

// CustomPolicy hands every decision to a caller-supplied Limiter. The Picker's
// constraint setters are disabled while it is in effect.
type CustomPolicy struct {
	Limiter Limiter
}

func (DefaultPolicy) isPolicy() {}
func (CustomPolicy) isPolicy()  {}

// limiterFor returns the Limiter a policy resolves to.
func limiterFor(p Policy) Limiter {
	switch p := p.(type) {
	case DefaultPolicy:
		return p.Constraints
	case CustomPolicy:
		return p.Limiter
	default:
		panic("timepick: unknown policy")
	}
}
