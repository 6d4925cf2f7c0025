// Package timepick is a headless time picker: it owns the selected time of a
// clock-face picker, validates every interaction against a set of constraints,
// and rounds illegal picks to the nearest legal time. Rendering is left to the host UI.
package timepick

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dromara/carbon/v2"

	"github.com/Xevion/go-timepick/internal"
	"github.com/Xevion/go-timepick/internal/limits"
	"github.com/Xevion/go-timepick/types"
)

var (
	ErrInvalidArgs = errors.New("invalid arguments provided")
	// ErrCustomLimiter is returned by constraint setters while a custom Limiter is in effect.
	ErrCustomLimiter = errors.New("constraints are managed by a custom limiter")
)

// TimeSetCallback is called when the user confirms a time.
type TimeSetCallback func(*Picker, types.Timepoint)

// CancelCallback is called when the user dismisses the picker without picking a time.
type CancelCallback func(*Picker)

// Picker is a single time picker session. It is owned by the host UI and is not
// safe for concurrent use. Queries always run at minute resolution, the finest
// the picker supports.
type Picker struct {
	id int64

	policy Policy

	selection types.Timepoint
	showing   types.Axis

	title       string
	autoAdvance bool

	inKbMode bool
	typed    keyEntry

	onTimeSet TimeSetCallback
	onCancel  CancelCallback
	dismissed bool
}

// NewPicker validates the request and returns a picker showing the hour wheel.
func NewPicker(request types.NewPickerRequest) (*Picker, error) {
	constraints := NewConstraints()
	if request.Constraints != nil {
		var err error
		constraints, err = NewConstraintsBuilder().FromConfig(*request.Constraints).Build()
		if err != nil {
			slog.Error("Invalid constraints in NewPickerRequest", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
	}

	initial := now()
	if request.InitialTime != "" {
		var err error
		initial, err = internal.ParseTime(request.InitialTime)
		if err != nil {
			return nil, fmt.Errorf("%w: initial time: %w", ErrInvalidArgs, err)
		}
	}

	p := &Picker{
		id:          internal.NextId(),
		policy:      DefaultPolicy{Constraints: constraints},
		showing:     types.Hour,
		title:       request.Title,
		autoAdvance: request.AutoAdvance,
	}
	p.selection = p.RoundToNearest(initial, types.Absolute)

	return p, nil
}

func now() types.Timepoint {
	c := carbon.Now(carbon.Local)
	return types.New(c.Hour(), c.Minute())
}

func (p *Picker) limiter() Limiter {
	return limiterFor(p.policy)
}

// Policy returns the policy currently deciding which times are legal.
func (p *Picker) Policy() Policy {
	return p.policy
}

// updateConstraints replaces the default constraint set with the result of fn.
func (p *Picker) updateConstraints(fn func(*Constraints) (*Constraints, error)) error {
	def, ok := p.policy.(DefaultPolicy)
	if !ok {
		return ErrCustomLimiter
	}

	next, err := fn(def.Constraints)
	if err != nil {
		slog.Error("Rejected picker constraints", "picker", p.id, "error", err)
		return err
	}

	p.policy = DefaultPolicy{Constraints: next}
	return nil
}

// SetMinTime sets the earliest time that can be picked.
// It fails with ErrInvalidBounds if t is after the maximum time.
func (p *Picker) SetMinTime(t types.Timepoint) error {
	return p.updateConstraints(func(c *Constraints) (*Constraints, error) {
		return c.WithMinTime(t)
	})
}

// SetMaxTime sets the latest time that can be picked.
// It fails with ErrInvalidBounds if t is before the minimum time.
func (p *Picker) SetMaxTime(t types.Timepoint) error {
	return p.updateConstraints(func(c *Constraints) (*Constraints, error) {
		return c.WithMaxTime(t)
	})
}

// SetSelectableTimes adds times to the allow-list. Repeated calls are merged.
func (p *Picker) SetSelectableTimes(times ...types.Timepoint) error {
	return p.updateConstraints(func(c *Constraints) (*Constraints, error) {
		return c.WithSelectableTimes(times...), nil
	})
}

// SetDisabledTimes adds times to the deny-list. Repeated calls are merged.
func (p *Picker) SetDisabledTimes(times ...types.Timepoint) error {
	return p.updateConstraints(func(c *Constraints) (*Constraints, error) {
		return c.WithDisabledTimes(times...), nil
	})
}

// SetTimeInterval makes every hourInterval-th hour and minuteInterval-th minute selectable.
// This is a convenience wrapper around SetSelectableTimes.
func (p *Picker) SetTimeInterval(hourInterval, minuteInterval int) error {
	times, err := limits.IntervalTimes(hourInterval, minuteInterval)
	if err != nil {
		return err
	}
	return p.SetSelectableTimes(times...)
}

// SetConstraints replaces the constraint set, switching back to the default policy
// if a custom limiter was in effect.
func (p *Picker) SetConstraints(c *Constraints) error {
	if c == nil {
		return ErrInvalidArgs
	}
	p.policy = DefaultPolicy{Constraints: c}
	return nil
}

// SetLimiter hands every legality decision to a custom Limiter. While it is in effect
// SetMinTime, SetMaxTime, SetSelectableTimes, SetDisabledTimes and SetTimeInterval
// return ErrCustomLimiter.
func (p *Picker) SetLimiter(l Limiter) error {
	if l == nil {
		return ErrInvalidArgs
	}
	p.policy = CustomPolicy{Limiter: l}
	return nil
}

// SetInitialSelection replaces the selected time with the legal time closest to t
// and leaves keyboard mode.
func (p *Picker) SetInitialSelection(t types.Timepoint) {
	p.selection = p.RoundToNearest(t, types.Absolute)
	p.inKbMode = false
	p.typed.reset()
}

// OnTimeSet registers the callback invoked by Confirm.
func (p *Picker) OnTimeSet(callback TimeSetCallback) *Picker {
	p.onTimeSet = callback
	return p
}

// OnCancel registers the callback invoked by Cancel.
func (p *Picker) OnCancel(callback CancelCallback) *Picker {
	p.onCancel = callback
	return p
}

// IsOutOfRange reports whether t cannot be picked on the given wheel.
func (p *Picker) IsOutOfRange(t types.Timepoint, axis types.Axis) bool {
	return p.limiter().IsOutOfRange(t, axis, types.Minute)
}

// RoundToNearest returns the legal time closest to t:
//   - types.Hour rounds to the next valid point, possibly adjusting minutes
//   - types.Minute rounds without adjusting the hour
//   - types.Absolute rounds to the closest legal time overall
func (p *Picker) RoundToNearest(t types.Timepoint, axis types.Axis) types.Timepoint {
	return p.limiter().RoundToNearest(t, axis, types.Minute)
}

// Show prepares the picker for display: the selection is rounded against the current
// constraints and the hour wheel is shown.
func (p *Picker) Show() {
	p.selection = p.RoundToNearest(p.selection, types.Absolute)
	p.showing = types.Hour
	p.dismissed = false
	slog.Info("Showing picker", "picker", p.id, "title", p.title, "selection", p.selection)
}

// Select records a pick made on the given wheel and returns the time actually selected,
// which is t rounded to the nearest legal time. With auto-advance on, picking an hour
// moves the picker to the minute wheel.
func (p *Picker) Select(t types.Timepoint, axis types.Axis) types.Timepoint {
	rounded := p.RoundToNearest(t, axis)
	if !rounded.Equal(t) {
		slog.Debug("Rounded selection", "picker", p.id, "requested", t, "selected", rounded, "axis", axis)
	}
	p.selection = rounded

	if axis == types.Hour && p.autoAdvance {
		p.showing = types.Minute
	}

	return rounded
}

// ShowAxis switches the active wheel.
func (p *Picker) ShowAxis(axis types.Axis) error {
	if axis != types.Hour && axis != types.Minute {
		return fmt.Errorf("%w: cannot show the %s wheel", ErrInvalidArgs, axis)
	}
	p.showing = axis
	return nil
}

// Confirm accepts the current selection and invokes the time-set callback.
// In keyboard mode it fails while the typed time is incomplete.
func (p *Picker) Confirm() bool {
	if p.inKbMode {
		if !p.typed.fullyLegal() {
			return false
		}
		p.finishKbMode()
	}

	slog.Info("Time set", "picker", p.id, "time", p.selection)
	if p.onTimeSet != nil {
		p.onTimeSet(p, p.selection)
	}
	p.dismissed = true
	return true
}

// Cancel dismisses the picker and invokes the cancel callback.
func (p *Picker) Cancel() {
	slog.Info("Picker cancelled", "picker", p.id)
	if p.onCancel != nil {
		p.onCancel(p)
	}
	p.dismissed = true
}

// PressKey handles a key press and reports whether it was consumed.
// Typing a digit enters keyboard mode; Tab leaves it once the typed time is complete,
// Enter confirms, Escape cancels and Delete removes the last digit.
func (p *Picker) PressKey(k Key) bool {
	switch k {
	case KeyEscape:
		p.Cancel()
		return true
	case KeyTab:
		if !p.inKbMode {
			return false
		}
		if p.typed.fullyLegal() {
			p.finishKbMode()
		}
		return true
	case KeyEnter:
		if p.inKbMode && !p.typed.fullyLegal() {
			return true
		}
		p.Confirm()
		return true
	case KeyDelete:
		if !p.inKbMode {
			return false
		}
		if deleted, ok := p.typed.deleteLast(); ok {
			slog.Debug("Deleted typed key", "picker", p.id, "digit", deleted)
		}
		return true
	}

	digit, ok := k.digit()
	if !ok {
		return false
	}

	if !p.inKbMode {
		p.typed.reset()
		if p.typed.add(digit) {
			p.inKbMode = true
		}
		return true
	}

	if !p.typed.add(digit) {
		slog.Debug("Ignored illegal key", "picker", p.id, "digit", digit, "typed", p.typed.display())
	}
	return true
}

// ExitKeyboardMode leaves keyboard mode, applying the typed time if it is complete
// and discarding it otherwise.
func (p *Picker) ExitKeyboardMode() {
	if !p.typed.fullyLegal() {
		p.typed.reset()
	}
	p.finishKbMode()
}

// finishKbMode leaves keyboard mode. A typed time replaces the selection after
// rounding it against the constraints.
func (p *Picker) finishKbMode() {
	p.inKbMode = false
	if p.typed.empty() {
		return
	}

	hour, minute, _, _ := p.typed.entered()
	p.selection = p.RoundToNearest(types.New(hour, minute), types.Absolute)
	p.typed.reset()
}

// TypedDisplay returns what the header should show: the typed digits with placeholders
// in keyboard mode, or the selected time otherwise.
func (p *Picker) TypedDisplay() string {
	if !p.inKbMode {
		return p.selection.String()
	}
	return p.typed.display()
}

// CanConfirm reports whether Confirm would currently succeed.
func (p *Picker) CanConfirm() bool {
	return !p.inKbMode || p.typed.fullyLegal()
}

func (p *Picker) Selection() types.Timepoint {
	return p.selection
}

// Showing returns the active wheel.
func (p *Picker) Showing() types.Axis {
	return p.showing
}

func (p *Picker) Title() string {
	return p.title
}

func (p *Picker) InKeyboardMode() bool {
	return p.inKbMode
}

// Dismissed reports whether the picker was confirmed or cancelled since it was last shown.
func (p *Picker) Dismissed() bool {
	return p.dismissed
}

// String returns a human-readable representation of the picker.
func (p *Picker) String() string {
	return fmt.Sprintf("Picker{ %q at %s, call %q }",
		p.title,
		p.selection,
		internal.GetFunctionName(p.onTimeSet),
	)
}
