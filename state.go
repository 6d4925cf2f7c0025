package timepick

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Xevion/go-timepick/internal"
	"github.com/Xevion/go-timepick/types"
)

// ErrMissingLimiter is returned when restoring a picker that used a custom limiter
// without passing one through WithLimiter.
var ErrMissingLimiter = errors.New("saved picker used a custom limiter; pass it with WithLimiter")

const (
	policyDefault = "default"
	policyCustom  = "custom"
)

// ConstraintsState is the serialized form of a Constraints value.
type ConstraintsState struct {
	MinTime    *types.Timepoint  `yaml:"min_time,omitempty" json:"min_time,omitempty"`
	MaxTime    *types.Timepoint  `yaml:"max_time,omitempty" json:"max_time,omitempty"`
	Selectable []types.Timepoint `yaml:"selectable,omitempty" json:"selectable,omitempty"`
	Disabled   []types.Timepoint `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// State returns every field of the constraint set, for saving.
func (c *Constraints) State() ConstraintsState {
	state := ConstraintsState{
		Selectable: c.SelectableTimes(),
		Disabled:   c.DisabledTimes(),
	}
	if t, ok := c.MinTime(); ok {
		state.MinTime = internal.Ptr(t)
	}
	if t, ok := c.MaxTime(); ok {
		state.MaxTime = internal.Ptr(t)
	}
	return state
}

// RestoreConstraints rebuilds a Constraints value from its saved state.
func RestoreConstraints(state ConstraintsState) (*Constraints, error) {
	b := NewConstraintsBuilder()
	if state.MinTime != nil {
		b.MinTime(*state.MinTime)
	}
	if state.MaxTime != nil {
		b.MaxTime(*state.MaxTime)
	}
	return b.Selectable(state.Selectable...).Disabled(state.Disabled...).Build()
}

// SavedState is everything needed to recreate a Picker, e.g. across a host UI restart.
// Callbacks are not saved and must be registered again after RestorePicker.
type SavedState struct {
	Version        string            `yaml:"version" json:"version"`
	Title          string            `yaml:"title,omitempty" json:"title,omitempty"`
	AutoAdvance    bool              `yaml:"auto_advance,omitempty" json:"auto_advance,omitempty"`
	Selection      types.Timepoint   `yaml:"selection" json:"selection"`
	Showing        types.Axis        `yaml:"showing" json:"showing"`
	InKeyboardMode bool              `yaml:"in_keyboard_mode,omitempty" json:"in_keyboard_mode,omitempty"`
	TypedKeys      []int             `yaml:"typed_keys,omitempty" json:"typed_keys,omitempty"`
	Policy         string            `yaml:"policy" json:"policy"`
	Constraints    *ConstraintsState `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// State captures the picker. A custom limiter is recorded by kind only.
func (p *Picker) State() SavedState {
	state := SavedState{
		Version:     internal.Version(),
		Title:       p.title,
		AutoAdvance: p.autoAdvance,
		Selection:   p.selection,
		Showing:     p.showing,
	}

	if p.inKbMode {
		state.InKeyboardMode = true
		state.TypedKeys = append([]int(nil), p.typed.typed...)
	}

	switch policy := p.policy.(type) {
	case DefaultPolicy:
		state.Policy = policyDefault
		state.Constraints = internal.Ptr(policy.Constraints.State())
	case CustomPolicy:
		state.Policy = policyCustom
	}

	return state
}

// SaveState serializes the picker as YAML.
func (p *Picker) SaveState() ([]byte, error) {
	data, err := yaml.Marshal(p.State())
	if err != nil {
		return nil, fmt.Errorf("failed to save picker state: %w", err)
	}
	return data, nil
}

type restoreOptions struct {
	limiter Limiter
}

type RestoreOption func(*restoreOptions)

// WithLimiter supplies the custom limiter of a picker saved under a CustomPolicy.
func WithLimiter(l Limiter) RestoreOption {
	return func(o *restoreOptions) {
		o.limiter = l
	}
}

// RestorePicker recreates a picker from data produced by SaveState.
func RestorePicker(data []byte, opts ...RestoreOption) (*Picker, error) {
	var state SavedState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to read picker state: %w", err)
	}
	return RestorePickerState(state, opts...)
}

// RestorePickerState recreates a picker from a SavedState.
func RestorePickerState(state SavedState, opts ...RestoreOption) (*Picker, error) {
	var options restoreOptions
	for _, opt := range opts {
		opt(&options)
	}

	if state.Showing != types.Hour && state.Showing != types.Minute {
		return nil, fmt.Errorf("%w: cannot show the %s wheel", ErrInvalidArgs, state.Showing)
	}

	p := &Picker{
		id:          internal.NextId(),
		title:       state.Title,
		autoAdvance: state.AutoAdvance,
		selection:   state.Selection,
		showing:     state.Showing,
	}

	switch state.Policy {
	case policyDefault, "":
		constraints := NewConstraints()
		if state.Constraints != nil {
			var err error
			constraints, err = RestoreConstraints(*state.Constraints)
			if err != nil {
				return nil, err
			}
		}
		p.policy = DefaultPolicy{Constraints: constraints}
	case policyCustom:
		if options.limiter == nil {
			return nil, ErrMissingLimiter
		}
		p.policy = CustomPolicy{Limiter: options.limiter}
	default:
		return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidArgs, state.Policy)
	}

	if state.InKeyboardMode {
		p.inKbMode = true
		for _, digit := range state.TypedKeys {
			if !p.typed.add(digit) {
				return nil, fmt.Errorf("%w: saved typed keys %v are not a legal entry", ErrInvalidArgs, state.TypedKeys)
			}
		}
	}

	return p, nil
}
