package types

// NewPickerRequest contains the configuration for creating a new Picker instance.
type NewPickerRequest struct {
	// Optional
	// Time shown when the picker opens, e.g. "07:30". Defaults to
	// the current local time. It is rounded to the nearest legal time.
	InitialTime TimeString

	// Optional
	// Title shown above the clock face.
	Title string

	// Optional
	// Whether picking an hour automatically moves the picker to the
	// minute wheel.
	AutoAdvance bool

	// Optional
	// Constraints restricting which times can be picked. Leaving
	// this nil allows every time of the day.
	Constraints *ConstraintConfig
}

// ConstraintConfig is the serialized form of a constraint set, as found in
// a YAML constraint file.
type ConstraintConfig struct {
	// Inclusive bounds. MinTime must not be after MaxTime.
	MinTime TimeString `yaml:"min_time,omitempty" json:"min_time,omitempty"`
	MaxTime TimeString `yaml:"max_time,omitempty" json:"max_time,omitempty"`

	// Explicit allow-list. When present nothing outside it can be picked.
	Selectable []TimeString `yaml:"selectable,omitempty" json:"selectable,omitempty"`
	// Explicit deny-list.
	Disabled []TimeString `yaml:"disabled,omitempty" json:"disabled,omitempty"`

	// Adds a grid of selectable times, see IntervalConfig.
	Interval *IntervalConfig `yaml:"interval,omitempty" json:"interval,omitempty"`

	// Two-field "minute hour" cron expressions whose matches are selectable,
	// e.g. "*/15 9-17".
	Cron []string `yaml:"cron,omitempty" json:"cron,omitempty"`

	// Derives bounds from sunrise and sunset at a location.
	Sun *SunConfig `yaml:"sun,omitempty" json:"sun,omitempty"`
}

// IntervalConfig makes every Hours-th hour and every Minutes-th minute selectable.
type IntervalConfig struct {
	Hours   int `yaml:"hours" json:"hours"`
	Minutes int `yaml:"minutes" json:"minutes"`
}

// SunConfig bounds the picker by the sun. An empty offset disables that bound;
// use "0s" to bound exactly at the sun event.
type SunConfig struct {
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`

	// Optional
	// Date in "2006-01-02" format. Defaults to today.
	Date string `yaml:"date,omitempty" json:"date,omitempty"`

	// Minimum time is sunrise plus this offset, e.g. "30m" or "-1h".
	AfterSunrise DurationString `yaml:"after_sunrise,omitempty" json:"after_sunrise,omitempty"`
	// Maximum time is sunset plus this offset.
	BeforeSunset DurationString `yaml:"before_sunset,omitempty" json:"before_sunset,omitempty"`
}
