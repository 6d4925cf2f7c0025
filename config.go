package timepick

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Xevion/go-timepick/types"
)

// ParseConstraints builds a constraint set from a YAML document such as:
//
//	min_time: "08:00"
//	max_time: "18:00"
//	interval: {hours: 1, minutes: 15}
//	disabled: ["12:00", "12:15"]
//
// Unknown keys are rejected. An empty document allows every time of the day.
func ParseConstraints(data []byte) (*Constraints, error) {
	var cfg types.ConstraintConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse constraints: %w", err)
	}

	return NewConstraintsBuilder().FromConfig(cfg).Build()
}

// LoadConstraints reads a YAML constraint file, see ParseConstraints.
func LoadConstraints(path string) (*Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints file: %w", err)
	}
	return ParseConstraints(data)
}
