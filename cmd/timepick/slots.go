package main

import (
	"fmt"

	timepick "github.com/Xevion/go-timepick"
	"github.com/Xevion/go-timepick/types"
)

// slot is an inclusive run of consecutive legal minutes.
type slot struct {
	start, end types.Timepoint
}

func (s slot) String() string {
	if s.start.Equal(s.end) {
		return s.start.String()
	}
	return fmt.Sprintf("%s-%s", s.start, s.end)
}

// legalSlots walks every minute of the day and groups the legal ones into runs.
func legalSlots(constraints *timepick.Constraints) []slot {
	var slots []slot
	var current *slot

	for minute := 0; minute < 24*60; minute++ {
		t := types.New(minute/60, minute%60)
		if constraints.IsOutOfRange(t, types.Absolute, types.Minute) {
			current = nil
			continue
		}
		if current != nil {
			current.end = t
			continue
		}
		slots = append(slots, slot{start: t, end: t})
		current = &slots[len(slots)-1]
	}

	return slots
}
