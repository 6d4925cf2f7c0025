// Package ordered provides a sorted set of Timepoints with floor and
// ceiling lookups, backed by skip lists.
package ordered

import (
	"github.com/Workiva/go-datastructures/common"
	"github.com/Workiva/go-datastructures/slice/skip"

	"github.com/Xevion/go-timepick/types"
)

// ascending orders entries from midnight forwards.
type ascending types.Timepoint

func (a ascending) Compare(other common.Comparator) int {
	return types.Timepoint(a).Compare(types.Timepoint(other.(ascending)))
}

// descending orders entries from midnight backwards. Iterating it from a key
// yields the floor of that key first.
type descending types.Timepoint

func (d descending) Compare(other common.Comparator) int {
	return types.Timepoint(other.(descending)).Compare(types.Timepoint(d))
}

// Set is a sorted set of Timepoints. Two skip lists are kept in opposite
// orders so both floor and ceiling are a single seek.
//
// A nil *Set reads as empty; only Add and Remove need a Set made by New.
type Set struct {
	asc  *skip.SkipList
	desc *skip.SkipList
}

// New returns a Set containing the given points.
func New(points ...types.Timepoint) *Set {
	s := &Set{
		asc:  skip.New(uint64(0)),
		desc: skip.New(uint64(0)),
	}
	s.Add(points...)
	return s
}

// Add inserts the points. Points already present are left as is.
func (s *Set) Add(points ...types.Timepoint) {
	for _, p := range points {
		s.asc.Insert(ascending(p))
		s.desc.Insert(descending(p))
	}
}

// Remove deletes the points, ignoring any that are not present.
func (s *Set) Remove(points ...types.Timepoint) {
	for _, p := range points {
		if !s.Contains(p) {
			continue
		}
		s.asc.Delete(ascending(p))
		s.desc.Delete(descending(p))
	}
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return int(s.asc.Len())
}

func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Ceiling returns the least element greater than or equal to tp.
func (s *Set) Ceiling(tp types.Timepoint) (types.Timepoint, bool) {
	if s == nil {
		return types.Timepoint{}, false
	}
	iter := s.asc.Iter(ascending(tp))
	if !iter.Next() {
		return types.Timepoint{}, false
	}
	return types.Timepoint(iter.Value().(ascending)), true
}

// Floor returns the greatest element less than or equal to tp.
func (s *Set) Floor(tp types.Timepoint) (types.Timepoint, bool) {
	if s == nil {
		return types.Timepoint{}, false
	}
	iter := s.desc.Iter(descending(tp))
	if !iter.Next() {
		return types.Timepoint{}, false
	}
	return types.Timepoint(iter.Value().(descending)), true
}

func (s *Set) Contains(tp types.Timepoint) bool {
	ceil, ok := s.Ceiling(tp)
	return ok && ceil.Equal(tp)
}

// Points returns the elements in ascending order.
func (s *Set) Points() []types.Timepoint {
	points := make([]types.Timepoint, 0, s.Len())
	if s == nil {
		return points
	}
	iter := s.asc.Iter(ascending(types.New(0, 0)))
	for iter.Next() {
		points = append(points, types.Timepoint(iter.Value().(ascending)))
	}
	return points
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return New(s.Points()...)
}

// Difference returns a new set with the elements of s that are not in other.
func (s *Set) Difference(other *Set) *Set {
	out := New()
	for _, p := range s.Points() {
		if !other.Contains(p) {
			out.Add(p)
		}
	}
	return out
}
