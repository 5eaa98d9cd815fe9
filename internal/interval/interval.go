// Package interval provides containment tests, sizes and modular wrap-around
// arithmetic over intervals of ordered scalar types.
//
// An interval is a (lo, hi) pair together with a [Topology] selecting which of
// the two bounds are inclusive. Nothing here requires lo <= hi: sizes over a
// reversed pair are defined (and negative for signed types) rather than an
// error.
package interval

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrUnknownTopology is the panic value for operations that need the
	// effective bounds of a topology outside [Closed, Open].
	ErrUnknownTopology = errors.New("interval: unknown topology")
	// ErrOverflow is the panic value when an overflow count does not fit an
	// int64.
	ErrOverflow = errors.New("interval: overflow count out of range")
	// ErrDivideByZero is the panic value for [Div] with a zero divisor.
	ErrDivideByZero = errors.New("interval: integer divide by zero")
)

// IsValid reports whether the interval holds at least one value of a dense
// order: lo <= hi when lo is inclusive, lo < hi otherwise.
func IsValid[T constraints.Ordered](t Topology, lo, hi T) bool {
	switch t {
	case Closed, OpenRight:
		return lo <= hi
	case OpenLeft, Open:
		return lo < hi
	}
	return false
}

// Contains reports whether v lies within the interval. An unknown topology
// contains nothing.
func Contains[T constraints.Ordered](t Topology, lo, v, hi T) bool {
	switch t {
	case Closed:
		return lo <= v && v <= hi
	case OpenLeft:
		return lo < v && v <= hi
	case OpenRight:
		return lo <= v && v < hi
	case Open:
		return lo < v && v < hi
	}
	return false
}

// ContainsRange reports whether both lo2 and hi2 are members of the interval
// (lo1, hi1) under t. Each endpoint is tested on its own with the same
// topology; this is endpoint membership, not a subset test between intervals
// of differing topologies.
func ContainsRange[T constraints.Ordered](t Topology, lo1, hi1, lo2, hi2 T) bool {
	return Contains(t, lo1, lo2, hi1) && Contains(t, lo1, hi2, hi1)
}

// EffectiveLower returns the smallest integer included by the lower bound.
func EffectiveLower[T constraints.Integer](t Topology, lo T) T {
	if t.LowerInclusive() {
		return lo
	}
	return lo + 1
}

// EffectiveUpper returns the largest integer included by the upper bound.
func EffectiveUpper[T constraints.Integer](t Topology, hi T) T {
	if t.UpperInclusive() {
		return hi
	}
	return hi - 1
}

// Size returns EffectiveUpper - EffectiveLower, computed in T.
func Size[T constraints.Integer](t Topology, lo, hi T) T {
	return EffectiveUpper(t, hi) - EffectiveLower(t, lo)
}

// Capacity returns the number of integers in the interval, Size + 1, computed
// in T.
func Capacity[T constraints.Integer](t Topology, lo, hi T) T {
	return Size(t, lo, hi) + 1
}
