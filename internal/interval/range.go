package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is an integer interval with its bound topology.
type Interval[T constraints.Integer] struct {
	Lo       T
	Hi       T
	Topology Topology
}

// New returns the interval lo..hi with topology t. It is not validated.
func New[T constraints.Integer](t Topology, lo, hi T) Interval[T] {
	return Interval[T]{Lo: lo, Hi: hi, Topology: t}
}

func (r Interval[T]) IsValid() bool {
	return IsValid(r.Topology, r.Lo, r.Hi)
}

func (r Interval[T]) Contains(v T) bool {
	return Contains(r.Topology, r.Lo, v, r.Hi)
}

// ContainsInterval reports whether both endpoints of other are members of r.
// The topology of other is ignored.
func (r Interval[T]) ContainsInterval(other Interval[T]) bool {
	return ContainsRange(r.Topology, r.Lo, r.Hi, other.Lo, other.Hi)
}

func (r Interval[T]) EffectiveLower() T {
	return EffectiveLower(r.Topology, r.Lo)
}

func (r Interval[T]) EffectiveUpper() T {
	return EffectiveUpper(r.Topology, r.Hi)
}

func (r Interval[T]) Size() T {
	return Size(r.Topology, r.Lo, r.Hi)
}

func (r Interval[T]) Capacity() T {
	return Capacity(r.Topology, r.Lo, r.Hi)
}

func (r Interval[T]) Wrap(v T) (T, int64) {
	return Wrap(r.Topology, r.Lo, r.Hi, v)
}

func (r Interval[T]) Clamp(v *T) int64 {
	return Clamp(r.Topology, r.Lo, r.Hi, v)
}

func (r Interval[T]) Add(a, b T) (T, int64) {
	return Add(r.Topology, r.Lo, r.Hi, a, b)
}

func (r Interval[T]) Sub(a, b T) (T, int64) {
	return Sub(r.Topology, r.Lo, r.Hi, a, b)
}

func (r Interval[T]) Mul(a, b T) (T, int64) {
	return Mul(r.Topology, r.Lo, r.Hi, a, b)
}

func (r Interval[T]) Div(a, b T) (T, int64) {
	return Div(r.Topology, r.Lo, r.Hi, a, b)
}

func (r Interval[T]) String() string {
	open, close := r.Topology.Brackets()
	return fmt.Sprintf("%s%d, %d%s", open, r.Lo, r.Hi, close)
}
