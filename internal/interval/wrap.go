package interval

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Values are widened to 256-bit two's complement before any wrap arithmetic so
// that v - lo, the capacity and the results of Add/Sub/Mul never overflow, even
// for int64 and uint64.

var two64 = uint256.Int{0, 1, 0, 0}

func widen[T constraints.Integer](v T) *uint256.Int {
	z := new(uint256.Int)
	if v < 0 {
		z.SetUint64(uint64(int64(v)))
		return z.Sub(z, &two64)
	}
	return z.SetUint64(uint64(v))
}

// narrow truncates z to T. Callers only narrow values known to fit.
func narrow[T constraints.Integer](z *uint256.Int) T {
	return T(z.Uint64())
}

func toInt64(z *uint256.Int) (int64, bool) {
	if z.Sign() >= 0 {
		return int64(z.Uint64()), z.IsUint64() && z.Uint64() <= math.MaxInt64
	}
	neg := new(uint256.Int).Neg(z)
	return int64(z.Uint64()), neg.IsUint64() && neg.Uint64() <= 1<<63
}

func effectiveBounds[T constraints.Integer](t Topology, lo, hi T) (effLo, effHi *uint256.Int) {
	effLo = widen(lo)
	if !t.LowerInclusive() {
		effLo.AddUint64(effLo, 1)
	}
	effHi = widen(hi)
	if !t.UpperInclusive() {
		effHi.SubUint64(effHi, 1)
	}
	return effLo, effHi
}

func wrapWide[T constraints.Integer](t Topology, lo, hi T, v *uint256.Int) (T, int64) {
	effLo, effHi := effectiveBounds(t, lo, hi)
	if !v.Slt(effLo) && !v.Sgt(effHi) {
		return narrow[T](v), 0
	}

	capacity := new(uint256.Int).Sub(effHi, effLo)
	capacity.AddUint64(capacity, 1)
	if capacity.Sign() <= 0 {
		capacity.SetOne()
	}

	offset := new(uint256.Int).Sub(v, effLo)
	quo := new(uint256.Int).SDiv(offset, capacity)
	rem := new(uint256.Int).SMod(offset, capacity)
	// SDiv and SMod truncate toward zero; move to floor division.
	if rem.Sign() < 0 {
		rem.Add(rem, capacity)
		quo.SubUint64(quo, 1)
	}

	overflow, ok := toInt64(quo)
	if !ok {
		panic(fmt.Errorf("%w: wrapping into %s%d, %d%s", ErrOverflow, openBracket(t), lo, hi, closeBracket(t)))
	}
	return narrow[T](rem.Add(rem, effLo)), overflow
}

// Wrap maps v into [EffectiveLower, EffectiveUpper] and reports how many whole
// capacities were removed to get there: v == wrapped + overflow*capacity.
// Moving up from below the lower bound gives a negative overflow. A capacity
// of zero or less is treated as one.
//
// Wrap panics with [ErrOverflow] if the overflow count does not fit an int64,
// which needs a 64-bit T and a capacity of one or two.
func Wrap[T constraints.Integer](t Topology, lo, hi, v T) (wrapped T, overflow int64) {
	return wrapWide(t, lo, hi, widen(v))
}

// Clamp wraps *v in place and returns the overflow count.
func Clamp[T constraints.Integer](t Topology, lo, hi T, v *T) int64 {
	wrapped, overflow := Wrap(t, lo, hi, *v)
	*v = wrapped
	return overflow
}

// ClampClosed is Clamp over [lo, hi].
func ClampClosed[T constraints.Integer](lo, hi T, v *T) int64 {
	return Clamp(Closed, lo, hi, v)
}

// ClampOpenLeft is Clamp over (lo, hi].
func ClampOpenLeft[T constraints.Integer](lo, hi T, v *T) int64 {
	return Clamp(OpenLeft, lo, hi, v)
}

// ClampOpenRight is Clamp over [lo, hi).
func ClampOpenRight[T constraints.Integer](lo, hi T, v *T) int64 {
	return Clamp(OpenRight, lo, hi, v)
}

// ClampOpen is Clamp over (lo, hi).
func ClampOpen[T constraints.Integer](lo, hi T, v *T) int64 {
	return Clamp(Open, lo, hi, v)
}

func openBracket(t Topology) string {
	o, _ := t.Brackets()
	return o
}

func closeBracket(t Topology) string {
	_, c := t.Brackets()
	return c
}
