package interval

import (
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Add returns a+b wrapped into the interval, with its overflow count. The sum
// is exact before wrapping.
func Add[T constraints.Integer](t Topology, lo, hi, a, b T) (T, int64) {
	return wrapWide(t, lo, hi, new(uint256.Int).Add(widen(a), widen(b)))
}

// Sub returns a-b wrapped into the interval, with its overflow count.
func Sub[T constraints.Integer](t Topology, lo, hi, a, b T) (T, int64) {
	return wrapWide(t, lo, hi, new(uint256.Int).Sub(widen(a), widen(b)))
}

// Mul returns a*b wrapped into the interval, with its overflow count.
func Mul[T constraints.Integer](t Topology, lo, hi, a, b T) (T, int64) {
	return wrapWide(t, lo, hi, new(uint256.Int).Mul(widen(a), widen(b)))
}

// Div returns a/b wrapped into the interval, with its overflow count. The
// quotient truncates toward zero like Go's native division; only the wrap uses
// floor semantics. Div panics with [ErrDivideByZero] if b is zero.
func Div[T constraints.Integer](t Topology, lo, hi, a, b T) (T, int64) {
	if b == 0 {
		panic(ErrDivideByZero)
	}
	return wrapWide(t, lo, hi, new(uint256.Int).SDiv(widen(a), widen(b)))
}
