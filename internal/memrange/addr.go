package memrange

import (
	"fmt"
	"math"
)

// Addr is a byte address. Addresses only have meaning relative to the memory
// that issued them; see memspace.
type Addr uintptr

// Null is never a valid address.
const Null Addr = 0

// Add returns a+n, failing with ErrOverflow if the result would wrap.
func (a Addr) Add(n uintptr) (Addr, error) {
	if n > math.MaxUint-uintptr(a) {
		return Null, fmt.Errorf("%v + %d: %w", a, n, ErrOverflow)
	}
	return a + Addr(n), nil
}

// Diff returns a-b. The caller must ensure a >= b.
func (a Addr) Diff(b Addr) uintptr {
	return uintptr(a - b)
}

func (a Addr) String() string {
	if a == Null {
		return "null"
	}
	return fmt.Sprintf("%#x", uintptr(a))
}
