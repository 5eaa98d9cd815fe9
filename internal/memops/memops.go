// Package memops implements bounds-checked memory operations over explicit
// (begin, end) address pairs.
//
// Each operation validates every pair it is given before touching memory and
// derives byte counts from the pairs. Copy-like and compare-like operations
// work on the first min(len(a), len(b)) bytes of their two operands.
package memops

import (
	"bytes"
	"fmt"

	"github.com/garethgeorge/gospan/internal/memops/bytealg"
	"github.com/garethgeorge/gospan/internal/memrange"
)

// Memory translates a valid address pair into the bytes it covers. Two calls
// covering the same addresses must return slices sharing storage.
type Memory interface {
	Bytes(begin, end memrange.Addr) ([]byte, error)
}

func bytesOf(m Memory, op string, begin, end memrange.Addr) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: memory: %w", op, memrange.ErrNullPointer)
	}
	b, err := m.Bytes(begin, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func pair(m Memory, op string, a, aEnd, b, bEnd memrange.Addr) ([]byte, []byte, error) {
	x, err := bytesOf(m, op, a, aEnd)
	if err != nil {
		return nil, nil, err
	}
	y, err := bytesOf(m, op, b, bEnd)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// Copy copies min(dst size, src size) bytes from src to dst, lowest address
// first, and returns the address one past the last byte written.
func Copy(m Memory, dst, dstEnd, src, srcEnd memrange.Addr) (memrange.Addr, error) {
	d, s, err := pair(m, "copy", dst, dstEnd, src, srcEnd)
	if err != nil {
		return memrange.Null, err
	}
	return dst + memrange.Addr(bytealg.Copy(d, s)), nil
}

// CopyRev copies the same bytes as Copy into dst in reverse order, so that
// dst[i] == src[n-1-i] for the original src. Overlapping windows are read
// through a copy of src.
func CopyRev(m Memory, dst, dstEnd, src, srcEnd memrange.Addr) (memrange.Addr, error) {
	d, s, err := pair(m, "copy rev", dst, dstEnd, src, srcEnd)
	if err != nil {
		return memrange.Null, err
	}
	s = detach(dst, d, src, s)
	return dst + memrange.Addr(bytealg.CopyReversed(d, s)), nil
}

// RCopy copies the same bytes as Copy, highest address first. It is correct
// for overlapping windows when dst is above src.
func RCopy(m Memory, dst, dstEnd, src, srcEnd memrange.Addr) (memrange.Addr, error) {
	d, s, err := pair(m, "rcopy", dst, dstEnd, src, srcEnd)
	if err != nil {
		return memrange.Null, err
	}
	return dst + memrange.Addr(bytealg.CopyBackward(d, s)), nil
}

// Move is Copy for windows that may overlap. The result is the same as
// copying through a temporary buffer.
func Move(m Memory, dst, dstEnd, src, srcEnd memrange.Addr) (memrange.Addr, error) {
	d, s, err := pair(m, "move", dst, dstEnd, src, srcEnd)
	if err != nil {
		return memrange.Null, err
	}
	n := memrange.Addr(min(len(d), len(s)))
	if Overlaps(dst, dst+n, src, src+n) && dst > src {
		return dst + memrange.Addr(bytealg.CopyBackward(d, s)), nil
	}
	return dst + memrange.Addr(bytealg.Copy(d, s)), nil
}

// detach returns the first min(len(d), len(s)) bytes of s, cloned if that
// window overlaps the same-sized window of d.
func detach(dst memrange.Addr, d []byte, src memrange.Addr, s []byte) []byte {
	n := min(len(d), len(s))
	s = s[:n]
	if Overlaps(dst, dst+memrange.Addr(n), src, src+memrange.Addr(n)) {
		return bytes.Clone(s)
	}
	return s
}

// Overlaps reports whether [a, aEnd) and [b, bEnd) share at least one address.
func Overlaps(a, aEnd, b, bEnd memrange.Addr) bool {
	return a < bEnd && b < aEnd
}

// Set fills [dst, dstEnd) with v.
func Set(m Memory, dst, dstEnd memrange.Addr, v byte) error {
	d, err := bytesOf(m, "set", dst, dstEnd)
	if err != nil {
		return err
	}
	bytealg.Fill(d, v)
	return nil
}

// SetPattern tiles [pattern, patternEnd) across [dst, dstEnd), truncating the
// last tile. Filling a non-empty destination with an empty pattern fails with
// ErrZeroElementSize.
func SetPattern(m Memory, dst, dstEnd, pattern, patternEnd memrange.Addr) error {
	d, p, err := pair(m, "set pattern", dst, dstEnd, pattern, patternEnd)
	if err != nil {
		return err
	}
	if len(p) == 0 && len(d) > 0 {
		return fmt.Errorf("set pattern: empty pattern: %w", memrange.ErrZeroElementSize)
	}
	bytealg.FillPattern(d, p)
	return nil
}

// Compare returns the address in lhs of the first byte that differs from
// rhs, or Null if the compared bytes are equal.
func Compare(m Memory, lhs, lhsEnd, rhs, rhsEnd memrange.Addr) (memrange.Addr, error) {
	l, r, err := pair(m, "compare", lhs, lhsEnd, rhs, rhsEnd)
	if err != nil {
		return memrange.Null, err
	}
	return offsetOrNull(lhs, bytealg.FirstMismatch(l, r)), nil
}

// RCompare returns the address in lhs of the last byte that differs from rhs,
// or Null if the compared bytes are equal.
func RCompare(m Memory, lhs, lhsEnd, rhs, rhsEnd memrange.Addr) (memrange.Addr, error) {
	l, r, err := pair(m, "rcompare", lhs, lhsEnd, rhs, rhsEnd)
	if err != nil {
		return memrange.Null, err
	}
	return offsetOrNull(lhs, bytealg.LastMismatch(l, r)), nil
}

// Find returns the address in lhs of the first occurrence of rhs, or Null.
// An empty rhs is never found.
func Find(m Memory, lhs, lhsEnd, rhs, rhsEnd memrange.Addr) (memrange.Addr, error) {
	l, r, err := pair(m, "find", lhs, lhsEnd, rhs, rhsEnd)
	if err != nil {
		return memrange.Null, err
	}
	return offsetOrNull(lhs, bytealg.Index(l, r)), nil
}

// RFind returns the address in lhs of the last occurrence of rhs, or Null.
// An empty rhs is never found.
func RFind(m Memory, lhs, lhsEnd, rhs, rhsEnd memrange.Addr) (memrange.Addr, error) {
	l, r, err := pair(m, "rfind", lhs, lhsEnd, rhs, rhsEnd)
	if err != nil {
		return memrange.Null, err
	}
	return offsetOrNull(lhs, bytealg.LastIndex(l, r)), nil
}

func offsetOrNull(base memrange.Addr, i int) memrange.Addr {
	if i < 0 {
		return memrange.Null
	}
	return base + memrange.Addr(i)
}
