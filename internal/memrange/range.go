// Package memrange implements a non-owning view of a contiguous byte span
// described by a (begin, end) address pair.
//
// A Range distinguishes "never initialized" from "initialized but empty" from
// malformed pairs; see [State]. Every operation that does arithmetic on the
// addresses checks validity first and returns an error wrapping one of the
// package sentinels instead of touching anything.
package memrange

import (
	"fmt"

	"github.com/garethgeorge/gospan/internal/interval"
)

// Range is the half-open byte span [Begin, End). The zero value is
// Uninitialized.
type Range struct {
	Begin Addr
	End   Addr
}

// Make returns the range [begin, end), which must be Empty or HasData.
func Make(begin, end Addr) (Range, error) {
	r := Range{Begin: begin, End: end}
	if err := r.check("make"); err != nil {
		return Range{}, err
	}
	return r, nil
}

// FromSize returns the range [begin, begin+size).
func FromSize(begin Addr, size uintptr) (Range, error) {
	if begin == Null {
		return Range{}, fmt.Errorf("from size: begin: %w", ErrNullPointer)
	}
	end, err := begin.Add(size)
	if err != nil {
		return Range{}, fmt.Errorf("from size: %w", err)
	}
	return Range{Begin: begin, End: end}, nil
}

func (r Range) check(op string) error {
	if s := r.State(); !s.Valid() {
		return fmt.Errorf("%s: %v is %v: %w", op, r, s, ErrInvalidMemoryRange)
	}
	return nil
}

// Reset points r at [begin, end). r is left unchanged on error.
func (r *Range) Reset(begin, end Addr) error {
	if r == nil {
		return fmt.Errorf("reset: %w", ErrNullPointer)
	}
	nr, err := Make(begin, end)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// ResetFromSize points r at [begin, begin+size). r is left unchanged on error.
func (r *Range) ResetFromSize(begin Addr, size uintptr) error {
	if r == nil {
		return fmt.Errorf("reset from size: %w", ErrNullPointer)
	}
	nr, err := FromSize(begin, size)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// TryReset is Reset, except that a pair that is not valid clears r instead of
// failing. It reports whether r now holds [begin, end).
func (r *Range) TryReset(begin, end Addr) bool {
	if r == nil {
		return false
	}
	if err := r.Reset(begin, end); err != nil {
		r.Clear()
		return false
	}
	return true
}

func (r Range) State() State {
	return StateOf(r.Begin, r.End)
}

func (r Range) IsUninitialized() bool { return r.State() == Uninitialized }
func (r Range) IsEmpty() bool         { return r.State() == Empty }
func (r Range) HasData() bool         { return r.State() == HasData }

// IsInvalid reports whether r is Uninitialized or malformed.
func (r Range) IsInvalid() bool { return !r.IsValid() }

// IsValid reports whether r is Empty or HasData.
func (r Range) IsValid() bool { return r.State().Valid() }

// Unpack returns the bounds of a valid range. Everything that does arithmetic
// on a range goes through here.
func (r Range) Unpack() (begin, end Addr, err error) {
	if err := r.check("unpack"); err != nil {
		return Null, Null, err
	}
	return r.Begin, r.End, nil
}

// Size returns the number of bytes in the range.
func (r Range) Size() (uintptr, error) {
	begin, end, err := r.Unpack()
	if err != nil {
		return 0, err
	}
	return end.Diff(begin), nil
}

// IsAligned reports whether Begin is a multiple of align, which must be a
// power of two.
func (r Range) IsAligned(align uintptr) (bool, error) {
	begin, _, err := r.Unpack()
	if err != nil {
		return false, err
	}
	if !IsPowerOfTwo(align) {
		return false, fmt.Errorf("alignment %d: %w", align, ErrNotPowerOfTwo)
	}
	return uintptr(begin)&(align-1) == 0, nil
}

// IsMultipleOf reports whether the size of r is a multiple of elemSize.
func (r Range) IsMultipleOf(elemSize uintptr) (bool, error) {
	size, err := r.Size()
	if err != nil {
		return false, err
	}
	if elemSize == 0 {
		return false, fmt.Errorf("multiple of: %w", ErrZeroElementSize)
	}
	return size%elemSize == 0, nil
}

// AtFromFront returns Begin+offset. offset must be less than the size.
func (r Range) AtFromFront(offset uintptr) (Addr, error) {
	size, err := r.Size()
	if err != nil {
		return Null, err
	}
	if offset >= size {
		return Null, fmt.Errorf("offset %d in %v (size %d): %w", offset, r, size, ErrOutOfRange)
	}
	return r.Begin + Addr(offset), nil
}

// AtFromBack returns the address offset bytes before the last byte.
func (r Range) AtFromBack(offset uintptr) (Addr, error) {
	size, err := r.Size()
	if err != nil {
		return Null, err
	}
	if offset >= size {
		return Null, fmt.Errorf("offset %d from back of %v (size %d): %w", offset, r, size, ErrOutOfRange)
	}
	return r.AtFromFront(size - (offset + 1))
}

func (r Range) At(offset uintptr, reversed bool) (Addr, error) {
	if reversed {
		return r.AtFromBack(offset)
	}
	return r.AtFromFront(offset)
}

// Front returns the address of the first byte.
func (r Range) Front() (Addr, error) { return r.At(0, false) }

// Back returns the address of the last byte.
func (r Range) Back() (Addr, error) { return r.At(0, true) }

// ContainsAddr reports whether p lies in [Begin, End). A range that is not
// HasData contains nothing.
func (r Range) ContainsAddr(p Addr) bool {
	if !r.HasData() {
		return false
	}
	return interval.Contains(interval.OpenRight, r.Begin, p, r.End)
}

// ContainsRange reports whether [begin, end) is a valid span inside r. An
// empty r contains nothing, not even itself.
//
// begin must be a byte of r, but end is tested against the closed [Begin, End]
// so that a span may end exactly where r ends. A non-empty range therefore
// contains itself.
func (r Range) ContainsRange(begin, end Addr) bool {
	if !r.ContainsAddr(begin) || begin > end {
		return false
	}
	return interval.Contains(interval.Closed, r.Begin, end, r.End)
}

func (r Range) Contains(other Range) bool {
	return r.ContainsRange(other.Begin, other.End)
}

// Assign copies other into r without checking it. It is a no-op on a nil r;
// use AssignChecked to get ErrNullPointer instead.
func (r *Range) Assign(other Range) {
	if r == nil {
		return
	}
	*r = other
}

// AssignChecked copies other into r if other is valid.
func (r *Range) AssignChecked(other Range) error {
	if r == nil {
		return fmt.Errorf("assign: %w", ErrNullPointer)
	}
	if err := other.check("assign"); err != nil {
		return err
	}
	*r = other
	return nil
}

// Clear makes r Uninitialized. It is a no-op on a nil r.
func (r *Range) Clear() {
	if r == nil {
		return
	}
	*r = Range{}
}

func (r *Range) Swap(other *Range) error {
	if r == nil || other == nil {
		return fmt.Errorf("swap: %w", ErrNullPointer)
	}
	*r, *other = *other, *r
	return nil
}

// Exchange moves other into r and leaves other Uninitialized.
func (r *Range) Exchange(other *Range) error {
	if r == nil || other == nil {
		return fmt.Errorf("exchange: %w", ErrNullPointer)
	}
	r.Clear()
	return r.Swap(other)
}

// Slice returns [At(offset), At(offset)+size). offset must address a byte of
// r and the slice must end within r.
func (r Range) Slice(offset, size uintptr) (Range, error) {
	begin, err := r.AtFromFront(offset)
	if err != nil {
		return Range{}, err
	}
	total, _ := r.Size()
	if size > total-offset {
		return Range{}, fmt.Errorf("slice [%d, %d+%d) of %v (size %d): %w", offset, offset, size, r, total, ErrOutOfRange)
	}
	return Range{Begin: begin, End: begin + Addr(size)}, nil
}

// Equal reports whether both bounds match.
func (r Range) Equal(other Range) bool {
	return r.Begin == other.Begin && r.End == other.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.Begin, r.End)
}

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}
