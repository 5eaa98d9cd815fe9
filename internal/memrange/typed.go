package memrange

import "fmt"

// Typed is a Range holding a whole number of ElemSize-byte elements.
type Typed struct {
	Range
	ElemSize uintptr
}

// NewTyped returns r viewed as elements of elemSize bytes.
func NewTyped(r Range, elemSize uintptr) (Typed, error) {
	t := Typed{Range: r, ElemSize: elemSize}
	if err := t.Validate(); err != nil {
		return Typed{}, err
	}
	return t, nil
}

// TypedFromLen returns the typed region of n elements starting at begin.
func TypedFromLen(begin Addr, elemSize, n uintptr) (Typed, error) {
	if elemSize == 0 {
		return Typed{}, fmt.Errorf("typed from len: %w", ErrZeroElementSize)
	}
	if n > ^uintptr(0)/elemSize {
		return Typed{}, fmt.Errorf("typed from len: %d elements of %d bytes: %w", n, elemSize, ErrOverflow)
	}
	r, err := FromSize(begin, n*elemSize)
	if err != nil {
		return Typed{}, err
	}
	return Typed{Range: r, ElemSize: elemSize}, nil
}

// Validate checks that the element size is non-zero, the range is valid and
// its size is a multiple of the element size.
func (t Typed) Validate() error {
	if t.ElemSize == 0 {
		return fmt.Errorf("typed %v: %w", t.Range, ErrZeroElementSize)
	}
	ok, err := t.IsMultipleOf(t.ElemSize)
	if err != nil {
		return err
	}
	if !ok {
		size, _ := t.Size()
		return fmt.Errorf("typed %v: size %d is not a multiple of %d: %w", t.Range, size, t.ElemSize, ErrInvalidMemoryRange)
	}
	return nil
}

// Len returns the number of elements.
func (t Typed) Len() (uintptr, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	size, _ := t.Size()
	return size / t.ElemSize, nil
}

// At returns the address of element i, counted from the back if reversed.
func (t Typed) At(i uintptr, reversed bool) (Addr, error) {
	n, err := t.Len()
	if err != nil {
		return Null, err
	}
	if i >= n {
		return Null, fmt.Errorf("index %d of %d elements: %w", i, n, ErrOutOfRange)
	}
	if reversed {
		i = n - 1 - i
	}
	return t.Begin + Addr(i*t.ElemSize), nil
}

func (t Typed) Front() (Addr, error) { return t.At(0, false) }
func (t Typed) Back() (Addr, error)  { return t.At(0, true) }

// Element returns the byte range of element i.
func (t Typed) Element(i uintptr) (Range, error) {
	begin, err := t.At(i, false)
	if err != nil {
		return Range{}, err
	}
	return Range{Begin: begin, End: begin + Addr(t.ElemSize)}, nil
}

// Slice returns elements [i, i+n).
func (t Typed) Slice(i, n uintptr) (Typed, error) {
	total, err := t.Len()
	if err != nil {
		return Typed{}, err
	}
	if i >= total || n > total-i {
		return Typed{}, fmt.Errorf("slice [%d, %d+%d) of %d elements: %w", i, i, n, total, ErrOutOfRange)
	}
	r, err := t.Range.Slice(i*t.ElemSize, n*t.ElemSize)
	if err != nil {
		return Typed{}, err
	}
	return Typed{Range: r, ElemSize: t.ElemSize}, nil
}

// SameElemSize fails with ErrDifferentElementSize unless a and b use the same
// element size.
func SameElemSize(a, b Typed) error {
	if a.ElemSize != b.ElemSize {
		return fmt.Errorf("%d vs %d bytes: %w", a.ElemSize, b.ElemSize, ErrDifferentElementSize)
	}
	return nil
}

func (t Typed) String() string {
	return fmt.Sprintf("%v/%d", t.Range, t.ElemSize)
}
