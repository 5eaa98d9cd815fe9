package memops

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/garethgeorge/gospan/internal/memrange"
)

type pairOp func(m Memory, a, aEnd, b, bEnd memrange.Addr) (memrange.Addr, error)

func onRanges(op pairOp, m Memory, a, b memrange.Range) (memrange.Addr, error) {
	aBegin, aEnd, err := a.Unpack()
	if err != nil {
		return memrange.Null, err
	}
	bBegin, bEnd, err := b.Unpack()
	if err != nil {
		return memrange.Null, err
	}
	return op(m, aBegin, aEnd, bBegin, bEnd)
}

func CopyRange(m Memory, dst, src memrange.Range) (memrange.Addr, error) {
	return onRanges(Copy, m, dst, src)
}

func CopyRevRange(m Memory, dst, src memrange.Range) (memrange.Addr, error) {
	return onRanges(CopyRev, m, dst, src)
}

func RCopyRange(m Memory, dst, src memrange.Range) (memrange.Addr, error) {
	return onRanges(RCopy, m, dst, src)
}

func MoveRange(m Memory, dst, src memrange.Range) (memrange.Addr, error) {
	return onRanges(Move, m, dst, src)
}

func CompareRange(m Memory, lhs, rhs memrange.Range) (memrange.Addr, error) {
	return onRanges(Compare, m, lhs, rhs)
}

func RCompareRange(m Memory, lhs, rhs memrange.Range) (memrange.Addr, error) {
	return onRanges(RCompare, m, lhs, rhs)
}

func FindRange(m Memory, lhs, rhs memrange.Range) (memrange.Addr, error) {
	return onRanges(Find, m, lhs, rhs)
}

func RFindRange(m Memory, lhs, rhs memrange.Range) (memrange.Addr, error) {
	return onRanges(RFind, m, lhs, rhs)
}

func SetRange(m Memory, dst memrange.Range, v byte) error {
	begin, end, err := dst.Unpack()
	if err != nil {
		return err
	}
	return Set(m, begin, end, v)
}

func SetPatternRange(m Memory, dst, pattern memrange.Range) error {
	_, err := onRanges(func(m Memory, d, dEnd, p, pEnd memrange.Addr) (memrange.Addr, error) {
		return memrange.Null, SetPattern(m, d, dEnd, p, pEnd)
	}, m, dst, pattern)
	return err
}

// Equal reports whether a and b have the same size and contents.
func Equal(m Memory, a, b memrange.Range) (bool, error) {
	aSize, err := a.Size()
	if err != nil {
		return false, err
	}
	bSize, err := b.Size()
	if err != nil {
		return false, err
	}
	if aSize != bSize {
		return false, nil
	}
	mismatch, err := CompareRange(m, a, b)
	if err != nil {
		return false, err
	}
	return mismatch == memrange.Null, nil
}

// Sum64 returns the xxhash64 digest of the bytes of r.
func Sum64(m Memory, r memrange.Range) (uint64, error) {
	begin, end, err := r.Unpack()
	if err != nil {
		return 0, err
	}
	b, err := bytesOf(m, "sum64", begin, end)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", r, err)
	}
	return xxhash.Sum64(b), nil
}
