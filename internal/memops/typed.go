package memops

import (
	"fmt"

	"github.com/garethgeorge/gospan/internal/memops/bytealg"
	"github.com/garethgeorge/gospan/internal/memrange"
)

func typedPair(m Memory, op string, dst, src memrange.Typed) ([]byte, []byte, error) {
	if err := memrange.SameElemSize(dst, src); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := dst.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := src.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return pair(m, op, dst.Begin, dst.End, src.Begin, src.End)
}

// CopyTyped copies min(dst len, src len) whole elements from src to dst. Both
// regions must use the same element size.
func CopyTyped(m Memory, dst, src memrange.Typed) (memrange.Addr, error) {
	d, s, err := typedPair(m, "copy typed", dst, src)
	if err != nil {
		return memrange.Null, err
	}
	return dst.Begin + memrange.Addr(bytealg.Copy(d, s)), nil
}

// CopyRevTyped copies whole elements from src to dst in reverse element order.
// The bytes within each element keep their order. Overlapping regions are
// read through a copy of src.
func CopyRevTyped(m Memory, dst, src memrange.Typed) (memrange.Addr, error) {
	d, s, err := typedPair(m, "copy rev typed", dst, src)
	if err != nil {
		return memrange.Null, err
	}
	s = detach(dst.Begin, d, src.Begin, s)
	es := int(dst.ElemSize)
	n := min(len(d), len(s)) / es
	for i := 0; i < n; i++ {
		j := n - 1 - i
		copy(d[i*es:(i+1)*es], s[j*es:(j+1)*es])
	}
	return dst.Begin + memrange.Addr(n*es), nil
}
