package interval

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Parse reads an interval written in bracket notation, e.g. "[0, 10)" or
// "(-3,7]". Whitespace around the bounds is ignored. Both bounds are required
// and must fit in T.
func Parse[T constraints.Integer](s string) (Interval[T], error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Interval[T]{}, fmt.Errorf("interval %q: too short", s)
	}
	t, ok := topologyOf(s[0], s[len(s)-1])
	if !ok {
		return Interval[T]{}, fmt.Errorf("interval %q: unknown brackets %c%c", s, s[0], s[len(s)-1])
	}

	lo, hi, found := strings.Cut(s[1:len(s)-1], ",")
	if !found {
		return Interval[T]{}, fmt.Errorf("interval %q: missing comma", s)
	}
	loV, err := parseBound[T](lo)
	if err != nil {
		return Interval[T]{}, fmt.Errorf("interval %q: lower bound: %w", s, err)
	}
	hiV, err := parseBound[T](hi)
	if err != nil {
		return Interval[T]{}, fmt.Errorf("interval %q: upper bound: %w", s, err)
	}
	return Interval[T]{Lo: loV, Hi: hiV, Topology: t}, nil
}

func parseBound[T constraints.Integer](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty bound")
	}
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8
	if signed[T]() {
		v, err := strconv.ParseInt(tok, 10, bitSize)
		return T(v), err
	}
	v, err := strconv.ParseUint(tok, 10, bitSize)
	return T(v), err
}

func signed[T constraints.Integer]() bool {
	var v T
	v--
	return v < 0
}
