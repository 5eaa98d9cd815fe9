// Package bytealg implements the unchecked byte loops behind memops. Nothing
// here validates its arguments beyond what slicing enforces.
package bytealg

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const wordSize = 8

// Copy copies min(len(dst), len(src)) bytes forward and returns the count.
// Overlapping slices are handled like the builtin copy.
func Copy(dst, src []byte) int {
	return copy(dst, src)
}

// CopyBackward copies the same bytes as Copy, highest address first. It is
// correct for overlapping slices when dst starts after src.
func CopyBackward(dst, src []byte) int {
	n := min(len(dst), len(src))
	for i := n - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
	return n
}

// CopyReversed writes src into dst in reverse byte order, dst[i] =
// src[n-1-i]. dst and src must not overlap.
func CopyReversed(dst, src []byte) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
	return n
}

// Fill sets every byte of dst to v.
func Fill(dst []byte, v byte) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}

// FillPattern tiles pattern across dst, truncating the last tile. An empty
// pattern leaves dst unchanged.
func FillPattern(dst, pattern []byte) {
	if len(pattern) == 0 {
		return
	}
	n := copy(dst, pattern)
	for n < len(dst) {
		n += copy(dst[n:], dst[:n])
	}
}

// FirstMismatch returns the lowest index i < min(len(a), len(b)) with
// a[i] != b[i], or -1.
func FirstMismatch(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		if x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]); x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// LastMismatch returns the highest index i < min(len(a), len(b)) with
// a[i] != b[i], or -1.
func LastMismatch(a, b []byte) int {
	n := min(len(a), len(b))
	i := n
	for ; i-wordSize >= 0; i -= wordSize {
		j := i - wordSize
		if x := binary.LittleEndian.Uint64(a[j:]) ^ binary.LittleEndian.Uint64(b[j:]); x != 0 {
			return j + wordSize - 1 - bits.LeadingZeros64(x)/8
		}
	}
	for i--; i >= 0; i-- {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// Index returns the first index of needle in haystack, or -1. An empty needle
// is never found.
func Index(haystack, needle []byte) int {
	if len(needle) == 0 {
		return -1
	}
	return bytes.Index(haystack, needle)
}

// LastIndex returns the last index of needle in haystack, or -1. An empty
// needle is never found.
func LastIndex(haystack, needle []byte) int {
	if len(needle) == 0 {
		return -1
	}
	return bytes.LastIndex(haystack, needle)
}
