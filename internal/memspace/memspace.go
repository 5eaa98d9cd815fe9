// Package memspace provides an address space for memrange: it hands out
// address ranges backed by Go byte slices and translates (begin, end) pairs
// back into those slices.
package memspace

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/btree"
	"go.uber.org/zap"

	"github.com/garethgeorge/gospan/internal/memrange"
)

var (
	// ErrUnmapped is returned for addresses that no live region covers.
	ErrUnmapped = errors.New("memspace: address not mapped")
	// ErrNotRegion is returned by Free for a range that is not exactly a
	// region returned by Alloc or Map.
	ErrNotRegion = errors.New("memspace: range is not a mapped region")
)

const (
	DefaultBase  memrange.Addr = 0x1000
	DefaultGuard uintptr       = 64
)

type region struct {
	base memrange.Addr
	data []byte
}

func (r region) end() memrange.Addr {
	return r.base + memrange.Addr(len(r.data))
}

func (r region) rng() memrange.Range {
	return memrange.Range{Begin: r.base, End: r.end()}
}

// Space maps address ranges to byte slices. Addresses are handed out by a
// bump cursor and never reused, and consecutive regions are separated by an
// unmapped guard gap so that the one-past-end address of a region never
// belongs to another region. Address Null is never mapped.
// It is not thread-safe.
type Space struct {
	next  memrange.Addr
	guard uintptr

	regions *btree.BTreeG[region]
	mapped  uintptr

	log *zap.Logger
}

type Option func(*Space)

// WithBase sets the first address handed out. It must not be Null.
func WithBase(base memrange.Addr) Option {
	return func(s *Space) {
		if base != memrange.Null {
			s.next = base
		}
	}
}

// WithGuard sets the unmapped gap left after each region. The gap is at least
// one byte.
func WithGuard(n uintptr) Option {
	return func(s *Space) {
		s.guard = max(n, 1)
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Space) {
		if log != nil {
			s.log = log
		}
	}
}

func New(opts ...Option) *Space {
	s := &Space{
		next:    DefaultBase,
		guard:   DefaultGuard,
		regions: btree.NewG(32, func(a, b region) bool { return a.base < b.base }),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Alloc maps a new zeroed region of size bytes whose first address is a
// multiple of align.
func (s *Space) Alloc(size, align uintptr) (memrange.Range, error) {
	r, err := s.reserve(size, align)
	if err != nil {
		return memrange.Range{}, err
	}
	s.insert(region{base: r.Begin, data: make([]byte, size)})
	return r, nil
}

// Map maps buf itself, without copying, at a new address range. Writes
// through the space are visible in buf and vice versa.
func (s *Space) Map(buf []byte) (memrange.Range, error) {
	r, err := s.reserve(uintptr(len(buf)), 1)
	if err != nil {
		return memrange.Range{}, err
	}
	s.insert(region{base: r.Begin, data: buf[:len(buf):len(buf)]})
	return r, nil
}

func (s *Space) reserve(size, align uintptr) (memrange.Range, error) {
	if !memrange.IsPowerOfTwo(align) {
		return memrange.Range{}, fmt.Errorf("alloc: alignment %d: %w", align, memrange.ErrNotPowerOfTwo)
	}
	begin, err := s.next.Add(align - 1)
	if err != nil {
		return memrange.Range{}, fmt.Errorf("alloc: %w", err)
	}
	begin &^= memrange.Addr(align - 1)

	r, err := memrange.FromSize(begin, size)
	if err != nil {
		return memrange.Range{}, fmt.Errorf("alloc %d bytes: %w", size, err)
	}
	next, err := r.End.Add(s.guard)
	if err != nil {
		return memrange.Range{}, fmt.Errorf("alloc %d bytes: %w", size, err)
	}
	s.next = next
	return r, nil
}

func (s *Space) insert(reg region) {
	s.regions.ReplaceOrInsert(reg)
	s.mapped += uintptr(len(reg.data))
	s.log.Debug("mapped region", zap.Stringer("range", reg.rng()), zap.Int("size", len(reg.data)))
}

// Free unmaps a region. r must be exactly a range returned by Alloc or Map.
func (s *Space) Free(r memrange.Range) error {
	if _, _, err := r.Unpack(); err != nil {
		return fmt.Errorf("free: %w", err)
	}
	reg, found := s.regions.Get(region{base: r.Begin})
	if !found || reg.end() != r.End {
		s.log.Warn("free of unknown region", zap.Stringer("range", r))
		return fmt.Errorf("free %v: %w", r, ErrNotRegion)
	}
	s.regions.Delete(reg)
	s.mapped -= uintptr(len(reg.data))
	s.log.Debug("unmapped region", zap.Stringer("range", r))
	return nil
}

// find returns the region with the highest base <= p.
func (s *Space) find(p memrange.Addr) (region, bool) {
	var found region
	var ok bool
	s.regions.DescendLessOrEqual(region{base: p}, func(item region) bool {
		found = item
		ok = true
		return false
	})
	return found, ok
}

// Resolve returns the region containing p. The one-past-end address of a
// region resolves to that region.
func (s *Space) Resolve(p memrange.Addr) (memrange.Range, error) {
	reg, ok := s.find(p)
	if !ok || p > reg.end() {
		return memrange.Range{}, fmt.Errorf("resolve %v: %w", p, ErrUnmapped)
	}
	return reg.rng(), nil
}

// Bytes returns the live bytes of [begin, end). The pair must be a valid
// range lying within a single region. The returned slice has no spare
// capacity.
func (s *Space) Bytes(begin, end memrange.Addr) ([]byte, error) {
	r, err := memrange.Make(begin, end)
	if err != nil {
		return nil, err
	}
	reg, ok := s.find(begin)
	if !ok || end > reg.end() {
		return nil, fmt.Errorf("bytes %v: %w", r, ErrUnmapped)
	}
	lo := begin.Diff(reg.base)
	hi := end.Diff(reg.base)
	return reg.data[lo:hi:hi], nil
}

// Regions yields the mapped regions in address order.
func (s *Space) Regions() iter.Seq[memrange.Range] {
	return func(yield func(memrange.Range) bool) {
		s.regions.Ascend(func(item region) bool {
			return yield(item.rng())
		})
	}
}

// Len returns the number of mapped regions.
func (s *Space) Len() int {
	return s.regions.Len()
}

// MappedBytes returns the total size of all mapped regions.
func (s *Space) MappedBytes() uintptr {
	return s.mapped
}
