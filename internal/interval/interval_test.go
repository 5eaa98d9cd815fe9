package interval

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestContains(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		for _, top := range Topologies {
			for lo := -5; lo <= 5; lo++ {
				for hi := lo; hi <= lo+5; hi++ {
					wantLo := top == Closed || top == OpenRight
					wantHi := top == Closed || top == OpenLeft
					if lo == hi {
						// A single point can only be a member if both bounds include it.
						wantLo = top == Closed
						wantHi = top == Closed
					}
					assert.Equal(t, wantLo, Contains(top, lo, lo, hi), "%s lo=%d hi=%d", top, lo, hi)
					assert.Equal(t, wantHi, Contains(top, lo, hi, hi), "%s lo=%d hi=%d", top, lo, hi)
				}
			}
		}
	})

	t.Run("interior", func(t *testing.T) {
		for _, top := range Topologies {
			assert.True(t, Contains(top, 0, 5, 10), top.String())
			assert.False(t, Contains(top, 0, -1, 10), top.String())
			assert.False(t, Contains(top, 0, 11, 10), top.String())
		}
	})

	t.Run("floats", func(t *testing.T) {
		assert.True(t, Contains(Closed, 0.5, 0.5, 1.5))
		assert.False(t, Contains(OpenLeft, 0.5, 0.5, 1.5))
		assert.True(t, Contains(Open, 0.5, 0.75, 1.5))
		assert.False(t, Contains(OpenRight, 0.5, 1.5, 1.5))
	})

	t.Run("unknown topology", func(t *testing.T) {
		assert.False(t, Contains(Topology(9), 0, 5, 10))
		assert.False(t, IsValid(Topology(9), 0, 10))
		assert.False(t, ContainsRange(Topology(9), 0, 10, 1, 2))
	})
}

func TestIsValid(t *testing.T) {
	testCases := []struct {
		top    Topology
		lo, hi int
		want   bool
	}{
		{Closed, 1, 1, true},
		{OpenRight, 1, 1, true},
		{OpenLeft, 1, 1, false},
		{Open, 1, 1, false},
		{Closed, 2, 1, false},
		{Open, 1, 2, true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsValid(tc.top, tc.lo, tc.hi), "%s %d %d", tc.top, tc.lo, tc.hi)
	}
}

func TestContainsRange(t *testing.T) {
	assert.True(t, ContainsRange(Closed, 0, 10, 0, 10))
	assert.False(t, ContainsRange(OpenRight, 0, 10, 0, 10))
	assert.True(t, ContainsRange(OpenRight, 0, 10, 0, 9))
	assert.False(t, ContainsRange(OpenLeft, 0, 10, 0, 10))
	assert.True(t, ContainsRange(Open, 0, 10, 1, 9))
	// Endpoint membership only: a reversed inner pair still has both
	// endpoints inside.
	assert.True(t, ContainsRange(Closed, 0, 10, 8, 2))
}

func TestSizeAndCapacity(t *testing.T) {
	for lo := int32(-20); lo <= 20; lo += 3 {
		for hi := lo; hi <= 40; hi += 7 {
			assert.Equal(t, hi-lo+1, Capacity(Closed, lo, hi))
			assert.Equal(t, hi-lo, Capacity(OpenLeft, lo, hi))
			assert.Equal(t, hi-lo, Capacity(OpenRight, lo, hi))
			assert.Equal(t, hi-lo-1, Capacity(Open, lo, hi))
		}
	}

	t.Run("reversed bounds", func(t *testing.T) {
		assert.Equal(t, int8(-5), Size(Closed, int8(10), int8(5)))
		assert.Equal(t, int8(-7), Size(Open, int8(10), int8(5)))
	})

	t.Run("effective bounds", func(t *testing.T) {
		assert.Equal(t, 0, EffectiveLower(Closed, 0))
		assert.Equal(t, 1, EffectiveLower(OpenLeft, 0))
		assert.Equal(t, 0, EffectiveLower(OpenRight, 0))
		assert.Equal(t, 10, EffectiveUpper(OpenLeft, 10))
		assert.Equal(t, 9, EffectiveUpper(OpenRight, 10))
		assert.Equal(t, 9, EffectiveUpper(Open, 10))
	})

	t.Run("unknown topology panics", func(t *testing.T) {
		assert.PanicsWithError(t, "interval: unknown topology: 7", func() { Size(Topology(7), 0, 1) })
	})
}

type wrapResult[T any] struct {
	Wrapped  T
	Overflow int64
}

func wrapOf[T constraints.Integer](top Topology, lo, hi, v T) wrapResult[T] {
	w, o := Wrap(top, lo, hi, v)
	return wrapResult[T]{w, o}
}

func TestWrap(t *testing.T) {
	t.Run("scenarios", func(t *testing.T) {
		testCases := []struct {
			name      string
			top       Topology
			lo, hi, v int8
			want      wrapResult[int8]
		}{
			{"inside", Closed, -10, 5, 0, wrapResult[int8]{0, 0}},
			{"one above", Closed, -10, 5, 6, wrapResult[int8]{-10, 1}},
			{"one below", Closed, -10, 5, -11, wrapResult[int8]{5, -1}},
			{"two cycles below", Closed, -10, 5, -27, wrapResult[int8]{5, -2}},
			{"open left excludes lower", OpenLeft, 0, 10, 0, wrapResult[int8]{10, -1}},
			{"open right excludes upper", OpenRight, 0, 10, 10, wrapResult[int8]{0, 1}},
			{"open excludes both", Open, 0, 10, 10, wrapResult[int8]{1, 1}},
			{"far above", Closed, -128, 127, 127, wrapResult[int8]{127, 0}},
			{"degenerate capacity", Open, 3, 3, 100, wrapResult[int8]{4, 96}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				if diff := cmp.Diff(tc.want, wrapOf(tc.top, tc.lo, tc.hi, tc.v)); diff != "" {
					t.Errorf("Wrap(%s, %d, %d, %d) diff (-want +got):\n%s", tc.top, tc.lo, tc.hi, tc.v, diff)
				}
			})
		}
	})

	t.Run("hours", func(t *testing.T) {
		assert.Equal(t, wrapResult[int]{23, -1}, wrapOf(Closed, 0, 23, -1))
		assert.Equal(t, wrapResult[int]{23, -2}, wrapOf(Closed, 0, 23, -25))
		assert.Equal(t, wrapResult[int]{1, 2}, wrapOf(Closed, 0, 23, 49))
	})

	t.Run("unsigned", func(t *testing.T) {
		assert.Equal(t, wrapResult[uint8]{10, 1}, wrapOf[uint8](Closed, 10, 20, 21))
		assert.Equal(t, wrapResult[uint8]{15, -1}, wrapOf[uint8](Closed, 10, 20, 4))
		assert.Equal(t, wrapResult[uint8]{13, 22}, wrapOf[uint8](Closed, 10, 20, 255))
	})

	t.Run("idempotent inside", func(t *testing.T) {
		for v := int16(-50); v <= 50; v++ {
			assert.Equal(t, wrapResult[int16]{v, 0}, wrapOf(Closed, -50, 50, v))
		}
	})

	t.Run("64-bit extremes", func(t *testing.T) {
		assert.Equal(t, wrapResult[int64]{0, math.MaxInt64}, wrapOf[int64](Closed, 0, 0, math.MaxInt64))
		assert.Equal(t, wrapResult[int64]{0, math.MinInt64}, wrapOf[int64](Closed, 0, 0, math.MinInt64))
		assert.Equal(t, wrapResult[uint64]{0, 1}, wrapOf[uint64](OpenRight, 0, math.MaxUint64, math.MaxUint64))
		assert.Equal(t, wrapResult[int64]{math.MaxInt64, -1}, wrapOf[int64](Closed, 0, math.MaxInt64, -1))
	})

	t.Run("overflow count out of range panics", func(t *testing.T) {
		require.PanicsWithError(t, "interval: overflow count out of range: wrapping into [0, 0]", func() {
			Wrap[uint64](Closed, 0, 0, math.MaxUint64)
		})
	})
}

// roundTrip checks v == wrapped + overflow*capacity using exact arithmetic.
func roundTrip[T constraints.Integer](t *testing.T, top Topology, lo, hi T, v *big.Int, wrapped T, overflow int64) {
	t.Helper()
	effLo, effHi := effectiveBounds(top, lo, hi)
	capacity := new(big.Int).Sub(bigOf(effHi), bigOf(effLo))
	capacity.Add(capacity, big.NewInt(1))
	if capacity.Sign() <= 0 {
		capacity.SetInt64(1)
	}

	got := new(big.Int).Mul(big.NewInt(overflow), capacity)
	got.Add(got, bigFromInt(wrapped))
	require.Zero(t, got.Cmp(v), "%s%d, %d%s: %s rebuilt as %s", openBracket(top), lo, hi, closeBracket(top), v, got)
	require.True(t, Contains(top, lo, wrapped, hi), "%s %d..%d wrapped=%d", top, lo, hi, wrapped)
}

func bigOf(z *uint256.Int) *big.Int {
	if z.Sign() >= 0 {
		return z.ToBig()
	}
	return new(big.Int).Neg(new(uint256.Int).Neg(z).ToBig())
}

func bigFromInt[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func TestWrapRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests

	t.Run("int8 exhaustive", func(t *testing.T) {
		for _, top := range Topologies {
			for _, b := range [][2]int8{{-10, 5}, {0, 10}, {0, 2}, {-128, 127}, {100, 120}} {
				for v := math.MinInt8; v <= math.MaxInt8; v++ {
					w, o := Wrap(top, b[0], b[1], int8(v))
					roundTrip(t, top, b[0], b[1], big.NewInt(int64(v)), w, o)
				}
			}
		}
	})

	t.Run("int64 random", func(t *testing.T) {
		for range 2000 {
			lo := rng.Int64() >> rng.IntN(63)
			hi := lo + rng.Int64N(1<<20) + 2
			if hi < lo {
				continue
			}
			v := int64(rng.Uint64())
			top := Topologies[rng.IntN(len(Topologies))]
			w, o := Wrap(top, lo, hi, v)
			roundTrip(t, top, lo, hi, big.NewInt(v), w, o)
		}
	})

	t.Run("uint32 random", func(t *testing.T) {
		for range 2000 {
			lo := rng.Uint32() >> 4
			hi := lo + rng.Uint32N(1<<16) + 2
			v := rng.Uint32()
			top := Topologies[rng.IntN(len(Topologies))]
			w, o := Wrap(top, lo, hi, v)
			roundTrip(t, top, lo, hi, new(big.Int).SetUint64(uint64(v)), w, o)
		}
	})
}

func TestClamp(t *testing.T) {
	v := int8(-27)
	assert.Equal(t, int64(-2), ClampClosed[int8](-10, 5, &v))
	assert.Equal(t, int8(5), v)

	v = 0
	assert.Equal(t, int64(-1), ClampOpenLeft[int8](0, 10, &v))
	assert.Equal(t, int8(10), v)

	v = 10
	assert.Equal(t, int64(1), ClampOpenRight[int8](0, 10, &v))
	assert.Equal(t, int8(0), v)

	v = 0
	assert.Equal(t, int64(-1), ClampOpen[int8](0, 10, &v))
	assert.Equal(t, int8(9), v)

	v = 3
	assert.Zero(t, ClampOpen[int8](0, 10, &v))
	assert.Equal(t, int8(3), v)
}

func TestArithmetic(t *testing.T) {
	type op struct {
		name  string
		fn    func(Topology, int16, int16, int16, int16) (int16, int64)
		exact func(a, b int64) int64
	}
	ops := []op{
		{"Add", Add[int16], func(a, b int64) int64 { return a + b }},
		{"Sub", Sub[int16], func(a, b int64) int64 { return a - b }},
		{"Mul", Mul[int16], func(a, b int64) int64 { return a * b }},
		{"Div", Div[int16], func(a, b int64) int64 { return a / b }},
	}

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // Reproducibility is valuable for tests
	for _, o := range ops {
		for _, top := range Topologies {
			t.Run(o.name+"/"+top.String(), func(t *testing.T) {
				for range 500 {
					lo := int16(rng.IntN(200) - 100)
					hi := lo + int16(rng.IntN(50)) + 2
					a := int16(rng.Uint32())
					b := int16(rng.Uint32())
					if b == 0 {
						b = 1
					}
					w, ovf := o.fn(top, lo, hi, a, b)
					roundTrip(t, top, lo, hi, big.NewInt(o.exact(int64(a), int64(b))), w, ovf)
				}
			})
		}
	}

	t.Run("Mul does not overflow the operand type", func(t *testing.T) {
		w, o := Mul[int64](Closed, 0, 9, math.MaxInt64, 10)
		roundTrip(t, Closed, 0, 9, new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(10)), w, o)
	})

	t.Run("Div by zero", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrDivideByZero, func() { Div(Closed, 0, 10, 5, 0) })
	})
}

func TestInterval(t *testing.T) {
	r := New[int32](OpenRight, 0, 10)
	assert.True(t, r.IsValid())
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(10))
	assert.True(t, r.ContainsInterval(New[int32](Closed, 2, 9)))
	assert.Equal(t, int32(10), r.Capacity())
	assert.Equal(t, int32(9), r.Size())
	assert.Equal(t, int32(0), r.EffectiveLower())
	assert.Equal(t, int32(9), r.EffectiveUpper())
	assert.Equal(t, "[0, 10)", r.String())

	w, o := r.Add(7, 5)
	assert.Equal(t, int32(2), w)
	assert.Equal(t, int64(1), o)

	w, o = r.Sub(3, 5)
	assert.Equal(t, int32(8), w)
	assert.Equal(t, int64(-1), o)

	w, o = r.Mul(7, 7)
	assert.Equal(t, int32(9), w)
	assert.Equal(t, int64(4), o)

	w, o = r.Div(-35, 2)
	assert.Equal(t, int32(3), w)
	assert.Equal(t, int64(-2), o)

	v := int32(25)
	assert.Equal(t, int64(2), r.Clamp(&v))
	assert.Equal(t, int32(5), v)

	w, o = r.Wrap(-1)
	assert.Equal(t, int32(9), w)
	assert.Equal(t, int64(-1), o)
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := []struct {
			in   string
			want Interval[int16]
		}{
			{"[0, 10)", New[int16](OpenRight, 0, 10)},
			{"(-3,7]", New[int16](OpenLeft, -3, 7)},
			{" ( -32768 , 32767 ) ", New[int16](Open, math.MinInt16, math.MaxInt16)},
			{"[5,5]", New[int16](Closed, 5, 5)},
		}
		for _, tc := range testCases {
			got, err := Parse[int16](tc.in)
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got)

			again, err := Parse[int16](got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "[", "{0,1}", "[0 1]", "[,1]", "[0,]", "[0,40000]", "[a,1)"} {
			_, err := Parse[int16](in)
			assert.Error(t, err, in)
		}
		_, err := Parse[uint8]("[-1,3]")
		assert.Error(t, err)
	})
}

func TestTopology(t *testing.T) {
	for _, top := range Topologies {
		assert.True(t, top.Known())
		open, close := top.Brackets()
		got, ok := topologyOf(open[0], close[0])
		require.True(t, ok)
		assert.Equal(t, top, got)
	}
	assert.False(t, Topology(4).Known())
	assert.PanicsWithError(t, "interval: unknown topology: 4", func() { Topology(4).LowerInclusive() })
	assert.PanicsWithError(t, "interval: unknown topology: 4", func() { Topology(4).UpperInclusive() })
	assert.True(t, OpenRight.LowerInclusive())
	assert.False(t, OpenRight.UpperInclusive())
	assert.False(t, OpenLeft.LowerInclusive())
	assert.True(t, OpenLeft.UpperInclusive())
	assert.Equal(t, "Topology(4)", Topology(4).String())
	assert.Equal(t, "open-right", OpenRight.String())
}
