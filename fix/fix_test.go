// seehuhn.de/go/stlvec - draw STL meshes as vector line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fix

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 2, 100, -100, 32767, -32768, 1234, -4321} {
		assert.Equal(t, n, FromInt(n).Int(), "n=%d", n)
	}
}

func TestIntFloors(t *testing.T) {
	assert.Equal(t, -1, Fix(-1).Int())
	assert.Equal(t, -2, (FromInt(-1) - Half).Int())
	assert.Equal(t, 1, (One + Half).Int())
}

func TestAddSubWrap(t *testing.T) {
	assert.Equal(t, FromInt(3), Add(FromInt(1), FromInt(2)))
	assert.Equal(t, FromInt(-1), Sub(FromInt(1), FromInt(2)))
	assert.Equal(t, Min, Add(Max, 1))
}

func TestMulIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	values := []Fix{0, 1, -1, One, -One, Half, Max, Min, 0x12345678, -0x12345678}
	for range 1000 {
		values = append(values, Fix(rng.Uint32()))
	}
	for _, x := range values {
		require.Equal(t, x, Mul(x, One), "x=%#x", int32(x))
		require.Equal(t, x, Mul(One, x), "x=%#x", int32(x))
	}
}

// mulWide is the straightforward 64-bit reference for Mul.
func mulWide(a, b Fix) Fix {
	return Fix(int32((int64(a) * int64(b)) >> Shift))
}

func TestMulMatchesWideProduct(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		// keep the product inside the Q16.16 range
		a := Fix(int32(rng.Uint32()) >> 8)
		b := Fix(int32(rng.Uint32()) >> 9)
		require.Equal(t, mulWide(a, b), Mul(a, b), "a=%#x b=%#x", int32(a), int32(b))
	}
}

func TestMulExamples(t *testing.T) {
	cases := []struct {
		a, b, want Fix
	}{
		{FromInt(2), FromInt(3), FromInt(6)},
		{FromInt(-2), FromInt(3), FromInt(-6)},
		{FromInt(-2), FromInt(-3), FromInt(6)},
		{Half, Half, One >> 2},
		{FromInt(100), Half, FromInt(50)},
		{-Half, Half, -(One >> 2)},
		{0, Max, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Mul(c.a, c.b), "%v*%v", c.a, c.b)
	}
}

func TestMulChecked(t *testing.T) {
	_, err := MulChecked(FromInt(200), FromInt(200))
	assert.ErrorIs(t, err, ErrOverflow)

	p, err := MulChecked(FromInt(100), FromInt(-200))
	require.NoError(t, err)
	assert.Equal(t, FromInt(-20000), p)

	// the middle partial products sum to more than 32 bits here, but
	// the product itself is in range
	a := Fix(-0x7FFF0001)
	p, err = MulChecked(a, -1)
	require.NoError(t, err)
	assert.Equal(t, Fix(0x7FFF), p)
	assert.Equal(t, Fix(0x7FFF), Mul(a, -1))
}

func TestMulCheckedMatchesWideProduct(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for range 10000 {
		a := Fix(rng.Uint32())
		b := Fix(int32(rng.Uint32()) >> rng.IntN(32))
		want := (int64(a) * int64(b)) >> Shift
		p, err := MulChecked(a, b)
		if want > int64(Max) || want < int64(Min) {
			require.ErrorIs(t, err, ErrOverflow, "a=%#x b=%#x", int32(a), int32(b))
			continue
		}
		require.NoError(t, err, "a=%#x b=%#x", int32(a), int32(b))
		require.Equal(t, Fix(want), p, "a=%#x b=%#x", int32(a), int32(b))
	}
}

func TestDivExamples(t *testing.T) {
	cases := []struct {
		a, b, want Fix
	}{
		{FromInt(6), FromInt(3), FromInt(2)},
		{FromInt(1), FromInt(2), Half},
		{FromInt(-1), FromInt(2), -Half},
		{FromInt(1), FromInt(-4), -(One >> 2)},
		{FromInt(-9), FromInt(-3), FromInt(3)},
		{0, FromInt(7), 0},
		{5, 10, 0x8000},
		{25, 100, 0x4000},
		{FromInt(100), Half, FromInt(200)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Div(c.a, c.b), "%v/%v", c.a, c.b)
	}
}

func TestDivTruncatesTowardsZero(t *testing.T) {
	third := Div(One, FromInt(3))
	assert.Equal(t, Fix(0x5555), third)
	assert.Equal(t, Fix(-0x5555), Div(-One, FromInt(3)))
}

func TestDivMatchesWideQuotient(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10000 {
		a := Fix(int32(rng.Uint32()) >> 4)
		b := Fix(int32(rng.Uint32()) >> 4)
		if b == 0 {
			continue
		}
		want := (int64(a) << Shift) / int64(b)
		if want > int64(Max) || want < int64(Min) {
			continue
		}
		require.Equal(t, Fix(want), Div(a, b), "a=%#x b=%#x", int32(a), int32(b))
	}
}

func TestDivMulInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 5000 {
		a := Fix(int32(rng.Uint32()) >> 10)
		b := Fix(int32(rng.Uint32()) >> 10)
		if b == 0 {
			continue
		}
		q, err := DivChecked(a, b)
		if err != nil {
			continue
		}
		got := Mul(q, b)
		diff := int64(got) - int64(a)
		if diff < 0 {
			diff = -diff
		}
		// the quotient is exact to one unit; multiplying by b scales
		// that error by |b|, and the product adds one more unit
		bound := int64(Abs(b))>>Shift + 2
		require.LessOrEqual(t, diff, bound, "a=%v b=%v q=%v", a, b, q)
	}

	// for |b| <= 1 the inverse holds to within one unit
	for range 5000 {
		a := Fix(int32(rng.Uint32()) >> 12)
		b := Fix(rng.Int32N(int32(One))) + 1
		q, err := DivChecked(a, b)
		if err != nil {
			continue
		}
		diff := int64(Mul(q, b)) - int64(a)
		require.True(t, diff >= -1 && diff <= 1, "a=%v b=%v diff=%d", a, b, diff)
	}
}

func TestDivChecked(t *testing.T) {
	_, err := DivChecked(One, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = DivChecked(FromInt(30000), Fix(1))
	assert.ErrorIs(t, err, ErrOverflow)

	q, err := DivChecked(FromInt(-32768), One)
	require.NoError(t, err)
	assert.Equal(t, Min, q)
	q, err = DivChecked(FromInt(-32768), -One)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, Overflow, q)
	q, err = DivChecked(FromInt(16384), -Half)
	require.NoError(t, err)
	assert.Equal(t, Min, q)

	assert.Panics(t, func() { Div(One, 0) })
	assert.Equal(t, Overflow, Div(FromInt(30000), Fix(1)))
}

func TestFloatConversion(t *testing.T) {
	assert.Equal(t, Half, FromFloat64(0.5))
	assert.Equal(t, FromInt(-3), FromFloat64(-3))
	assert.InDelta(t, 1.25, (One + One>>2).Float64(), 0)
	assert.Equal(t, "-2.5", (FromInt(-2) - Half).String())
}

func BenchmarkMul(b *testing.B) {
	x, y := FromFloat64(12.345), FromFloat64(-6.789)
	var sink Fix
	for b.Loop() {
		sink += Mul(x, y)
	}
	_ = sink
}

func BenchmarkDiv(b *testing.B) {
	x, y := FromFloat64(12.345), FromFloat64(-6.789)
	var sink Fix
	for b.Loop() {
		sink += Div(x, y)
	}
	_ = sink
}
