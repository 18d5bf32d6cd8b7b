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

// Package fix implements Q16.16 fixed-point arithmetic using only 32-bit
// integer operations.
//
// A [Fix] value represents the real number raw/65536, with 16 integer bits
// (including the sign) and 16 fractional bits.  Addition and subtraction
// wrap around like ordinary int32 arithmetic.  [Mul] and [Div] are built
// from 32-bit partial products and a restoring shift-and-subtract division,
// so that results are bit-for-bit reproducible on targets without a wide
// multiplier or a hardware divider.
package fix

import (
	"errors"
	"math"
	"strconv"
)

// Fix is a Q16.16 signed fixed-point number.
type Fix int32

const (
	// Shift is the number of fractional bits.
	Shift = 16

	// One is the fixed-point representation of 1.
	One Fix = 1 << Shift

	// Half is the fixed-point representation of 0.5.
	Half Fix = One >> 1

	// Max and Min are the largest and smallest representable values.
	Max Fix = math.MaxInt32
	Min Fix = math.MinInt32

	// Overflow is returned by [Div] when the quotient does not fit.
	Overflow Fix = math.MinInt32
)

var (
	// ErrDivideByZero is returned by [DivChecked] for a zero divisor.
	ErrDivideByZero = errors.New("fix: division by zero")

	// ErrOverflow is returned by the checked operations when the
	// result is outside the Q16.16 range.
	ErrOverflow = errors.New("fix: overflow")
)

// FromInt converts an integer to fixed-point.  Integers outside
// [-32768, 32767] wrap around.
func FromInt(n int) Fix {
	return Fix(int32(n) << Shift)
}

// Int truncates x to an integer.  The shift is arithmetic, so negative
// values round towards negative infinity.
func (x Fix) Int() int {
	return int(int32(x) >> Shift)
}

// FromFloat64 converts f to the nearest fixed-point value.
// This is meant for tests and for output backends; the pipeline itself
// never uses floating point.
func FromFloat64(f float64) Fix {
	return Fix(int32(math.Round(f * float64(One))))
}

// Float64 returns x as a floating-point number.
func (x Fix) Float64() float64 {
	return float64(x) / float64(One)
}

// String formats x as a decimal number.
func (x Fix) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}

// Add returns a+b, wrapping around on overflow.
func Add(a, b Fix) Fix {
	return a + b
}

// Sub returns a-b, wrapping around on overflow.
func Sub(a, b Fix) Fix {
	return a - b
}

// Abs returns the absolute value of x.  Abs(Min) is Min.
func Abs(x Fix) Fix {
	if x < 0 {
		return -x
	}
	return x
}

// Mul returns the product a*b, truncated towards negative infinity.
//
// The operands are split into a signed high half and an unsigned low
// half, and the four partial products are combined with an explicit carry
// out of the low word.  Overflow is not detected; see [MulChecked].
func Mul(a, b Fix) Fix {
	hi, lo := mulParts(a, b)
	return Fix(uint32(hi)<<16 | lo>>16)
}

// MulChecked is like [Mul] but reports whether the product fits.
func MulChecked(a, b Fix) (Fix, error) {
	hi, lo := mulParts(a, b)
	// the upper 17 bits of the 64-bit product must all equal the sign
	if hi>>31 != hi>>15 {
		return Overflow, ErrOverflow
	}
	return Fix(uint32(hi)<<16 | lo>>16), nil
}

// mulParts computes the 64-bit product of a and b as a high and a low
// 32-bit word, using only 32-bit multiplications.
func mulParts(a, b Fix) (hi int32, lo uint32) {
	A := int32(a) >> 16
	C := int32(b) >> 16
	B := uint32(a) & 0xFFFF
	D := uint32(b) & 0xFFFF

	AC := A * C
	AD := A * int32(D)
	CB := C * int32(B)
	BD := B * D

	// AD and CB each fit into 32 bits, but their sum may not, so they
	// are split into high and low halves separately.
	hi = AC + AD>>16 + CB>>16
	lo = BD
	for _, mid := range [2]uint32{uint32(AD) << 16, uint32(CB) << 16} {
		lo += mid
		if lo < mid {
			hi++
		}
	}
	return hi, lo
}

// Div returns the quotient a/b, truncated towards zero.
//
// The divisor must not be zero; Div panics if it is, in the same way that
// integer division does.  If the quotient is outside the representable
// range, Div returns [Overflow].  Use [DivChecked] to get errors instead.
func Div(a, b Fix) Fix {
	if b == 0 {
		panic("fix: division by zero")
	}
	q, _ := div(a, b)
	return q
}

// DivChecked is like [Div] but returns an error for a zero divisor or
// when the quotient does not fit.
func DivChecked(a, b Fix) (Fix, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	q, ok := div(a, b)
	if !ok {
		return Overflow, ErrOverflow
	}
	return q, nil
}

// div implements restoring binary division on the magnitudes of a and b.
// The divisor is first shifted left, together with the quotient bit,
// until it is no smaller than the dividend.  Then one quotient bit is
// produced per step.
func div(a, b Fix) (Fix, bool) {
	remainder := magnitude(a)
	divider := magnitude(b)
	var quotient uint32
	bit := uint32(1) << Shift

	for divider < remainder {
		divider <<= 1
		bit <<= 1
	}
	if bit == 0 {
		return Overflow, false
	}

	if divider&0x80000000 != 0 {
		// One manual step, so that the shifts below cannot lose the
		// top bit of the remainder.
		if remainder >= divider {
			quotient |= bit
			remainder -= divider
		}
		divider >>= 1
		bit >>= 1
	}

	for bit != 0 && remainder != 0 {
		if remainder >= divider {
			quotient |= bit
			remainder -= divider
		}
		remainder <<= 1
		bit >>= 1
	}

	if quotient&0x80000000 != 0 {
		// 2^31 is representable only as the negative value Min.
		if quotient == 0x80000000 && (a^b) < 0 {
			return Min, true
		}
		return Overflow, false
	}
	result := Fix(quotient)
	if (a ^ b) < 0 {
		result = -result
	}
	return result, true
}

// magnitude returns |x| as an unsigned number.  This is exact for Min.
func magnitude(x Fix) uint32 {
	if x < 0 {
		return uint32(-x)
	}
	return uint32(x)
}
