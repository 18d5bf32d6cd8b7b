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

import "errors"

var (
	// ErrSyntax indicates that the input does not start with a decimal
	// numeral, or that the numeral is not followed by a delimiter.
	ErrSyntax = errors.New("fix: invalid decimal syntax")

	// ErrRange indicates that a numeral is too large in magnitude for
	// the Q16.16 range.
	ErrRange = errors.New("fix: value out of range")
)

// maxFracDigits is the number of fractional digits which are accumulated.
// Further digits are consumed but do not contribute, since 10^10 would
// not fit into 32 bits.
const maxFracDigits = 9

// ParseDecimal parses the decimal numeral at the start of s and returns
// its value together with the number of bytes consumed.
//
// The accepted syntax is an optional sign, one or more digits, an optional
// fraction consisting of a '.' and zero or more digits, and an optional
// exponent.  A numeral which has an exponent part is returned as exactly
// zero: STL exporters use scientific notation almost exclusively for
// values like 1.2e-17, which are zero at Q16.16 resolution.
//
// Fractional digits which do not fit into 16 bits are truncated, so
// ParseDecimal never rounds up.  The numeral must be followed by white
// space or by the end of s.
func ParseDecimal(s []byte) (Fix, int, error) {
	pos := 0
	neg := false
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	var intPart uint32
	intDigits := 0
	tooLarge := false
	for pos < len(s) && isDigit(s[pos]) {
		intPart = intPart*10 + uint32(s[pos]-'0')
		if intPart > 0xFFFF {
			// keep consuming digits, but do not let the accumulator wrap
			tooLarge = true
			intPart = 0xFFFF
		}
		intDigits++
		pos++
	}

	var frac uint32
	scale := uint32(1)
	fracDigits := 0
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && isDigit(s[pos]) {
			if fracDigits < maxFracDigits {
				frac = frac*10 + uint32(s[pos]-'0')
				scale *= 10
			}
			fracDigits++
			pos++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, pos, ErrSyntax
	}

	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
			pos++
		}
		expDigits := 0
		for pos < len(s) && isDigit(s[pos]) {
			expDigits++
			pos++
		}
		if expDigits == 0 {
			return 0, pos, ErrSyntax
		}
		if !atDelimiter(s, pos) {
			return 0, pos, ErrSyntax
		}
		return 0, pos, nil
	}
	if !atDelimiter(s, pos) {
		return 0, pos, ErrSyntax
	}

	// Drop decimal digits until the fraction fits into 16 bits.
	for frac > 0xFFFF {
		frac /= 10
		scale /= 10
	}
	var fracBits uint32
	if frac > 0 {
		// frac < scale, so the quotient is a pure fraction
		fracBits = uint32(Div(Fix(frac), Fix(scale)))
	}

	limit := uint32(0x7FFFFFFF)
	if neg {
		limit = 0x80000000
	}
	if tooLarge || intPart > limit>>Shift {
		return 0, pos, ErrRange
	}
	raw := intPart<<Shift | fracBits
	if raw > limit {
		return 0, pos, ErrRange
	}

	x := Fix(raw)
	if neg {
		x = -x
	}
	return x, pos, nil
}

// Parse parses a complete string as a decimal numeral.
// See [ParseDecimal] for the accepted syntax.
func Parse(s string) (Fix, error) {
	x, n, err := ParseDecimal([]byte(s))
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, ErrSyntax
	}
	return x, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func atDelimiter(s []byte, pos int) bool {
	return pos == len(s) || isSpace(s[pos])
}
