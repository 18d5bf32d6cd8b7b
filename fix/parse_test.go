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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Fix
		n    int
	}{
		{"23.5", 23<<16 | 0x8000, 4},
		{"-12.25", -(12<<16 | 0x4000), 6},
		{"0", 0, 1},
		{"7", FromInt(7), 1},
		{"-0.5 ", -Half, 4},
		{"+1.75\n", One + Half + One>>2, 5},
		{".5", Half, 2},
		{"3.", FromInt(3), 2},
		{"0.000000", 0, 8},
		{"1.000000e+01", 0, 12},
		{"-6.123234E-17 x", 0, 13},
		{"32767.99998", 32767<<16 | 0xFFF9, 11},
		{"-32768", Min, 6},
		{"0.1", 0x1999, 3},
		{"0.333333333333", 0x5555, 14},
	}
	for _, c := range cases {
		got, n, err := ParseDecimal([]byte(c.in))
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, "%q", c.in)
		assert.Equal(t, c.n, n, "%q", c.in)
	}
}

func TestParseDecimalTruncatesPrecision(t *testing.T) {
	// 0.999999 has more precision than 16 bits can hold; the digits
	// are dropped rather than rounded, so the result stays below One.
	got, err := Parse("0.999999")
	require.NoError(t, err)
	assert.Less(t, got, One)
	assert.Equal(t, Fix(0xFFF9), got)
}

func TestParseDecimalErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrSyntax},
		{"-", ErrSyntax},
		{".", ErrSyntax},
		{"abc", ErrSyntax},
		{"1.5x", ErrSyntax},
		{"1e", ErrSyntax},
		{"1e+", ErrSyntax},
		{"32768", ErrRange},
		{"-32768.5", ErrRange},
		{"123456789", ErrRange},
	}
	for _, c := range cases {
		_, _, err := ParseDecimal([]byte(c.in))
		assert.ErrorIs(t, err, c.want, "%q", c.in)
	}
}

func TestParseRequiresWholeString(t *testing.T) {
	_, err := Parse("1.5 ")
	assert.ErrorIs(t, err, ErrSyntax)

	x, err := Parse("-4.125")
	require.NoError(t, err)
	assert.Equal(t, FromInt(-4)-One>>3, x)
}
