// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

//-----------------------------------------------------------------------------
// Elementary operations on words
//
// These operations are used by the vector operations below.

// z1<<_W + z0 = x*y
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return Word(hi), Word(lo)
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	var cc uint
	lo, cc = bits.Add(lo, uint(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v. u1 must be < v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(v))
	return Word(qq), Word(rr)
}

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

//-----------------------------------------------------------------------------
// Vector operations
//
// The loop conditions i < len(z) && i < len(x) let the compiler drop the
// bounds checks; callers guarantee len(x) >= len(z).

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW adds y to x. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return
		}
	}
	return
}

// subVW subtracts y from x. The resulting borrow c is either 0 or 1.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
		if c == 0 {
			copy(z[i+1:], x[i+1:])
			return
		}
	}
	return
}

// shlVU sets z to x<<s, s < _W, and returns the bits shifted out of the top
// word. z and x may be the same slice.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1
	t := (_W - s) & (_W - 1)
	c = x[len(z)-1] >> t
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>t
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z to x>>s, s < _W, and returns the bits shifted out of the
// bottom word, left aligned. z and x may be the same slice.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1
	t := (_W - s) & (_W - 1)
	c = x[0] << t
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<t
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// mulAddVWW sets z to x*y + r and returns the carry digit.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW adds x*y to z and returns the carry digit.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		c, z[i] = z1+Word(cc), Word(lo)
	}
	return
}

// divWVW sets z to (xn<<(len(x)*_W) + x)/y and returns the remainder. xn must
// be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}
